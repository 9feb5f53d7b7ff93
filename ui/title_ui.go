package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"
	"strings"

	cfg "github.com/automoto/cyberninja/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MaxNameLength caps the player name shown on the HUD.
const MaxNameLength = 16

// TitleUI is the title screen: a name field, a start button and an
// autopilot demo button.
type TitleUI struct {
	UI *ebitenui.UI

	OnStart func(name string)
	OnDemo  func()

	savedName   string
	nameInput   *widget.TextInput
	statusLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewTitleUI(savedName string, highScore int, onStart func(name string), onDemo func()) *TitleUI {
	ui := &TitleUI{
		OnStart:   onStart,
		OnDemo:    onDemo,
		savedName: savedName,
	}
	ui.loadFonts()
	ui.buildUI(highScore)
	return ui
}

func (ui *TitleUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 36}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 16}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 12}
}

func (ui *TitleUI) buildUI(highScore int) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Palette.Background)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.C.Title, &ui.titleFace, &widget.LabelColor{
			Idle: cfg.Palette.Player,
		}),
	))
	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(fmt.Sprintf("High Score: %d", highScore), &ui.normalFace, &widget.LabelColor{
			Idle: cfg.HUD.HighlightColor,
		}),
	))

	contentContainer.AddChild(ui.buildNameRow())

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("Arrows/WASD move, Space jump, F shoot", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 200, 255},
		}),
	)
	contentContainer.AddChild(ui.statusLabel)

	contentContainer.AddChild(ui.buildButtons())

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *TitleUI) buildNameRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)

	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Name:", &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	))

	placeholder := ui.savedName
	if placeholder == "" {
		placeholder = "Ninja"
	}
	ui.nameInput = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(200, 26)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.RGBA{40, 30, 70, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{30, 25, 45, 255}),
		}),
		widget.TextInputOpts.Face(&ui.normalFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          color.RGBA{255, 255, 255, 255},
			Disabled:      color.RGBA{128, 128, 128, 255},
			Caret:         color.RGBA{255, 255, 255, 255},
			DisabledCaret: color.RGBA{128, 128, 128, 255},
		}),
		widget.TextInputOpts.Placeholder(placeholder),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(4)),
	)
	row.AddChild(ui.nameInput)

	return row
}

func (ui *TitleUI) buildButtons() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	startButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 30)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{0, 120, 140, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{0, 160, 180, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{0, 90, 110, 255}),
		}),
		widget.ButtonOpts.Text("Start", &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 255, 255},
			Pressed: color.RGBA{150, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			ui.Start()
		}),
	)
	container.AddChild(startButton)

	demoButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 30)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 40, 90, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 60, 120, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 30, 60, 255}),
		}),
		widget.ButtonOpts.Text("Watch Demo", &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 255, 255},
			Pressed: color.RGBA{200, 150, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnDemo != nil {
				ui.OnDemo()
			}
		}),
	)
	container.AddChild(demoButton)

	return container
}

// Start submits the typed name, falling back to the saved one.
func (ui *TitleUI) Start() {
	if ui.OnStart != nil {
		ui.OnStart(ui.Name())
	}
}

// Name is the trimmed typed name, or the saved name if the field is empty.
func (ui *TitleUI) Name() string {
	name := strings.TrimSpace(ui.nameInput.GetText())
	if name == "" {
		return ui.savedName
	}
	if r := []rune(name); len(r) > MaxNameLength {
		name = string(r[:MaxNameLength])
	}
	return name
}

func (ui *TitleUI) SetStatus(msg string) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = msg
	}
}

func (ui *TitleUI) Update() {
	ui.UI.Update()
}
