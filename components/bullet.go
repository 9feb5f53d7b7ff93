package components

import "github.com/yohamta/donburi"

type BulletOwner int

const (
	OwnerPlayer BulletOwner = iota
	OwnerEnemy
)

type BulletData struct {
	Owner     BulletOwner
	Direction float64
	Speed     float64
}

var Bullet = donburi.NewComponentType[BulletData]()
