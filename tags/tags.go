package tags

import "github.com/yohamta/donburi"

var (
	Player       = donburi.NewTag().SetName("Player")
	Platform     = donburi.NewTag().SetName("Platform")
	Enemy        = donburi.NewTag().SetName("Enemy")
	PlayerBullet = donburi.NewTag().SetName("PlayerBullet")
	EnemyBullet  = donburi.NewTag().SetName("EnemyBullet")
	PowerUp      = donburi.NewTag().SetName("PowerUp")
)

// Resolv tags for broad-phase collision
const (
	ResolvPlayer       = "player"
	ResolvEnemy        = "enemy"
	ResolvPlayerBullet = "playerBullet"
	ResolvEnemyBullet  = "enemyBullet"
	ResolvPowerUp      = "powerUp"
)
