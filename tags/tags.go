package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
)

// Resolv tags for collision queries
const (
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
	ResolvAttack = "Attack"
)
