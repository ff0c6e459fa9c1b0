package components

import "github.com/yohamta/donburi"

// FlashData tracks the white hit flash on a wounded enemy
type FlashData struct {
	Duration int // frames remaining
}

var Flash = donburi.NewComponentType[FlashData]()
