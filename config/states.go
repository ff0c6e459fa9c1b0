package config

// GameStateID identifies the active state of a game session.
type GameStateID int

const (
	StateMenu GameStateID = iota
	StatePlaying
	StatePaused
	StateGameOver
	StateVictory
)

func (s GameStateID) String() string {
	switch s {
	case StateMenu:
		return "MENU"
	case StatePlaying:
		return "PLAYING"
	case StatePaused:
		return "PAUSED"
	case StateGameOver:
		return "GAME_OVER"
	case StateVictory:
		return "VICTORY"
	}
	return "UNKNOWN"
}
