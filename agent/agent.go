package agent

import "pacman/game"

// Agent picks Pac's move once per game tick.
type Agent interface {
	ChooseMove(g game.Game) game.Move
	// Reset clears any memory carried between decisions
	Reset()
}
