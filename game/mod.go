package game

// State is an immutable snapshot of the board. Operations on State always
// return a new copy and never modify the receiver.
type State interface {
	PacMan() Position
	Ghosts() []Position
	Dots() []Position

	IsWinning() bool
	IsLosing() bool

	// PacManMoves lists the legal moves for Pac from this state.
	PacManMoves() []Move
	// GhostMoves lists every legal combination of ghost moves, one Move per
	// ghost in the order of Ghosts(). The order is stable across calls.
	GhostMoves() []JointMove

	Play(Move) State
	PlayGhosts(JointMove) State
}

// Game is the live view the host hands to an agent once per tick.
type Game interface {
	State() State
	Time() int
	Points() int
}

// Evaluate scores a state from Pac's perspective, higher is better.
type Evaluate func(State) float64

// IsFinal reports whether the game is over in state s.
func IsFinal(s State) bool {
	return s.IsWinning() || s.IsLosing()
}
