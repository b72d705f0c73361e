package searcher

import (
	"slices"

	"pacman/game"

	"golang.org/x/exp/rand"
)

// mockState is a fixed board for evaluation tests. It has no moves.
type mockState struct {
	pac     game.Position
	ghosts  []game.Position
	dots    []game.Position
	winning bool
	losing  bool
}

func (m mockState) PacMan() game.Position        { return m.pac }
func (m mockState) Ghosts() []game.Position      { return m.ghosts }
func (m mockState) Dots() []game.Position        { return m.dots }
func (m mockState) IsWinning() bool              { return m.winning }
func (m mockState) IsLosing() bool               { return m.losing }
func (m mockState) PacManMoves() []game.Move     { return nil }
func (m mockState) GhostMoves() []game.JointMove { return nil }

func (m mockState) Play(game.Move) game.State {
	panic("mockState has no moves")
}

func (m mockState) PlayGhosts(game.JointMove) game.State {
	panic("mockState has no moves")
}

// treeNode is one position of a synthetic game tree. Children line up with
// pacMoves at Pac plies and with joint at ghost plies.
type treeNode struct {
	value    float64
	winning  bool
	losing   bool
	pacMoves []game.Move
	joint    []game.JointMove
	children []*treeNode
}

// treeState walks a synthetic tree and records the moves played to reach it.
type treeState struct {
	node   *treeNode
	played []game.Move
}

func (s treeState) PacMan() game.Position        { return game.Position{} }
func (s treeState) Ghosts() []game.Position      { return nil }
func (s treeState) Dots() []game.Position        { return nil }
func (s treeState) IsWinning() bool              { return s.node.winning }
func (s treeState) IsLosing() bool               { return s.node.losing }
func (s treeState) PacManMoves() []game.Move     { return slices.Clone(s.node.pacMoves) }
func (s treeState) GhostMoves() []game.JointMove { return slices.Clone(s.node.joint) }

func (s treeState) Play(move game.Move) game.State {
	i := slices.Index(s.node.pacMoves, move)
	if i < 0 {
		panic("illegal pac move")
	}
	return treeState{node: s.node.children[i], played: append(slices.Clone(s.played), move)}
}

func (s treeState) PlayGhosts(move game.JointMove) game.State {
	i := slices.IndexFunc(s.node.joint, func(m game.JointMove) bool {
		return slices.Equal(m, move)
	})
	if i < 0 {
		panic("illegal ghost move")
	}
	played := append(slices.Clone(s.played), move...)
	return treeState{node: s.node.children[i], played: played}
}

func treeValue(s game.State) float64 {
	return s.(treeState).node.value
}

// randomTree builds a tree of the given height whose root has Pac to move.
func randomTree(rng *rand.Rand, height int, pacTurn bool) *treeNode {
	node := &treeNode{value: float64(rng.Intn(201) - 100)}
	if height == 0 {
		return node
	}
	switch rng.Intn(20) {
	case 0:
		node.losing = true
		return node
	case 1:
		node.winning = true
		return node
	}

	if pacTurn {
		dirs := slices.Clone(game.Directions)
		rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })
		node.pacMoves = dirs[:1+rng.Intn(len(dirs))]
		for range node.pacMoves {
			node.children = append(node.children, randomTree(rng, height-1, false))
		}
		return node
	}

	n := 1 + rng.Intn(4)
	for i := 0; i < n; i++ {
		node.joint = append(node.joint, game.JointMove{game.Directions[i], game.Directions[(i+1)%4]})
		node.children = append(node.children, randomTree(rng, height-1, true))
	}
	return node
}

// leafNode is shorthand for a childless tree node.
func leafNode(value float64) *treeNode {
	return &treeNode{value: value}
}
