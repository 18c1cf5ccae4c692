package systems

import (
	"fmt"

	"dungeon-crawl/components"
	"dungeon-crawl/ecs"
	"dungeon-crawl/rng"
)

// TurnState is the phase the scheduler is in
type TurnState int

const (
	AwaitingInput TurnState = iota
	PlayerTurn
	MonsterTurn
	GameOver
	Victory
	NextLevel
)

func (s TurnState) String() string {
	switch s {
	case AwaitingInput:
		return "AwaitingInput"
	case PlayerTurn:
		return "PlayerTurn"
	case MonsterTurn:
		return "MonsterTurn"
	case GameOver:
		return "GameOver"
	case Victory:
		return "Victory"
	case NextLevel:
		return "NextLevel"
	}
	return fmt.Sprintf("TurnState(%d)", int(s))
}

// ActionKind is the sort of command the player issued
type ActionKind int

const (
	ActionWait ActionKind = iota
	ActionMove
	ActionPickUp
	ActionUseItem
	ActionRestart
)

// Action is one player command for a frame
type Action struct {
	Kind      ActionKind
	Direction components.Point // ActionMove
	Slot      int              // ActionUseItem, zero based
}

// Cardinal directions, west/east/north/south
var (
	West  = components.Point{X: -1, Y: 0}
	East  = components.Point{X: 1, Y: 0}
	North = components.Point{X: 0, Y: -1}
	South = components.Point{X: 0, Y: 1}
)

// Move returns a move action in direction d
func Move(d components.Point) *Action {
	return &Action{Kind: ActionMove, Direction: d}
}

// UseItem returns an action activating inventory slot n (zero based)
func UseItem(n int) *Action {
	return &Action{Kind: ActionUseItem, Slot: n}
}

// Resources is the shared state every system receives explicitly
type Resources struct {
	Map        *components.Map
	Camera     *components.Camera
	TurnState  TurnState
	RNG        *rng.RandomNumberGenerator
	Input      *Action // nil when no key was pressed this frame
	Pointer    components.Point
	Log        *MessageLog
	FinalLevel int
}

// System is a per-tick logic unit over the world and shared resources
type System = ecs.System[*Resources]
