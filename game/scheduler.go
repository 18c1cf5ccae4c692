package game

import (
	"dungeon-crawl/ecs"
	"dungeon-crawl/systems"
)

type schedule = *ecs.Schedule[*systems.Resources]

// phaseSchedules holds the fixed system pipeline of each active phase
type phaseSchedules struct {
	input   schedule
	player  schedule
	monster schedule
	fov     schedule
}

func newPhaseSchedules() phaseSchedules {
	return phaseSchedules{
		input: ecs.NewSchedule[*systems.Resources](
			systems.NewPlayerInputSystem(),
		),
		player: ecs.NewSchedule[*systems.Resources](
			systems.NewMovementSystem(),
			systems.NewCombatSystem(),
			systems.NewUseItemsSystem(),
			systems.NewFOVSystem(),
			systems.NewEndTurnSystem(),
		),
		monster: ecs.NewSchedule[*systems.Resources](
			systems.NewChasingSystem(),
			systems.NewRandomMoveSystem(),
			systems.NewMovementSystem(),
			systems.NewCombatSystem(),
			systems.NewFOVSystem(),
			systems.NewEndTurnSystem(),
		),
		// run on its own after a level is built
		fov: ecs.NewSchedule[*systems.Resources](
			systems.NewFOVSystem(),
		),
	}
}

// forState returns the pipeline for an active phase, nil for the others
func (p phaseSchedules) forState(state systems.TurnState) schedule {
	switch state {
	case systems.AwaitingInput:
		return p.input
	case systems.PlayerTurn:
		return p.player
	case systems.MonsterTurn:
		return p.monster
	}
	return nil
}
