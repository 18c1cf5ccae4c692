package systems

import (
	"testing"

	"dungeon-crawl/components"
	"dungeon-crawl/data"
	"dungeon-crawl/ecs"
	"dungeon-crawl/rng"
	"dungeon-crawl/spawners"
)

// fixture is a small walled room: floor inside, wall on the border
type fixture struct {
	world   *ecs.World
	res     *Resources
	spawner *spawners.EntitySpawner
	player  ecs.EntityID
}

func newFixture(t *testing.T, playerAt components.Point) *fixture {
	t.Helper()
	m := components.NewMap(12, 10)
	for y := 1; y < m.Height-1; y++ {
		for x := 1; x < m.Width-1; x++ {
			m.SetTile(components.Point{X: x, Y: y}, components.TileFloor)
		}
	}
	w := ecs.NewWorld()
	f := &fixture{
		world: w,
		res: &Resources{
			Map:        m,
			Camera:     components.NewCamera(playerAt, 40, 25),
			TurnState:  AwaitingInput,
			RNG:        rng.New(1),
			Log:        NewMessageLog(),
			FinalLevel: 2,
		},
		spawner: spawners.NewEntitySpawner(w, &data.Templates{}),
	}
	f.res.Log.Subscribe(w.GetEventManager())
	f.player = f.spawner.CreatePlayer(playerAt)
	return f
}

func (f *fixture) monster(pt components.Point, hp int, ai string) ecs.EntityID {
	return f.spawner.CreateFromTemplate(pt, &data.EntityTemplate{
		EntityType: data.EntityEnemy, Name: "Orc", Glyph: "o", HP: hp, BaseDamage: 1, AI: ai,
	})
}

func (f *fixture) run(systems ...System) {
	ecs.NewSchedule[*Resources](systems...).Run(f.world, f.res)
}

func (f *fixture) pos(id ecs.EntityID) components.Point {
	p, ok := positionOf(f.world, id)
	if !ok {
		return components.Point{X: -1, Y: -1}
	}
	return p.Point()
}

func (f *fixture) health(id ecs.EntityID) *components.HealthComponent {
	h, _ := healthOf(f.world, id)
	return h
}

func (f *fixture) intents(c ecs.ComponentID) []ecs.Component {
	var out []ecs.Component
	for _, id := range f.world.GetEntitiesWithComponent(c) {
		comp, _ := f.world.GetComponent(id, c)
		out = append(out, comp)
	}
	return out
}

func TestMovementRejectsWallsAndBounds(t *testing.T) {
	tests := []struct {
		name string
		dest components.Point
		want components.Point
	}{
		{"floor", components.Point{X: 3, Y: 2}, components.Point{X: 3, Y: 2}},
		{"wall", components.Point{X: 0, Y: 2}, components.Point{X: 2, Y: 2}},
		{"off grid", components.Point{X: -1, Y: 2}, components.Point{X: 2, Y: 2}},
		{"far off grid", components.Point{X: 50, Y: 50}, components.Point{X: 2, Y: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, components.Point{X: 2, Y: 2})
			cb := ecs.NewCommandBuffer()
			queueMove(cb, f.player, tt.dest)
			cb.Flush(f.world)

			f.run(NewMovementSystem())
			if got := f.pos(f.player); got != tt.want {
				t.Fatalf("player at %v, want %v", got, tt.want)
			}
			if n := len(f.intents(components.WantsToMove)); n != 0 {
				t.Fatalf("%d move intents left", n)
			}
		})
	}
}

func TestPlayerMoveUpdatesCameraAndVision(t *testing.T) {
	f := newFixture(t, components.Point{X: 2, Y: 2})
	f.run(NewFOVSystem())
	cb := ecs.NewCommandBuffer()
	queueMove(cb, f.player, components.Point{X: 3, Y: 2})
	cb.Flush(f.world)

	f.run(NewMovementSystem())
	fovComp, _ := f.world.GetComponent(f.player, components.FOV)
	if !fovComp.(*components.FOVComponent).Dirty {
		t.Fatalf("fov not marked dirty after move")
	}
	if f.res.Camera.Left != 3-20 {
		t.Fatalf("camera not recentred: %+v", *f.res.Camera)
	}

	f.run(NewFOVSystem())
	if !fovComp.(*components.FOVComponent).CanSee(components.Point{X: 8, Y: 2}) {
		t.Fatalf("fov not recomputed")
	}
	if !f.res.Map.IsRevealed(components.Point{X: 8, Y: 2}) {
		t.Fatalf("visible tile not revealed")
	}
}

func TestCombatDespawnsOnlyDeadMonsters(t *testing.T) {
	f := newFixture(t, components.Point{X: 2, Y: 2})
	orc := f.monster(components.Point{X: 3, Y: 2}, 2, "")

	attack := func(attacker, victim ecs.EntityID) {
		cb := ecs.NewCommandBuffer()
		queueAttack(cb, attacker, victim)
		cb.Flush(f.world)
		f.run(NewCombatSystem())
	}

	attack(f.player, orc)
	if !f.world.IsAlive(orc) || f.health(orc).Current != 1 {
		t.Fatalf("orc should survive at 1 hp")
	}
	attack(f.player, orc)
	if f.world.IsAlive(orc) {
		t.Fatalf("orc at 0 hp not despawned")
	}
	if n := len(f.intents(components.WantsToAttack)); n != 0 {
		t.Fatalf("%d attack intents left", n)
	}

	// The player is never despawned by combat.
	ogre := f.monster(components.Point{X: 2, Y: 3}, 5, "")
	f.world.AddComponent(ogre, components.Damage, &components.DamageComponent{Amount: 20})
	attack(ogre, f.player)
	if !f.world.IsAlive(f.player) || f.health(f.player).Current >= 1 {
		t.Fatalf("player should be alive with health below 1, got %+v", f.health(f.player))
	}
}

func TestAttackDamageAddsCarriedWeapons(t *testing.T) {
	f := newFixture(t, components.Point{X: 2, Y: 2})
	sword := f.spawner.CreateFromTemplate(components.Point{X: 1, Y: 1}, &data.EntityTemplate{
		EntityType: data.EntityItem, Name: "Huge Sword", BaseDamage: 3,
	})
	potion := f.spawner.CreateFromTemplate(components.Point{X: 1, Y: 1}, &data.EntityTemplate{
		EntityType: data.EntityItem, Name: "Healing Potion", Provides: []data.Provides{{Kind: data.ProvidesHealing, Amount: 6}},
	})
	for _, item := range []ecs.EntityID{sword, potion} {
		f.world.RemoveComponent(item, components.Position)
		f.world.AddComponent(item, components.Carried, &components.CarriedComponent{Owner: f.player})
	}
	if got := AttackDamage(f.world, f.player); got != 4 {
		t.Fatalf("AttackDamage = %d, want 1 base + 3 sword", got)
	}
}

func TestChaserAdjacentAttacks(t *testing.T) {
	f := newFixture(t, components.Point{X: 5, Y: 5})
	f.monster(components.Point{X: 6, Y: 5}, 2, "")

	cb := ecs.NewCommandBuffer()
	NewChasingSystem().Update(f.world, f.res, cb)
	cb.Flush(f.world)

	if n := len(f.intents(components.WantsToMove)); n != 0 {
		t.Fatalf("adjacent chaser queued %d moves", n)
	}
	attacks := f.intents(components.WantsToAttack)
	if len(attacks) != 1 || attacks[0].(*components.WantsToAttackComponent).Victim != f.player {
		t.Fatalf("expected one attack on the player, got %v", attacks)
	}
}

func TestChaserStepsAlongShortestPath(t *testing.T) {
	f := newFixture(t, components.Point{X: 2, Y: 5})
	orc := f.monster(components.Point{X: 8, Y: 5}, 2, "")
	// The one behind finds its step taken and holds still.
	f.monster(components.Point{X: 9, Y: 5}, 2, "")

	f.run(NewChasingSystem(), NewMovementSystem())
	if got := f.pos(orc); got != (components.Point{X: 7, Y: 5}) {
		t.Fatalf("chaser at %v, want (7,5)", got)
	}
	if f.pos(f.player) != (components.Point{X: 2, Y: 5}) {
		t.Fatalf("player moved")
	}
}

func TestChaserDiagonalIsNotInReach(t *testing.T) {
	f := newFixture(t, components.Point{X: 5, Y: 5})
	orc := f.monster(components.Point{X: 6, Y: 6}, 2, "")
	f.run(NewChasingSystem(), NewMovementSystem())
	if got := f.pos(orc); got != (components.Point{X: 5, Y: 6}) {
		t.Fatalf("diagonal chaser at %v, want (5,6)", got)
	}
}

func TestRandomMoverQueuesOneIntent(t *testing.T) {
	f := newFixture(t, components.Point{X: 5, Y: 5})
	f.monster(components.Point{X: 5, Y: 6}, 2, data.AIRandom)
	for i := 0; i < 20; i++ {
		cb := ecs.NewCommandBuffer()
		NewRandomMoveSystem().Update(f.world, f.res, cb)
		cb.Flush(f.world)

		moves, attacks := f.intents(components.WantsToMove), f.intents(components.WantsToAttack)
		if len(moves)+len(attacks) != 1 {
			t.Fatalf("pass %d: %d moves, %d attacks", i, len(moves), len(attacks))
		}
		for _, a := range attacks {
			if a.(*components.WantsToAttackComponent).Victim != f.player {
				t.Fatalf("random mover attacked a non-player")
			}
		}
		for _, id := range f.world.Query(components.WantsToMove) {
			f.world.RemoveEntity(id)
		}
		for _, id := range f.world.Query(components.WantsToAttack) {
			f.world.RemoveEntity(id)
		}
	}
}

func TestHealingClampsAtMax(t *testing.T) {
	f := newFixture(t, components.Point{X: 2, Y: 2})
	f.health(f.player).Current = 6
	potion := f.spawner.CreateFromTemplate(components.Point{X: 1, Y: 1}, &data.EntityTemplate{
		EntityType: data.EntityItem, Name: "Healing Potion", Provides: []data.Provides{{Kind: data.ProvidesHealing, Amount: 4}},
	})
	f.world.RemoveComponent(potion, components.Position)
	f.world.AddComponent(potion, components.Carried, &components.CarriedComponent{Owner: f.player})

	f.res.Input = UseItem(0)
	f.run(NewPlayerInputSystem(), NewUseItemsSystem())

	if h := f.health(f.player); h.Current != 10 || h.Max != 10 {
		t.Fatalf("health %+v, want 10/10", h)
	}
	if f.world.IsAlive(potion) {
		t.Fatalf("potion not consumed")
	}
	if n := len(f.intents(components.ActivateItem)); n != 0 {
		t.Fatalf("%d activation intents left", n)
	}
	if msgs := f.res.Log.RecentMessages(1); len(msgs) != 1 {
		t.Fatalf("no log line for item use")
	}
}

func TestMagicMapRevealsLevel(t *testing.T) {
	f := newFixture(t, components.Point{X: 2, Y: 2})
	scroll := f.spawner.CreateFromTemplate(components.Point{X: 1, Y: 1}, &data.EntityTemplate{
		EntityType: data.EntityItem, Name: "Dungeon Map", Provides: []data.Provides{{Kind: data.ProvidesMagicMap}},
	})
	cb := ecs.NewCommandBuffer()
	cb.Spawn(map[ecs.ComponentID]ecs.Component{
		components.ActivateItem: &components.ActivateItemComponent{User: f.player, Item: scroll},
	})
	cb.Flush(f.world)

	f.run(NewUseItemsSystem())
	for i, r := range f.res.Map.Revealed {
		if !r {
			t.Fatalf("tile %v not revealed", f.res.Map.PointAt(i))
		}
	}
}

func TestPlayerInput(t *testing.T) {
	t.Run("no command keeps waiting", func(t *testing.T) {
		f := newFixture(t, components.Point{X: 2, Y: 2})
		f.run(NewPlayerInputSystem())
		if f.res.TurnState != AwaitingInput {
			t.Fatalf("state %s", f.res.TurnState)
		}
	})
	t.Run("move into empty tile", func(t *testing.T) {
		f := newFixture(t, components.Point{X: 2, Y: 2})
		f.res.Input = Move(East)
		f.run(NewPlayerInputSystem())
		moves := f.intents(components.WantsToMove)
		if len(moves) != 1 || moves[0].(*components.WantsToMoveComponent).Destination != (components.Point{X: 3, Y: 2}) {
			t.Fatalf("moves %v", moves)
		}
		if f.res.TurnState != PlayerTurn {
			t.Fatalf("state %s", f.res.TurnState)
		}
	})
	t.Run("move into enemy attacks", func(t *testing.T) {
		f := newFixture(t, components.Point{X: 2, Y: 2})
		orc := f.monster(components.Point{X: 2, Y: 1}, 2, "")
		f.res.Input = Move(North)
		f.run(NewPlayerInputSystem())
		attacks := f.intents(components.WantsToAttack)
		if len(attacks) != 1 || attacks[0].(*components.WantsToAttackComponent).Victim != orc {
			t.Fatalf("attacks %v", attacks)
		}
		if len(f.intents(components.WantsToMove)) != 0 {
			t.Fatalf("move queued alongside attack")
		}
	})
	t.Run("wait advances without intent", func(t *testing.T) {
		f := newFixture(t, components.Point{X: 2, Y: 2})
		f.res.Input = &Action{Kind: ActionWait}
		f.run(NewPlayerInputSystem())
		if f.res.TurnState != PlayerTurn || f.world.EntityCount() != 1 {
			t.Fatalf("state %s, %d entities", f.res.TurnState, f.world.EntityCount())
		}
	})
	t.Run("pick up swaps weapons", func(t *testing.T) {
		f := newFixture(t, components.Point{X: 2, Y: 2})
		rusty := f.spawner.CreateFromTemplate(components.Point{X: 2, Y: 2}, &data.EntityTemplate{
			EntityType: data.EntityItem, Name: "Rusty Sword", BaseDamage: 1,
		})
		f.res.Input = &Action{Kind: ActionPickUp}
		f.run(NewPlayerInputSystem())
		if f.world.HasComponent(rusty, components.Position) || len(CarriedBy(f.world, f.player)) != 1 {
			t.Fatalf("rusty sword not picked up")
		}

		shiny := f.spawner.CreateFromTemplate(components.Point{X: 2, Y: 2}, &data.EntityTemplate{
			EntityType: data.EntityItem, Name: "Shiny Sword", BaseDamage: 2,
		})
		f.run(NewPlayerInputSystem())
		carried := CarriedBy(f.world, f.player)
		if len(carried) != 1 || carried[0] != shiny || f.world.IsAlive(rusty) {
			t.Fatalf("carried %v, rusty alive %v", carried, f.world.IsAlive(rusty))
		}
	})
}

func TestFOVOpenRoomIsDisc(t *testing.T) {
	m := components.NewMap(30, 30)
	m.Fill(components.TileFloor)
	origin := components.Point{X: 15, Y: 15}
	const radius = 6

	visible := CalculateFOV(m, origin, radius)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			dx, dy := x-origin.X, y-origin.Y
			want := dx*dx+dy*dy <= radius*radius
			if got := visible.Has(components.Point{X: x, Y: y}); got != want {
				t.Fatalf("(%d,%d) visible=%v want %v", x, y, got, want)
			}
		}
	}
}

func TestFOVWallsOcclude(t *testing.T) {
	m := components.NewMap(30, 30)
	m.Fill(components.TileFloor)
	origin := components.Point{X: 15, Y: 15}
	m.SetTile(components.Point{X: 17, Y: 15}, components.TileWall)

	visible := CalculateFOV(m, origin, 8)
	if !visible.Has(components.Point{X: 17, Y: 15}) {
		t.Fatalf("wall itself should be visible")
	}
	if visible.Has(components.Point{X: 18, Y: 15}) {
		t.Fatalf("tile behind wall visible")
	}
	if !visible.Has(origin) {
		t.Fatalf("origin not visible")
	}
}

func TestFOVOnlyRecomputesWhenDirty(t *testing.T) {
	f := newFixture(t, components.Point{X: 2, Y: 2})
	f.run(NewFOVSystem())
	fovComp, _ := f.world.GetComponent(f.player, components.FOV)
	fov := fovComp.(*components.FOVComponent)
	if fov.Dirty || fov.VisibleTiles.Size() == 0 {
		t.Fatalf("first pass did not compute fov")
	}

	// Teleport without dirtying: the cached set must stay as it was.
	f.world.AddComponent(f.player, components.Position, components.NewPositionComponent(components.Point{X: 9, Y: 7}))
	f.run(NewFOVSystem())
	if !fov.CanSee(components.Point{X: 2, Y: 2}) || fov.CanSee(components.Point{X: 10, Y: 8}) {
		t.Fatalf("clean fov was recomputed")
	}
}

func TestEndTurnPrecedence(t *testing.T) {
	exit := components.Point{X: 4, Y: 4}
	tests := []struct {
		name   string
		from   TurnState
		dead   bool
		amulet bool
		onExit bool
		want   TurnState
	}{
		{"player turn ends", PlayerTurn, false, false, false, MonsterTurn},
		{"monster turn ends", MonsterTurn, false, false, false, AwaitingInput},
		{"awaiting input untouched", AwaitingInput, true, true, true, AwaitingInput},
		{"exit", PlayerTurn, false, false, true, NextLevel},
		{"amulet beats exit", PlayerTurn, false, true, true, Victory},
		{"death beats everything", MonsterTurn, true, true, true, GameOver},
		{"death on plain floor", MonsterTurn, true, false, false, GameOver},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, exit)
			f.res.TurnState = tt.from
			if tt.dead {
				f.health(f.player).Current = 0
			}
			if tt.amulet {
				f.spawner.CreateAmulet(exit)
			}
			if tt.onExit {
				f.res.Map.SetTile(exit, components.TileExit)
			}
			f.run(NewEndTurnSystem())
			if f.res.TurnState != tt.want {
				t.Fatalf("state %s, want %s", f.res.TurnState, tt.want)
			}
		})
	}
}

func TestMissingPlayerPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic without a player")
		}
	}()
	FindPlayer(ecs.NewWorld())
}
