package game

import (
	"fmt"
	"log/slog"

	"dungeon-crawl/components"
	"dungeon-crawl/config"
	"dungeon-crawl/data"
	"dungeon-crawl/ecs"
	"dungeon-crawl/generation"
	"dungeon-crawl/rng"
	"dungeon-crawl/spawners"
	"dungeon-crawl/systems"
)

// Options configures a run
type Options struct {
	Seed       int64
	Architect  generation.Architect
	FinalLevel int
	// Map size, config.MapWidth x config.MapHeight when zero
	Width, Height int
	// nil means the embedded template set
	Templates *data.Templates
}

// OptionsFromConfig converts a loaded config. A zero seed draws one from
// the clock.
func OptionsFromConfig(cfg config.GameConfig, templates *data.Templates) (Options, error) {
	architect, err := generation.ParseArchitect(cfg.Architect)
	if err != nil {
		return Options{}, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rng.NewFromTime().Seed()
	}
	return Options{
		Seed:       seed,
		Architect:  architect,
		FinalLevel: cfg.FinalLevel,
		Templates:  templates,
	}, nil
}

// State owns the world, its shared resources and the turn scheduler
type State struct {
	world     *ecs.World
	res       *systems.Resources
	spawner   *spawners.EntitySpawner
	templates *data.Templates
	schedules phaseSchedules

	// runRNG hands out one seed per level and per restart
	runRNG    *rng.RandomNumberGenerator
	architect generation.Architect
	width     int
	height    int
	level     *generation.Level
}

// NewState builds level 0 of a new run
func NewState(opts Options) (*State, error) {
	if opts.FinalLevel < 0 {
		return nil, fmt.Errorf("game: final level must be >= 0, got %d", opts.FinalLevel)
	}
	templates := opts.Templates
	if templates == nil {
		var err error
		if templates, err = data.LoadTemplates(""); err != nil {
			return nil, fmt.Errorf("game: %w", err)
		}
	}
	width, height := opts.Width, opts.Height
	if width == 0 || height == 0 {
		width, height = config.MapWidth, config.MapHeight
	}

	s := &State{
		templates: templates,
		schedules: newPhaseSchedules(),
		runRNG:    rng.New(opts.Seed),
		architect: opts.Architect,
		width:     width,
		height:    height,
		res: &systems.Resources{
			Log:        systems.NewMessageLog(),
			FinalLevel: opts.FinalLevel,
		},
	}
	slog.Info("new run", "seed", opts.Seed, "architect", opts.Architect.String(), "final_level", opts.FinalLevel)
	s.reset()
	return s, nil
}

// SetTemplates replaces the template set. It takes effect when the next
// level is built.
func (s *State) SetTemplates(templates *data.Templates) {
	s.templates = templates
	s.spawner.SetTemplates(templates)
}

// Tick resolves one frame. A command runs a full player turn and the
// monster turn that follows it; without one only the input phase runs.
// Reaching an Exit builds the next level before Tick returns.
func (s *State) Tick(action *systems.Action, pointer components.Point) {
	s.res.Pointer = pointer

	switch s.res.TurnState {
	case systems.GameOver, systems.Victory:
		if action != nil && action.Kind == systems.ActionRestart {
			s.Restart()
		}
		return
	}

	s.res.Input = action
	defer func() { s.res.Input = nil }()

	for {
		switch s.res.TurnState {
		case systems.NextLevel:
			s.advanceLevel()
			return
		case systems.GameOver, systems.Victory:
			slog.Info("run over", "state", s.res.TurnState.String(), "level", s.MapLevel())
			return
		}
		s.schedules.forState(s.res.TurnState).Run(s.world, s.res)
		if s.res.TurnState == systems.AwaitingInput {
			return
		}
	}
}

// Restart discards the world and starts over from level 0. It only works
// once the run is over.
func (s *State) Restart() bool {
	if s.res.TurnState != systems.GameOver && s.res.TurnState != systems.Victory {
		return false
	}
	slog.Info("restart")
	s.reset()
	return true
}

func (s *State) reset() {
	s.world = ecs.NewWorld()
	s.spawner = spawners.NewEntitySpawner(s.world, s.templates)
	s.res.Log.Clear()
	s.res.Log.Subscribe(s.world.GetEventManager())
	s.buildLevel(0)
}

// advanceLevel removes everything but the player and what it carries, then
// builds the next level around them
func (s *State) advanceLevel() {
	player := systems.FindPlayer(s.world)
	keep := map[ecs.EntityID]bool{player: true}
	for _, item := range systems.CarriedBy(s.world, player) {
		keep[item] = true
	}

	commands := ecs.NewCommandBuffer()
	for _, id := range s.world.GetAllEntities() {
		if !keep[id] {
			commands.Despawn(id)
		}
	}
	commands.Flush(s.world)

	next := s.MapLevel() + 1
	s.buildLevel(next)
	s.world.EmitEvent(systems.LevelEvent{Level: next, Final: next == s.res.FinalLevel})
}

// buildLevel generates map n and populates it. An existing player is moved
// to the new start; otherwise one is created.
func (s *State) buildLevel(n int) {
	levelRNG := rng.New(s.runRNG.Int63())
	level := generation.NewDungeonGenerator(levelRNG, s.width, s.height).Generate(s.architect)
	s.level = level
	s.res.Map = level.Map
	s.res.RNG = levelRNG

	players := s.world.GetEntitiesWithTag(components.TagPlayer)
	var player ecs.EntityID
	if len(players) == 0 {
		player = s.spawner.CreatePlayer(level.PlayerStart)
	} else {
		player = players[0]
		s.world.AddComponent(player, components.Position, components.NewPositionComponent(level.PlayerStart))
		if fovComp, ok := s.world.GetComponent(player, components.FOV); ok {
			fovComp.(*components.FOVComponent).Dirty = true
		}
	}
	if pc, ok := s.world.GetComponent(player, components.Player); ok {
		pc.(*components.PlayerComponent).MapLevel = n
	}

	if n >= s.res.FinalLevel {
		s.spawner.CreateAmulet(level.AmuletStart)
	} else {
		level.Map.SetTile(level.AmuletStart, components.TileExit)
	}
	spawned := s.spawner.SpawnLevel(levelRNG, n, level.SpawnPoints, level.PlayerStart)

	s.res.Camera = components.NewCamera(level.PlayerStart, config.DisplayWidth, config.DisplayHeight)
	s.res.TurnState = systems.AwaitingInput
	s.schedules.fov.Run(s.world, s.res)

	slog.Info("level built",
		"level", n,
		"architect", level.Architect.String(),
		"spawned", spawned,
		"entities", s.world.EntityCount(),
	)
}
