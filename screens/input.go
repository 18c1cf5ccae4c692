package screens

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"dungeon-crawl/components"
	"dungeon-crawl/config"
	"dungeon-crawl/systems"
)

type keyBinding struct {
	key    ebiten.Key
	action systems.Action
}

// keyBindings is checked in order; the first key pressed this frame wins
var keyBindings = []keyBinding{
	{ebiten.KeyArrowLeft, *systems.Move(systems.West)},
	{ebiten.KeyH, *systems.Move(systems.West)},
	{ebiten.KeyArrowRight, *systems.Move(systems.East)},
	{ebiten.KeyL, *systems.Move(systems.East)},
	{ebiten.KeyArrowUp, *systems.Move(systems.North)},
	{ebiten.KeyK, *systems.Move(systems.North)},
	{ebiten.KeyArrowDown, *systems.Move(systems.South)},
	{ebiten.KeyJ, *systems.Move(systems.South)},
	{ebiten.KeyG, systems.Action{Kind: systems.ActionPickUp}},
	{ebiten.KeySpace, systems.Action{Kind: systems.ActionWait}},
	{ebiten.KeyPeriod, systems.Action{Kind: systems.ActionWait}},
	{ebiten.KeyR, systems.Action{Kind: systems.ActionRestart}},
	{ebiten.KeyDigit1, *systems.UseItem(0)},
	{ebiten.KeyDigit2, *systems.UseItem(1)},
	{ebiten.KeyDigit3, *systems.UseItem(2)},
	{ebiten.KeyDigit4, *systems.UseItem(3)},
	{ebiten.KeyDigit5, *systems.UseItem(4)},
	{ebiten.KeyDigit6, *systems.UseItem(5)},
	{ebiten.KeyDigit7, *systems.UseItem(6)},
	{ebiten.KeyDigit8, *systems.UseItem(7)},
	{ebiten.KeyDigit9, *systems.UseItem(8)},
}

// readAction returns the command for this frame, nil when no bound key
// was pressed
func readAction() *systems.Action {
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			action := b.action
			return &action
		}
	}
	return nil
}

// screenToMap converts a cursor position in pixels to the map tile under
// it
func screenToMap(cx, cy int, camera components.Camera) components.Point {
	return components.Point{
		X: camera.Left + floorDiv(cx, config.TileSize),
		Y: camera.Top + floorDiv(cy, config.TileSize),
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
