package driver

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"spaceinvaders/game"
)

// readIntent reads the keyboard into one frame of player input.
// Movement keys are level-sensitive; fire goes through the trigger so holding
// space fires once.
func readIntent(fire *game.FireTrigger) game.Intent {
	return game.Intent{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Fire:  fire.Update(ebiten.IsKeyPressed(ebiten.KeySpace)),
	}
}

// quitRequested reports whether the player asked to leave
func quitRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// debugToggled reports whether F1 was just pressed
func debugToggled() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF1)
}
