package debug

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"tablescene/internal/assets"
	"tablescene/internal/scene"
)

// Overlay draws frame statistics over the rendered scene when -debug is on.
type Overlay struct{}

func (Overlay) Draw(stats scene.Stats, reg *assets.Registry) {
	rl.DrawFPS(10, 10)
	line := fmt.Sprintf("draws %d | tag misses %d | texture slots %d/%d",
		stats.Draws, stats.TagMisses, reg.TextureCount(), assets.MaxTextureSlots)
	rl.DrawText(line, 10, 34, 18, rl.RayWhite)
}
