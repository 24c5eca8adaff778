package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"tablescene/internal/render"
	"tablescene/internal/utils"
)

// Stats summarizes one pass over the draw list.
type Stats struct {
	Draws     int
	TagMisses int
}

var flatWhite = mgl32.Vec4{1, 1, 1, 1}

// Render walks the draw records in order. Per record: compose the placement
// matrix, apply shader state, issue the draw. State application for one
// record fully precedes its draw and the next record's state; the loop is
// the pipeline's only synchronization. A bad tag degrades that one object
// and is counted, never aborting the frame.
func Render(doc *Document, applier *render.StateApplier, backend render.Backend) Stats {
	var stats Stats
	for _, item := range doc.Draws {
		kind, err := render.ParseMeshKind(item.Mesh)
		if err != nil {
			// Unreachable for validated documents.
			utils.Warn("Scene: %v", err)
			continue
		}

		applier.ApplyPlacement(render.Compose(item.scale(), item.rotate(), item.position()))

		switch {
		case item.Texture != "":
			if err := applier.ApplyTexture(item.Texture); err != nil {
				utils.Warn("Scene: %v", err)
				stats.TagMisses++
			}
			u, v := float32(1), float32(1)
			if item.UVScale != nil {
				u, v = item.UVScale[0], item.UVScale[1]
			}
			applier.ApplyUVScale(u, v)
		case item.Color != nil:
			applier.ApplySolidColor(mgl32.Vec4(*item.Color))
		default:
			applier.ApplySolidColor(flatWhite)
		}

		if item.Material != "" {
			if err := applier.ApplyMaterial(item.Material); err != nil {
				utils.Warn("Scene: %v", err)
				stats.TagMisses++
			}
		}

		backend.DrawMesh(kind, item.caps())
		stats.Draws++
	}
	return stats
}
