// Package render holds what the window and headless outputs share: the
// Surface contract, the scene title overlay and PNG output.
package render

import "github.com/younwookim/wenbian/internal/domain/canvas"

// Surface is a canvas that follows the output size.
type Surface interface {
	canvas.Canvas

	// Resize reallocates the backing image. Contents are not preserved;
	// callers repaint afterwards.
	Resize(w, h int)
}
