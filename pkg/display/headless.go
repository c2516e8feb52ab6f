// Package display shows a rendered figure to the user.
package display

import (
	"context"
	"image"
	"log/slog"
)

// Headless skips the interactive display. Used when no window is wanted,
// e.g. in scripts or on machines without a screen.
type Headless struct {
	Logger *slog.Logger
}

func (h Headless) Show(ctx context.Context, title string, img image.Image) error {
	if h.Logger != nil {
		b := img.Bounds()
		h.Logger.DebugContext(ctx, "display disabled, not opening a window",
			"title", title, "width", b.Dx(), "height", b.Dy())
	}
	return ctx.Err()
}
