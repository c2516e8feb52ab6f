package display

import (
	"context"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Window shows an image in a desktop window.
type Window struct{}

// Show opens a resizable window with img and blocks until the window is closed
// or ctx is cancelled.
func (Window) Show(ctx context.Context, title string, img image.Image) error {
	b := img.Bounds()
	g := &imageGame{ctx: ctx, src: img}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(b.Dx(), b.Dy())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(30)
	return ebiten.RunGame(g)
}

type imageGame struct {
	ctx context.Context
	src image.Image
	img *ebiten.Image
}

func (g *imageGame) Update() error {
	select {
	case <-g.ctx.Done():
		return ebiten.Termination
	default:
		return nil
	}
}

func (g *imageGame) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImageFromImage(g.src)
	}
	screen.Fill(color.White)
	screen.DrawImage(g.img, nil)
}

// Layout keeps the logical screen at the image size; ebiten scales it to the window.
func (g *imageGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.src.Bounds()
	return b.Dx(), b.Dy()
}
