package display

import (
	"bytes"
	"context"
	"errors"
	"image"
	"log/slog"
	"strings"
	"testing"
)

func TestHeadlessShow(t *testing.T) {
	var buf bytes.Buffer
	h := Headless{Logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))}

	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	if err := h.Show(context.Background(), "data.csv.svg", img); err != nil {
		t.Fatalf("Show() error = %v", err)
	}
	if out := buf.String(); !strings.Contains(out, "width=64") || !strings.Contains(out, "data.csv.svg") {
		t.Errorf("log = %q, want title and size", out)
	}
}

func TestHeadlessShowCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Headless{}.Show(ctx, "x", image.NewRGBA(image.Rect(0, 0, 1, 1)))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Show() error = %v, want context.Canceled", err)
	}
}
