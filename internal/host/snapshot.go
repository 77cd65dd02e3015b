package host

import (
	"fmt"
	"image/png"
	"io"

	"owlface/internal/ui"
)

// Snapshot delivers the pending tick and encodes the resulting frame as PNG.
func Snapshot(rt *ui.Runtime, w io.Writer) error {
	frame := NewFrame(rt.Bounds())
	rt.Step()
	if !rt.Render(frame.Context()) {
		return fmt.Errorf("snapshot: no window on the stack")
	}
	if err := png.Encode(w, frame.Image()); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}
