// Package ui is the window and layer composition the face is built from:
// windows on a stack, each with a tree of layers that paint through a
// gfx.Context.
package ui

import (
	"image"

	"owlface/internal/gfx"
)

// UpdateProc paints a layer. It must not block.
type UpdateProc func(l *Layer, ctx gfx.Context)

// Layer is a drawing surface composited into a window. Bounds are in
// window coordinates.
type Layer struct {
	bounds   image.Rectangle
	update   UpdateProc
	parent   *Layer
	children []*Layer
	hidden   bool

	window *Window // set on a window's root layer only
	ledger *Ledger
	kind   Kind
}

func newLayer(bounds image.Rectangle, ledger *Ledger, kind Kind) *Layer {
	ledger.Create(kind)
	return &Layer{bounds: bounds, ledger: ledger, kind: kind}
}

func (l *Layer) Bounds() image.Rectangle { return l.bounds }

func (l *Layer) SetUpdateProc(p UpdateProc) { l.update = p }

func (l *Layer) SetHidden(hidden bool) {
	if l.hidden != hidden {
		l.hidden = hidden
		l.MarkDirty()
	}
}

func (l *Layer) Hidden() bool { return l.hidden }

func (l *Layer) Parent() *Layer { return l.parent }

// Children returns the direct children, bottom to top.
func (l *Layer) Children() []*Layer {
	out := make([]*Layer, len(l.children))
	copy(out, l.children)
	return out
}

// AddChild puts child on top of l's children, detaching it from any
// previous parent.
func (l *Layer) AddChild(child *Layer) {
	child.RemoveFromParent()
	child.parent = l
	l.children = append(l.children, child)
	l.MarkDirty()
}

func (l *Layer) RemoveFromParent() {
	p := l.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == l {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	l.parent = nil
	p.MarkDirty()
}

// Window returns the window whose tree l is attached to, if any.
func (l *Layer) Window() *Window {
	for n := l; n != nil; n = n.parent {
		if n.window != nil {
			return n.window
		}
	}
	return nil
}

// MarkDirty schedules a redraw of the window l belongs to.
func (l *Layer) MarkDirty() {
	if w := l.Window(); w != nil {
		w.dirty = true
	}
}

// Destroy detaches l. Children stay attached to l and are not destroyed.
func (l *Layer) Destroy() {
	l.RemoveFromParent()
	l.update = nil
	l.ledger.Destroy(l.kind)
}

func (l *Layer) draw(ctx gfx.Context) {
	if l.hidden {
		return
	}
	if l.update != nil {
		l.update(l, ctx)
	}
	for _, c := range l.children {
		c.draw(ctx)
	}
}

// BitmapLayer is a layer that displays one bitmap.
type BitmapLayer struct {
	layer  *Layer
	bitmap *gfx.Bitmap
	op     gfx.CompOp
}

func newBitmapLayer(bounds image.Rectangle, ledger *Ledger) *BitmapLayer {
	bl := &BitmapLayer{layer: newLayer(bounds, ledger, KindBitmapLayer)}
	bl.layer.SetUpdateProc(bl.paint)
	return bl
}

func (bl *BitmapLayer) Layer() *Layer { return bl.layer }

func (bl *BitmapLayer) SetBitmap(b *gfx.Bitmap) {
	bl.bitmap = b
	bl.layer.MarkDirty()
}

func (bl *BitmapLayer) Bitmap() *gfx.Bitmap { return bl.bitmap }

func (bl *BitmapLayer) SetCompositingMode(op gfx.CompOp) {
	bl.op = op
	bl.layer.MarkDirty()
}

func (bl *BitmapLayer) CompositingMode() gfx.CompOp { return bl.op }

func (bl *BitmapLayer) Destroy() {
	bl.bitmap = nil
	bl.layer.Destroy()
}

func (bl *BitmapLayer) paint(l *Layer, ctx gfx.Context) {
	if bl.bitmap == nil || bl.bitmap.Released() {
		return
	}
	ctx.DrawBitmap(bl.bitmap, l.Bounds(), bl.op)
}
