// Package gui is a small keyboard-driven widget toolkit drawing into a
// gfx.Buffer.
//
// A tree is built once from Label, Button, Textbox, Dropdown and Grid values.
// CalcLayout assigns every node a rectangle, Draw paints the whole tree and
// Event routes one translated key event through it. Nodes changed by an event
// are flagged Dirty and repainted by the next Redraw.
package gui

import (
	"image"

	"github.com/inkyblackness/pax-sdl-demos/internal/gfx"
	"github.com/inkyblackness/pax-sdl-demos/internal/input"
)

// Kind tags the concrete type of a node.
type Kind uint8

const (
	KindLabel Kind = iota
	KindButton
	KindTextbox
	KindDropdown
	KindGrid
)

func (k Kind) String() string {
	switch k {
	case KindLabel:
		return "label"
	case KindButton:
		return "button"
	case KindTextbox:
		return "textbox"
	case KindDropdown:
		return "dropdown"
	case KindGrid:
		return "grid"
	}
	return "kind(?)"
}

// Flags hold per-node layout and state bits.
type Flags uint16

const (
	// FillCell stretches the node over its whole grid cell.
	FillCell Flags = 1 << iota
	// Highlight marks the selected node.
	Highlight
	// Inactive nodes are drawn greyed out and cannot be selected.
	Inactive
	// Dirty nodes need repainting.
	Dirty
	// Active marks a node that owns keyboard focus: a textbox being edited or
	// an open dropdown.
	Active
	// DirtyTree means the node painted outside its bounds and the whole tree
	// must be repainted.
	DirtyTree
)

// Resp is the outcome of offering an event to a node.
type Resp uint8

const (
	// RespNone means the node ignored the event.
	RespNone Resp = iota
	// RespCaptured means the node consumed the event.
	RespCaptured
	// RespCapturedErr means the node consumed the event but could not act on
	// it, e.g. deleting from an empty textbox.
	RespCapturedErr
)

func (r Resp) String() string {
	switch r {
	case RespNone:
		return "none"
	case RespCaptured:
		return "captured"
	case RespCapturedErr:
		return "captured_err"
	}
	return "resp(?)"
}

// Elem is the state every node shares.
type Elem struct {
	Kind  Kind
	Flags Flags
	Pos   image.Point
	Size  image.Point
}

// Base returns the shared state; embedding Elem satisfies part of Node.
func (e *Elem) Base() *Elem { return e }

// Rect returns the node's rectangle in buffer coordinates.
func (e *Elem) Rect() image.Rectangle {
	return image.Rectangle{Min: e.Pos, Max: e.Pos.Add(e.Size)}
}

// Has reports whether all bits of f are set.
func (e *Elem) Has(f Flags) bool { return e.Flags&f == f }

func (e *Elem) set(f Flags)   { e.Flags |= f }
func (e *Elem) clear(f Flags) { e.Flags &^= f }

func (e *Elem) markDirty() { e.Flags |= Dirty }

// Node is implemented by every widget.
type Node interface {
	Base() *Elem
	// MinSize returns the smallest size the node can be drawn at.
	MinSize(th *Theme) image.Point
	// Place assigns the node its rectangle and lays out any children.
	Place(r image.Rectangle, th *Theme)
	// Draw paints the node and its children.
	Draw(buf *gfx.Buffer, th *Theme) error
	// Event offers ev to the node.
	Event(ev input.Event) Resp
}

// selectable reports whether grid navigation may stop on n.
func selectable(n Node) bool {
	b := n.Base()
	if b.Has(Inactive) {
		return false
	}
	switch v := n.(type) {
	case *Label:
		return false
	case *Grid:
		return v.firstSelectable() >= 0
	}
	return true
}

// CalcLayout fits root to a buffer of the given dimensions and marks the
// whole tree for repainting.
func CalcLayout(dims image.Point, root Node, th *Theme) {
	root.Place(image.Rectangle{Max: dims}, th)
	walk(root, func(n Node) { n.Base().markDirty() })
	root.Base().set(DirtyTree)
}

// Draw repaints the whole tree and clears every Dirty flag.
func Draw(buf *gfx.Buffer, root Node, th *Theme) error {
	if err := root.Draw(buf, th); err != nil {
		return err
	}
	walk(root, func(n Node) { n.Base().clear(Dirty | DirtyTree) })
	return nil
}

// Redraw repaints only the dirty parts of the tree. A dirty node is painted
// together with all of its children.
func Redraw(buf *gfx.Buffer, root Node, th *Theme) error {
	b := root.Base()
	if b.Has(Dirty) || b.Has(DirtyTree) {
		return Draw(buf, root, th)
	}
	if g, ok := root.(*Grid); ok {
		for _, c := range g.Children {
			if err := Redraw(buf, c, th); err != nil {
				return err
			}
		}
		// An open overlay may have been painted over by a sibling.
		return g.drawOverlays(buf, th)
	}
	return nil
}

// Event routes ev into the tree. When the root has not been laid out for
// dims yet, layout runs first.
func Event(dims image.Point, root Node, th *Theme, ev input.Event) Resp {
	if root.Base().Size != dims {
		CalcLayout(dims, root, th)
	}
	resp := root.Event(ev)
	if root.Base().Has(DirtyTree) {
		root.Base().markDirty()
	}
	return resp
}

// walk visits n and all of its descendants, parents first.
func walk(n Node, fn func(Node)) {
	fn(n)
	if g, ok := n.(*Grid); ok {
		for _, c := range g.Children {
			walk(c, fn)
		}
	}
}

// isPress reports whether ev should act like a key press; held keys repeat.
func isPress(ev input.Event) bool {
	return ev.Type == input.Press || ev.Type == input.Hold
}
