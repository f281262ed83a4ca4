package gui

import (
	"image"

	"github.com/inkyblackness/pax-sdl-demos/internal/gfx"
	"github.com/inkyblackness/pax-sdl-demos/internal/input"
)

// Grid lays its children out row-major in equally sized cells and moves a
// selection between them with the arrow keys.
type Grid struct {
	Elem
	Cols, Rows int
	Children   []Node

	selected int
}

// NewGrid returns a cols×rows grid. Missing cells stay empty; surplus
// children are not shown.
func NewGrid(cols, rows int, children ...Node) *Grid {
	g := &Grid{Elem: Elem{Kind: KindGrid}, Cols: cols, Rows: rows, Children: children, selected: -1}
	g.Select(g.firstSelectable())
	return g
}

// Selected returns the index of the selected child, -1 if none.
func (g *Grid) Selected() int { return g.selected }

// SelectedNode returns the selected child or nil.
func (g *Grid) SelectedNode() Node {
	if g.selected < 0 || g.selected >= len(g.Children) {
		return nil
	}
	return g.Children[g.selected]
}

// Select moves the selection to child i. It returns false and leaves the
// selection alone when i does not name a selectable child.
func (g *Grid) Select(i int) bool {
	if i < 0 || i >= g.cells() || !selectable(g.Children[i]) {
		return false
	}
	if i == g.selected {
		return true
	}
	if old := g.SelectedNode(); old != nil {
		ob := old.Base()
		ob.clear(Highlight)
		ob.markDirty()
		if bl, ok := old.(interface{ blur() }); ok {
			bl.blur()
		}
	}
	g.selected = i
	nb := g.Children[i].Base()
	nb.set(Highlight)
	nb.markDirty()
	return true
}

// cells returns the number of children that have a cell.
func (g *Grid) cells() int {
	n := g.Cols * g.Rows
	if n > len(g.Children) {
		n = len(g.Children)
	}
	return n
}

func (g *Grid) firstSelectable() int {
	for i := 0; i < g.cells(); i++ {
		if selectable(g.Children[i]) {
			return i
		}
	}
	return -1
}

func (g *Grid) lastSelectable() int {
	for i := g.cells() - 1; i >= 0; i-- {
		if selectable(g.Children[i]) {
			return i
		}
	}
	return -1
}

// step searches from the selection in steps of delta for the next selectable
// child. Horizontal steps stay within the current row.
func (g *Grid) step(delta int, sameRow bool) int {
	if g.selected < 0 || g.Cols <= 0 {
		return -1
	}
	row := g.selected / g.Cols
	for i := g.selected + delta; i >= 0 && i < g.cells(); i += delta {
		if sameRow && i/g.Cols != row {
			return -1
		}
		if selectable(g.Children[i]) {
			return i
		}
	}
	return -1
}

// column searches the current column from the top (or the bottom) for the
// first selectable child.
func (g *Grid) column(fromTop bool) int {
	if g.selected < 0 || g.Cols <= 0 {
		return -1
	}
	col := g.selected % g.Cols
	if fromTop {
		for i := col; i < g.cells(); i += g.Cols {
			if selectable(g.Children[i]) {
				return i
			}
		}
		return -1
	}
	last := (g.cells() - 1) / g.Cols
	for i := last*g.Cols + col; i >= 0; i -= g.Cols {
		if i < g.cells() && selectable(g.Children[i]) {
			return i
		}
	}
	return -1
}

func (g *Grid) MinSize(th *Theme) image.Point {
	var cell image.Point
	for i := 0; i < g.cells(); i++ {
		s := g.Children[i].MinSize(th)
		cell.X = max(cell.X, s.X)
		cell.Y = max(cell.Y, s.Y)
	}
	cols, rows := max(g.Cols, 1), max(g.Rows, 1)
	return image.Pt(cols*cell.X+(cols+1)*th.Gap, rows*cell.Y+(rows+1)*th.Gap)
}

func (g *Grid) Place(r image.Rectangle, th *Theme) {
	g.Pos, g.Size = r.Min, r.Size()
	if g.Cols <= 0 || g.Rows <= 0 {
		return
	}
	cw := (r.Dx() - (g.Cols+1)*th.Gap) / g.Cols
	ch := (r.Dy() - (g.Rows+1)*th.Gap) / g.Rows
	cw, ch = max(cw, 0), max(ch, 0)
	for i := 0; i < g.cells(); i++ {
		col, row := i%g.Cols, i/g.Cols
		cell := image.Rect(0, 0, cw, ch).Add(image.Pt(
			r.Min.X+th.Gap+col*(cw+th.Gap),
			r.Min.Y+th.Gap+row*(ch+th.Gap),
		))
		c := g.Children[i]
		if c.Base().Has(FillCell) {
			c.Place(cell, th)
			continue
		}
		// Shrink to the minimum size, centered in the cell.
		s := c.MinSize(th)
		s.X, s.Y = min(s.X, cw), min(s.Y, ch)
		off := image.Pt((cw-s.X)/2, (ch-s.Y)/2)
		c.Place(image.Rectangle{Min: cell.Min.Add(off), Max: cell.Min.Add(off).Add(s)}, th)
	}
}

func (g *Grid) Draw(buf *gfx.Buffer, th *Theme) error {
	if err := th.clearRect(buf, g.Rect()); err != nil {
		return err
	}
	for i := 0; i < g.cells(); i++ {
		if err := g.Children[i].Draw(buf, th); err != nil {
			return err
		}
	}
	return g.drawOverlays(buf, th)
}

// drawOverlays repaints the option lists of open dropdowns on top of their
// siblings.
func (g *Grid) drawOverlays(buf *gfx.Buffer, th *Theme) error {
	for i := 0; i < g.cells(); i++ {
		switch c := g.Children[i].(type) {
		case *Dropdown:
			if c.Open() {
				if err := c.drawOverlay(buf, th); err != nil {
					return err
				}
			}
		case *Grid:
			if err := c.drawOverlays(buf, th); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Grid) Event(ev input.Event) Resp {
	if sel := g.SelectedNode(); sel != nil {
		resp := sel.Event(ev)
		if sb := sel.Base(); sb.Has(DirtyTree) {
			sb.clear(DirtyTree)
			g.set(Dirty | DirtyTree)
		}
		if resp != RespNone {
			return resp
		}
	}
	if !isPress(ev) {
		return RespNone
	}

	next := -1
	switch ev.Input {
	case input.Left:
		next = g.step(-1, true)
	case input.Right:
		next = g.step(1, true)
	case input.Up:
		next = g.step(-g.Cols, false)
	case input.Down:
		next = g.step(g.Cols, false)
	case input.Home:
		next = g.firstSelectable()
	case input.End:
		next = g.lastSelectable()
	case input.PageUp:
		next = g.column(true)
	case input.PageDown:
		next = g.column(false)
	default:
		return RespNone
	}
	if next < 0 || next == g.selected {
		return RespNone
	}
	g.Select(next)
	return RespCaptured
}
