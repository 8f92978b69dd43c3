package layout

// This file holds the pure view math the interactive host needs: pan/zoom
// transforms, graph bounds, and minimap projection. No drawing happens here;
// the renderer consumes rectangles and offsets and paints them however it
// likes.

// Rect is an axis-aligned rectangle in world or minimap coordinates.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the rectangle's horizontal extent.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the rectangle's vertical extent.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Intersects reports whether r and other overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.MinX < other.MaxX && other.MinX < r.MaxX &&
		r.MinY < other.MaxY && other.MinY < r.MaxY
}

// Clamp constrains r to bounds. If the intersection is empty, a unit
// rectangle at the bounds center is returned so the renderer always has
// something valid to draw.
func (r Rect) Clamp(bounds Rect) Rect {
	out := Rect{
		MinX: max(r.MinX, bounds.MinX),
		MinY: max(r.MinY, bounds.MinY),
		MaxX: min(r.MaxX, bounds.MaxX),
		MaxY: min(r.MaxY, bounds.MaxY),
	}
	if out.MinX >= out.MaxX || out.MinY >= out.MaxY {
		cx := (bounds.MinX + bounds.MaxX) / 2
		cy := (bounds.MinY + bounds.MaxY) / 2
		return Rect{MinX: cx - 0.5, MinY: cy - 0.5, MaxX: cx + 0.5, MaxY: cy + 0.5}
	}
	return out
}

// boundsPadding surrounds the graph bounds so nodes never touch the frame.
const boundsPadding = 50

// Bounds returns the padded bounding box of all nodes.
// An empty graph reports a fixed 100x100 box at the origin.
func (g *Graph) Bounds() Rect {
	if len(g.Nodes) == 0 {
		return Rect{MaxX: 100, MaxY: 100}
	}

	r := Rect{
		MinX: g.Nodes[0].X, MinY: g.Nodes[0].Y,
		MaxX: g.Nodes[0].X + g.Nodes[0].Width, MaxY: g.Nodes[0].Y + g.Nodes[0].Height,
	}
	for _, n := range g.Nodes[1:] {
		r.MinX = min(r.MinX, n.X)
		r.MinY = min(r.MinY, n.Y)
		r.MaxX = max(r.MaxX, n.X+n.Width)
		r.MaxY = max(r.MaxY, n.Y+n.Height)
	}
	r.MinX -= boundsPadding
	r.MinY -= boundsPadding
	r.MaxX += boundsPadding
	r.MaxY += boundsPadding
	return r
}

// Zoom limits for interactive views.
const (
	MinZoom = 0.1
	MaxZoom = 5.0
)

// Viewport is the pan/zoom state of an interactive graph view.
// The screen transform is screen = world*Zoom + Offset.
type Viewport struct {
	Zoom             float64
	OffsetX, OffsetY float64
}

// NewViewport returns a viewport at 1x zoom with no pan.
func NewViewport() Viewport {
	return Viewport{Zoom: 1}
}

// ToScreen maps a world coordinate to screen space.
func (v Viewport) ToScreen(x, y float64) (float64, float64) {
	return x*v.Zoom + v.OffsetX, y*v.Zoom + v.OffsetY
}

// ToWorld maps a screen coordinate back to world space.
func (v Viewport) ToWorld(x, y float64) (float64, float64) {
	return (x - v.OffsetX) / v.Zoom, (y - v.OffsetY) / v.Zoom
}

// Pan shifts the view by a screen-space delta.
func (v Viewport) Pan(dx, dy float64) Viewport {
	v.OffsetX += dx
	v.OffsetY += dy
	return v
}

// ZoomBy scales the zoom by a scroll delta and clamps to [MinZoom, MaxZoom].
// A delta of zero leaves the viewport unchanged.
func (v Viewport) ZoomBy(delta float64) Viewport {
	v.Zoom *= 1 + delta*0.001
	if v.Zoom < MinZoom {
		v.Zoom = MinZoom
	}
	if v.Zoom > MaxZoom {
		v.Zoom = MaxZoom
	}
	return v
}

// VisibleWorld returns the world-space rectangle covered by a canvas of the
// given screen size under this viewport.
func (v Viewport) VisibleWorld(canvasW, canvasH float64) Rect {
	minX, minY := v.ToWorld(0, 0)
	return Rect{
		MinX: minX,
		MinY: minY,
		MaxX: minX + canvasW/v.Zoom,
		MaxY: minY + canvasH/v.Zoom,
	}
}

// minimap scale cap keeps tiny graphs readable instead of blowing them up.
const maxMinimapScale = 0.5

// Minimap projects the whole graph into a small overview rectangle and maps
// clicks on that overview back to viewport offsets.
type Minimap struct {
	Width, Height float64
	// Pad insets the drawable content from the minimap frame.
	Pad float64
}

// NewMinimap returns a minimap with the standard 200x150 frame.
func NewMinimap() Minimap {
	return Minimap{Width: 200, Height: 150, Pad: 10}
}

// Scale returns the world-to-minimap scale that fits bounds inside the
// content area, capped at maxMinimapScale. Returns 0 for degenerate bounds,
// in which case the minimap should not be drawn.
func (m Minimap) Scale(bounds Rect) float64 {
	w, h := bounds.Width(), bounds.Height()
	if w <= 0 || h <= 0 {
		return 0
	}
	scale := min((m.Width-2*m.Pad)/w, (m.Height-2*m.Pad)/h)
	return min(scale, maxMinimapScale)
}

// Project maps a world point into minimap coordinates.
func (m Minimap) Project(x, y float64, bounds Rect, scale float64) (float64, float64) {
	return (x-bounds.MinX)*scale + m.Pad, (y-bounds.MinY)*scale + m.Pad
}

// NodeRect projects a node's world rectangle into minimap coordinates.
func (m Minimap) NodeRect(n Node, bounds Rect, scale float64) Rect {
	x, y := m.Project(n.X, n.Y, bounds, scale)
	return Rect{MinX: x, MinY: y, MaxX: x + n.Width*scale, MaxY: y + n.Height*scale}
}

// ViewportRect projects the currently visible world region into minimap
// coordinates, so the renderer can draw the view indicator.
func (m Minimap) ViewportRect(vp Viewport, canvasW, canvasH float64, bounds Rect, scale float64) Rect {
	visible := vp.VisibleWorld(canvasW, canvasH)
	minX, minY := m.Project(visible.MinX, visible.MinY, bounds, scale)
	return Rect{
		MinX: minX,
		MinY: minY,
		MaxX: minX + visible.Width()*scale,
		MaxY: minY + visible.Height()*scale,
	}
}

// OffsetForClick converts a click inside the minimap into the viewport
// offset that centers the clicked world point on a canvas of the given size.
func (m Minimap) OffsetForClick(clickX, clickY float64, vp Viewport, canvasW, canvasH float64, bounds Rect, scale float64) (float64, float64) {
	worldX := (clickX-m.Pad)/scale + bounds.MinX
	worldY := (clickY-m.Pad)/scale + bounds.MinY

	targetX := worldX - canvasW/(2*vp.Zoom)
	targetY := worldY - canvasH/(2*vp.Zoom)
	return -targetX * vp.Zoom, -targetY * vp.Zoom
}
