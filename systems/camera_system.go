package systems

// Camera is the top-left corner of the visible part of a map
type Camera struct {
	X, Y         int
	ViewW, ViewH int // Viewport size in tiles
	MapW, MapH   int
}

// NewCamera creates a camera over a map of the given size
func NewCamera(viewW, viewH, mapW, mapH int) *Camera {
	return &Camera{ViewW: viewW, ViewH: viewH, MapW: mapW, MapH: mapH}
}

// Pan moves the camera and keeps it within the map
func (c *Camera) Pan(dx, dy int) {
	c.X += dx
	c.Y += dy
	c.clamp()
}

// CenterOn centers the viewport on a map cell
func (c *Camera) CenterOn(x, y int) {
	c.X = x - c.ViewW/2
	c.Y = y - c.ViewH/2
	c.clamp()
}

func (c *Camera) clamp() {
	c.X = max(0, min(c.X, c.MapW-c.ViewW))
	c.Y = max(0, min(c.Y, c.MapH-c.ViewH))
}

// WorldToScreen converts map coordinates to viewport tile coordinates
func (c *Camera) WorldToScreen(x, y int) (int, int) {
	return x - c.X, y - c.Y
}

// IsVisible reports whether a map cell is inside the viewport
func (c *Camera) IsVisible(x, y int) bool {
	return x >= c.X && x < c.X+c.ViewW && y >= c.Y && y < c.Y+c.ViewH
}
