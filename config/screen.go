package config

// Viewer layout configuration
const (
	// Tile size in pixels
	TileSize = 12

	// Status lines drawn below the map, in tiles
	StatusLines = 3

	// Largest map the viewer window is sized for, in tiles
	MaxViewWidth  = 100
	MaxViewHeight = 64
)

// GetWindowSize returns the window size in pixels for a map of the given size
func GetWindowSize(mapWidth, mapHeight int) (width, height int) {
	w := min(mapWidth, MaxViewWidth)
	h := min(mapHeight, MaxViewHeight) + StatusLines
	return w * TileSize, h * TileSize
}
