package config

// Screen layout configuration
const (
	// Tile size in pixels
	TileSize = 32

	// Message panel to the right of the board, in tiles
	MessagePanelWidth = 16
	MessagePanelLines = 10

	// Minimum window height in tiles so the panel always fits
	MinScreenHeight = 12

	// Space between the outer wall and the message panel
	boardMargin = 1
)

// BoardTiles returns the drawn board size in tiles, outer walls included
func BoardTiles(columns, rows int) (width, height int) {
	return columns + 2, rows + 2
}

// MessagePanelX returns the first tile column of the message panel
func MessagePanelX(columns int) int {
	width, _ := BoardTiles(columns, 0)
	return width + boardMargin
}

// GetScreenDimensions returns the screen dimensions in pixels for a board
func GetScreenDimensions(columns, rows int) (width, height int) {
	_, boardHeight := BoardTiles(columns, rows)
	return (MessagePanelX(columns) + MessagePanelWidth) * TileSize, max(boardHeight, MinScreenHeight) * TileSize
}

// GetWindowSize returns the recommended window size (may be different from actual screen dimensions)
func GetWindowSize(columns, rows int) (width, height int) {
	return GetScreenDimensions(columns, rows)
}
