package core

// Color identifies a foreground color for a screen cell. The palette
// covers the seven tetromino colors plus UI accents; the platform layer
// maps these to terminal colors.
type Color uint8

const (
	ColorDefault Color = iota
	ColorCyan          // I piece
	ColorBlue          // J piece
	ColorOrange        // L piece
	ColorYellow        // O piece
	ColorGreen         // S piece
	ColorMagenta       // T piece
	ColorRed           // Z piece
	ColorWhite
	ColorGray
	ColorBrightWhite
)
