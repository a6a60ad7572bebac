package config

import "image/color"

// Frontend constants. The simulation itself reads only Config.
const (
	SidebarWidth = 140

	SpriteSize     = 32
	LaneWidth      = 4.0
	ShotWidth      = 2.0
	ButtonHeight   = 28
	ButtonMargin   = 8
	TextOffsetY    = 12
	SpriteTimeout  = 5 // seconds
	TerminalTickMs = 50
)

var (
	BackgroundColor = color.RGBA{255, 255, 255, 255}
	LaneColor       = color.RGBA{0x88, 0x88, 0x88, 255}
	EnemyColor      = color.RGBA{255, 0, 0, 255}
	TextDarkColor   = color.RGBA{0, 0, 0, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	ShotColor       = color.RGBA{255, 255, 0, 255}
	FallbackColor   = color.RGBA{0, 0, 255, 255} // пока спрайт не загружен
	RangeColor      = color.RGBA{50, 100, 255, 40}
	ButtonColor     = color.RGBA{70, 130, 180, 220}
	ButtonActive    = color.RGBA{220, 60, 60, 220}
)
