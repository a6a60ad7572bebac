// pkg/render/color.go
package render

import (
	"image/color"

	"aimon-defense/internal/config"
)

// FieldColors holds all the colors needed to draw the field.
type FieldColors struct {
	BackgroundColor color.RGBA
	LaneColor       color.RGBA
	EnemyColor      color.RGBA
	TextColor       color.RGBA
	ShotColor       color.RGBA
	FallbackColor   color.RGBA
	RangeColor      color.RGBA
}

// DefaultFieldColors returns the palette from config.
func DefaultFieldColors() FieldColors {
	return FieldColors{
		BackgroundColor: config.BackgroundColor,
		LaneColor:       config.LaneColor,
		EnemyColor:      config.EnemyColor,
		TextColor:       config.TextDarkColor,
		ShotColor:       config.ShotColor,
		FallbackColor:   config.FallbackColor,
		RangeColor:      config.RangeColor,
	}
}
