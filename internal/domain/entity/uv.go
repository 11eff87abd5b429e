package entity

import (
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/index"
)

// UV holds the ultraviolet index, its categorical level and an optional
// provider-supplied description.
type UV struct {
	Index       *float64 `json:"index,omitempty"`
	Level       *string  `json:"level,omitempty"`
	Description *string  `json:"description,omitempty"`
}

// NewUV builds a UV from a raw index, deriving the level from the WHO bands.
func NewUV(value *float64) *UV {
	if value == nil {
		return nil
	}
	return &UV{Index: value, Level: index.UVScale.Level(value)}
}

// IsValid reports whether any of the three fields is present.
func (u UV) IsValid() bool {
	return u.Index != nil || u.Level != nil || u.Description != nil
}

// Color returns the display color of the UV band, nil when no index is known.
func (u UV) Color() *string {
	return index.UVScale.Color(u.Index)
}
