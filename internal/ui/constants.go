// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// HeaderHeight is the tab bar at the top of the screen.
	HeaderHeight = 1

	// StatusHeight is the status line at the bottom of the screen.
	StatusHeight = 1

	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// ThumbWidth and ThumbHeight are the thumbnail cell dimensions,
	// including the one-column gap on the right.
	ThumbWidth  = 16
	ThumbHeight = 7

	// CategoryWidth is the width of the category list column.
	CategoryWidth = 20

	// MinPreviewWidth is the narrowest terminal that still shows the
	// focused-photo preview column.
	MinPreviewWidth = 100
)
