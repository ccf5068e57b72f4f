package main

import "image/color"

const (
	// --- Project map ---
	CardWidth     = 320.0
	CardHeight    = 200.0
	CardPadding   = 24.0
	CardBadges    = 3
	CardDescLines = 3
	HoverScale    = 1.05
	DashLength    = 5.0

	// --- Particles ---
	StarSize      = 2.0
	SupernovaSize = 1.5
	AuroraPeriod  = 25.0 // seconds per revolution

	// --- About ---
	AboutWidth    = 640.0
	AboutMargin   = 40.0
	AboutScrollBy = 3 // lines per wheel step

	// --- UI ---
	ButtonWidth  = 44.0
	ButtonHeight = 44.0
	LabelPadding = 16.0
	ActionWidth  = 170.0
	ActionHeight = 40.0
)

var (
	// --- Colors ---
	ColorBackground  = color.RGBA{9, 9, 11, 255}
	ColorGrid        = color.NRGBA{255, 255, 255, 8}
	ColorCard        = color.NRGBA{255, 255, 255, 13}
	ColorCardHover   = color.NRGBA{255, 255, 255, 26}
	ColorCardBorder  = color.NRGBA{255, 255, 255, 26}
	ColorCardEdgeHot = color.NRGBA{255, 255, 255, 51}
	ColorShadow      = color.RGBA{0, 0, 0, 100}
	ColorTitle       = color.RGBA{255, 255, 255, 255}
	ColorMuted       = color.RGBA{161, 161, 170, 255}
	ColorBody        = color.RGBA{212, 212, 216, 255}
	ColorBadge       = color.NRGBA{255, 255, 255, 26}
	ColorSpoke       = color.NRGBA{255, 255, 255, 26}
	ColorSharedLink  = color.NRGBA{120, 170, 255, 40}
	ColorSupernova   = color.NRGBA{255, 160, 224, 220}
	ColorStar        = color.RGBA{255, 255, 255, 255}
	ColorAuroraCyan  = color.RGBA{0, 255, 255, 255}
	ColorAuroraPink  = color.RGBA{255, 105, 180, 255}
	ColorNightSky    = color.RGBA{5, 5, 16, 255}
)
