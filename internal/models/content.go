package models

// ── Comparison / Exploration Content ──────────────────────

// Anchor is a named position in the 3D anatomy scene.
type Anchor struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// ParallelSystem pairs a human-body system with its ocean analogue for the
// 3D viewer: title pair, color, anchor metadata, and descriptive facts.
type ParallelSystem struct {
	ID          string   `json:"id"`
	HumanTitle  string   `json:"human_title"`
	OceanTitle  string   `json:"ocean_title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Color       string   `json:"color"`
	HeightLevel string   `json:"height_level"` // low, mid, high
	Anchor      Anchor   `json:"anchor"`
	Facts       []string `json:"facts"`
}

// SystemInfo is one side of a comparison card.
type SystemInfo struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Facts       []string `json:"facts"`
}

// ComparisonPoint is a side-by-side comparison card with the discoverable
// connections it teaches. Connection ids feed the progress store's
// found-connections tracking.
type ComparisonPoint struct {
	ID          string     `json:"id"`
	HumanSystem SystemInfo `json:"human_system"`
	OceanSystem SystemInfo `json:"ocean_system"`
	Connections []string   `json:"connections"`
}
