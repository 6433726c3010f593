package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSearch   = "🔍"
	IconCompare  = "📊"
	IconSettings = "⚙"
	IconBack     = "← Back"
	IconSelected = "✓"
	IconRemove   = "×"
)

// Text fragments
const (
	DashPlaceholder    = "—"
	MiddleDotSeparator = " · "
	BulletPrefix       = "• "
)

// Base sizes before UI/icon scaling is applied
const (
	FactionIconSize float32 = 24
	UnitIconSize    float32 = 48
	DetailIconSize  float32 = 64

	ComparisonColumnWidth float32 = 320
	AttributeKeyWidth     float32 = 160
)

// Notification behavior
const (
	NotificationAutoHide = 2 * time.Second
)
