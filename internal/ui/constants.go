package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
)

// Window sizing
const (
	WindowWidth  float32 = 600
	WindowHeight float32 = 400
)

// Log panel
const (
	LogMinHeight float32 = 160
	MaxLogLines          = 500
)
