package config

const (
	WindowWidth  = 1024
	WindowHeight = 640
	WindowTitle  = "Crymson - Sign in"

	// Frames per second the tuning durations are expressed against
	FrameRate = 60

	// Login card layout
	CardWidth    = 360
	CardHeight   = 380
	FieldWidth   = 300
	FieldHeight  = 36
	ButtonWidth  = 300
	ButtonHeight = 40
	NavWidth     = 120
	NavHeight    = 28

	// Wider viewports get the full ambient dust count
	WideViewport = 768
)

// Persisted flag keys.
const (
	KeyAccentTheme      = "crymson_accent_theme"
	KeyTheme            = "crymson_theme"
	KeyActivityTracking = "crymson_activity_tracking"
	KeyActivities       = "crymson_activities"
	KeySavedUsername    = "crymson_saved_username"
	KeyRememberMe       = "crymson_remember_me"
)
