package constants

// Context keys set by the auth middleware.
const (
	ContextKeyUserID = "user_id"
	ContextKeyUser   = "current_user"
)

// List pagination defaults. Activity listings default to a smaller
// page because the feed is rendered ten entries at a time.
const (
	DefaultListLimit     = 100
	DefaultActivityLimit = 10
	MaxListLimit         = 1000
)
