package entity

// Inline style properties managed by the scroll lock. Nothing else in the
// page may write these while a lock can be active.
const (
	StylePosition  = "position"
	StyleWidth     = "width"
	StyleTop       = "top"
	StyleOverflowY = "overflow-y"
)

// Values written while the lock is applied.
const (
	PositionFixed  = "fixed"
	WidthFull      = "100%"
	OverflowHidden = "hidden"
)

// Scroll lock marker attribute defaults.
const (
	DefaultLockMarkerAttribute = "data-scroll-lock"
	LockMarkerValue            = "true"
)

// DefaultScrollContainerSelector selects the element pinned in place while
// the lock is active.
const DefaultScrollContainerSelector = "body"
