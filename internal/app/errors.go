package app

import "errors"

// Hints: a click or action was rejected and nothing changed
var (
	ErrNoPointHit      = errors.New("no point under the cursor")
	ErrEmptyName       = errors.New("empty name, point left unchanged")
	ErrRenameCancelled = errors.New("rename cancelled")
	ErrPolygonTooShort = errors.New("a polygon needs at least 3 points")
)

// IsHint reports whether err is a rejected interaction rather than a failure
func IsHint(err error) bool {
	return errors.Is(err, ErrNoPointHit) ||
		errors.Is(err, ErrEmptyName) ||
		errors.Is(err, ErrRenameCancelled) ||
		errors.Is(err, ErrPolygonTooShort)
}
