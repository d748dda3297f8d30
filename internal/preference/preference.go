package preference

import "time"

// Preference holds per-user display settings. A user without a stored row
// is served the defaults; the row appears on first write.
type Preference struct {
	UserID          string
	DisplayCurrency string
	UpdatedAt       *time.Time
}
