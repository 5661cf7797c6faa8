package payment

import "time"

// ExtendEndDate computes a member's new expiry after crediting days of
// membership. The anchor is the existing end date while it is still in the
// future; a lapsed or absent end date anchors at now, so expired time is not
// compounded. Day arithmetic uses the UTC calendar.
func ExtendEndDate(current *time.Time, now time.Time, days int) time.Time {
	anchor := now.UTC()
	if current != nil && !current.Before(now) {
		anchor = current.UTC()
	}
	return anchor.AddDate(0, 0, days)
}
