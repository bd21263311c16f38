package utils

import (
	"fmt"
	"time"
)

// DurationReadable formats an elapsed duration the way question rows show
// their age: whole days once past 24h, a clock face below that.
func DurationReadable(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	days := int(d.Hours()) / 24
	if days > 0 {
		if days == 1 {
			return "1 day ago"
		}
		return fmt.Sprintf("%d days ago", days)
	}

	seconds := int(d.Seconds())
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	return fmt.Sprintf("%02d:%02d:%02d ago", hours, minutes, seconds%60)
}

// TimeAgo is DurationReadable anchored at now, for templates.
func TimeAgo(t time.Time) string {
	return DurationReadable(time.Since(t))
}
