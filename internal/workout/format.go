package workout

import (
	"fmt"
	"math"
)

// FormatDuration renders seconds as M:SS, e.g. 65 -> "1:05", 3600 -> "60:00".
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// FormatTimeLeft renders seconds as whole minutes rounded half up,
// e.g. 30 -> "1 min", 89 -> "1 min", 90 -> "2 min".
func FormatTimeLeft(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d min", int(math.Floor(float64(seconds)/60+0.5)))
}
