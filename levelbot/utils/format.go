package utils

import (
	"fmt"
	"strconv"
	"time"
)

func FormatNumber(n int64) string {
	str := strconv.FormatInt(n, 10)
	if n < 0 {
		str = str[1:] // Remove minus sign for processing
	}

	var result []byte
	for i := len(str) - 1; i >= 0; i-- {
		if (len(str)-i-1)%3 == 0 && i != len(str)-1 {
			result = append([]byte{','}, result...)
		}
		result = append([]byte{str[i]}, result...)
	}

	if n < 0 {
		return "-" + string(result)
	}
	return string(result)
}

// FormatWindow renders the remaining part of a boost window, rounded to
// whole minutes.
func FormatWindow(until time.Time, now time.Time) string {
	left := until.Sub(now).Round(time.Minute)
	if left <= 0 {
		return "expired"
	}
	if left < time.Hour {
		return fmt.Sprintf("%dm left", int(left.Minutes()))
	}
	return fmt.Sprintf("%dh %dm left", int(left.Hours()), int(left.Minutes())%60)
}
