package utils

import "fmt"

// FormatDuration renders elapsed seconds as MM:SS
func FormatDuration(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
