package cp56

import (
	"fmt"
	"strings"
)

// String renders t as "YYYY.MM.DD HH:MM:SS.sss". The date part is left out
// when month or day is zero; invalid values render as InvalidText.
func (t Time) String() string {
	if !t.valid {
		return InvalidText
	}
	var sb strings.Builder
	sb.Grow(23)
	if t.month != 0 && t.day != 0 {
		fmt.Fprintf(&sb, "%d.%02d.%02d ", t.FullYear(), t.month, t.day)
	}
	fmt.Fprintf(&sb, "%02d:%02d:%02d.%03d", t.hour, t.minute, t.ms/1000, t.ms%1000)
	return sb.String()
}
