package domain

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the canonical zero-padded day-month-year layout used for
// every record date in the system. The "today" period filter compares raw
// strings against this format, so all writers must go through FormatDMY.
const DateLayout = "02-01-2006"

// FormatDMY renders t as a canonical DD-MM-YYYY string.
func FormatDMY(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDMY parses a day-month-year date string. The string must split into
// exactly three numeric parts; anything else reports ok=false. Out-of-range
// day or month values are normalized onto the calendar (31-04 rolls into
// May), matching the behavior records were written with.
func ParseDMY(s string) (time.Time, bool) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return time.Time{}, false
		}
		nums[i] = n
	}
	d, m, y := nums[0], nums[1], nums[2]
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.Local), true
}

// CanonicalDMY reparses a date string and reformats it into the canonical
// zero-padded form. Reports ok=false for unparseable input.
func CanonicalDMY(s string) (string, bool) {
	t, ok := ParseDMY(s)
	if !ok {
		return "", false
	}
	return FormatDMY(t), true
}
