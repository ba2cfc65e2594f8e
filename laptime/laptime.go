// Package laptime converts lap and gap times between the upstream text form
// ("1'23.456" or "1:23.456") and milliseconds.
package laptime

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	msPerSecond  = 1000
	msPerMinute  = 60 * msPerSecond
	msDigits     = 3
	upstreamMark = "'"
)

// FormatLapTime swaps every apostrophe for a colon and leaves the rest as is.
func FormatLapTime(s string) string {
	return strings.ReplaceAll(s, upstreamMark, ":")
}

// ParseTimeToMs reads "M:SS[.mmm]" (apostrophes accepted in place of the
// colon). Unparseable or out-of-range input yields 0.
func ParseTimeToMs(s string) int {
	parts := strings.Split(FormatLapTime(s), ":")
	if len(parts) != 2 { //nolint:mnd
		return 0
	}

	minutes, ok := parseDigits(parts[0])
	if !ok {
		return 0
	}

	secondsPart, fraction, hasFraction := strings.Cut(parts[1], ".")

	seconds, ok := parseDigits(secondsPart)
	if !ok {
		return 0
	}

	millis := 0

	if hasFraction {
		if len(fraction) < msDigits {
			fraction += strings.Repeat("0", msDigits-len(fraction))
		}

		millis, ok = parseDigits(fraction)
		if !ok {
			return 0
		}
	}

	if minutes > math.MaxInt/msPerMinute || seconds > math.MaxInt/msPerSecond {
		return 0
	}

	total := minutes * msPerMinute
	if seconds*msPerSecond > math.MaxInt-total {
		return 0
	}

	total += seconds * msPerSecond
	if millis > math.MaxInt-total {
		return 0
	}

	return total + millis
}

// MsToTimeString renders ms as "M:SS.mmm". Minutes are never padded, so
// "01:23.456" parses to a value that formats back as "1:23.456".
func MsToTimeString(ms int) string {
	sign := ""
	if ms < 0 {
		sign = "-"
		ms = -ms
	}

	minutes := ms / msPerMinute
	seconds := (ms % msPerMinute) / msPerSecond
	millis := ms % msPerSecond

	var b strings.Builder

	b.WriteString(sign)
	b.WriteString(strconv.Itoa(minutes))
	b.WriteByte(':')
	b.WriteString(pad(seconds, 2)) //nolint:mnd
	b.WriteByte('.')
	b.WriteString(pad(millis, msDigits))

	return b.String()
}

func ParseDuration(s string) time.Duration {
	return time.Duration(ParseTimeToMs(s)) * time.Millisecond
}

func FormatDuration(d time.Duration) string {
	return MsToTimeString(int(d.Milliseconds()))
}

func parseDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}

	return n, true
}

func pad(n, width int) string {
	s := strconv.Itoa(n)
	if len(s) >= width {
		return s
	}

	return strings.Repeat("0", width-len(s)) + s
}
