package types

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseDuration parses Go duration text (1h2m) or clock text ([-][d.]hh:mm[:ss[.fffffff]])
func ParseDuration(text string) (time.Duration, error) {
	text = strings.TrimSpace(text)
	if d, err := time.ParseDuration(text); err == nil {
		return d, nil
	}
	return ParseClockDuration(text)
}

// ParseClockDuration parses [-]d or [-][d.]hh:mm[:ss[.fffffff]] duration text
func ParseClockDuration(text string) (time.Duration, error) {
	invalid := func() (time.Duration, error) {
		return 0, fmt.Errorf("invalid duration: %q", text)
	}
	value := strings.TrimSpace(text)
	negative := strings.HasPrefix(value, "-")
	value = strings.TrimPrefix(value, "-")
	if value == "" {
		return invalid()
	}
	var days, hours, minutes, seconds, fraction int64
	clock := value
	if !strings.Contains(value, ":") {
		d, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return invalid()
		}
		days, clock = d, ""
	} else if dot := strings.Index(value, "."); dot != -1 && dot < strings.Index(value, ":") {
		d, err := strconv.ParseInt(value[:dot], 10, 32)
		if err != nil {
			return invalid()
		}
		days, clock = d, value[dot+1:]
	}
	if clock != "" {
		parts := strings.Split(clock, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return invalid()
		}
		if len(parts) == 3 {
			secText, fracText, hasFraction := strings.Cut(parts[2], ".")
			parts[2] = secText
			if hasFraction {
				if fracText == "" || len(fracText) > 7 {
					return invalid()
				}
				f, err := strconv.ParseUint(fracText+strings.Repeat("0", 7-len(fracText)), 10, 64)
				if err != nil {
					return invalid()
				}
				fraction = int64(f)
			}
		}
		limits := []int64{23, 59, 59}
		targets := []*int64{&hours, &minutes, &seconds}
		for i, part := range parts {
			v, err := strconv.ParseUint(part, 10, 8)
			if err != nil || int64(v) > limits[i] {
				return invalid()
			}
			*targets[i] = int64(v)
		}
	}
	ticks := ((days*24+hours)*60+minutes)*60*TicksPerSecond + seconds*TicksPerSecond + fraction
	if negative {
		ticks = -ticks
	}
	return DurationFromTicks(ticks), nil
}

// FormatClockDuration formats duration as [-][d.]hh:mm:ss[.fffffff]
func FormatClockDuration(d time.Duration) string {
	ticks := DurationTicks(d)
	sign := ""
	if ticks < 0 {
		sign, ticks = "-", -ticks
	}
	fraction := ticks % TicksPerSecond
	total := ticks / TicksPerSecond
	seconds, total := total%60, total/60
	minutes, total := total%60, total/60
	hours, days := total%24, total/24
	builder := strings.Builder{}
	builder.WriteString(sign)
	if days > 0 {
		builder.WriteString(strconv.FormatInt(days, 10) + ".")
	}
	builder.WriteString(fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds))
	if fraction > 0 {
		builder.WriteString(fmt.Sprintf(".%07d", fraction))
	}
	return builder.String()
}
