package showtimes

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Meridiem suffixes recognized on raw showtime tokens.
const (
	suffixAM = "am"
	suffixPM = "pm"
)

// ParseShowtimes splits a raw showtimes blob into tokens and normalizes them
// according to mode. The empty mode means ModeClock24.
func ParseShowtimes(blob string, mode NormalizeMode) ([]string, error) {
	tokens := SplitShowtimes(blob)
	switch mode {
	case "", ModeClock24:
		return NormalizeShowtimes(tokens)
	case ModeSuffixCarry:
		return CarrySuffix(tokens)
	default:
		return nil, Errorf(EINVALID, "unknown normalize mode %q", mode)
	}
}

// SplitShowtimes removes all whitespace from blob and splits it on "|".
// Empty tokens are dropped.
func SplitShowtimes(blob string) []string {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, blob)

	tokens := []string{}
	for _, part := range strings.Split(stripped, "|") {
		if part = strings.TrimSpace(part); part != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens
}

// NormalizeShowtimes converts tokens to canonical 24-hour HH:MM strings.
// An explicit am/pm suffix applies to its token and to every following
// token without one, until another suffix is seen. Tokens before the first
// suffix are read as 24-hour times, so canonical input is returned unchanged.
func NormalizeShowtimes(tokens []string) ([]string, error) {
	out := make([]string, 0, len(tokens))
	active := ""
	for _, token := range tokens {
		canonical, next, err := NormalizeTime(token, active)
		if err != nil {
			return nil, err
		}
		out = append(out, canonical)
		active = next
	}
	return out, nil
}

// NormalizeTime converts a single token to HH:MM given the active suffix
// ("", "am" or "pm"). It returns the suffix in effect after the token.
func NormalizeTime(token, active string) (canonical string, next string, err error) {
	body, suffix := splitSuffix(token)
	if suffix != "" {
		active = suffix
	}

	hourText, minuteText, ok := strings.Cut(body, ":")
	if !ok || !isDigits(hourText) || len(hourText) > 2 || len(minuteText) != 2 || !isDigits(minuteText) {
		return "", active, Errorf(EMALFORMEDTIME, "malformed showtime %q", token)
	}
	hour, _ := strconv.Atoi(hourText)
	minute, _ := strconv.Atoi(minuteText)
	if minute > 59 {
		return "", active, Errorf(EMALFORMEDTIME, "showtime %q minute out of range", token)
	}

	switch active {
	case "":
		if hour > 23 {
			return "", active, Errorf(EMALFORMEDTIME, "showtime %q hour out of range", token)
		}
	default:
		if hour < 1 || hour > 12 {
			return "", active, Errorf(EMALFORMEDTIME, "showtime %q is not a 12-hour time", token)
		}
		hour %= 12
		if active == suffixPM {
			hour += 12
		}
	}

	return fmt.Sprintf("%02d:%02d", hour, minute), active, nil
}

// CarrySuffix keeps 12-hour notation and appends the most recent explicit
// suffix, as written, to tokens that lack one. Tokens before the first
// suffix are kept as-is.
func CarrySuffix(tokens []string) ([]string, error) {
	out := make([]string, 0, len(tokens))
	active := ""
	for _, token := range tokens {
		body, suffix := splitSuffix(token)
		if body == "" || !unicode.IsDigit(rune(body[0])) {
			return nil, Errorf(EMALFORMEDTIME, "malformed showtime %q", token)
		}
		switch {
		case suffix != "":
			active = token[len(body):]
			out = append(out, token)
		case active != "":
			out = append(out, token+active)
		default:
			out = append(out, token)
		}
	}
	return out, nil
}

// splitSuffix separates a trailing am/pm marker (any case) from token.
// The returned suffix is lower case, or empty when absent.
func splitSuffix(token string) (body, suffix string) {
	if len(token) < 2 {
		return token, ""
	}
	tail := strings.ToLower(token[len(token)-2:])
	if tail == suffixAM || tail == suffixPM {
		return token[:len(token)-2], tail
	}
	return token, ""
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
