package showtimes

import (
	"regexp"
	"strings"
)

// indentRun matches a newline followed by indentation, which listing pages
// use to wrap address lines.
var indentRun = regexp.MustCompile(`\n\s+`)

// SplitAddress splits the text of an address block into the street address
// and an optional phone number separated by "|". Phone is nil when the block
// has no second segment or the segment is blank.
func SplitAddress(text string) (address string, phone *string) {
	parts := strings.Split(text, "|")

	address = strings.TrimSpace(indentRun.ReplaceAllString(parts[0], " "))
	if len(parts) > 1 {
		if p := strings.TrimSpace(parts[1]); p != "" {
			phone = &p
		}
	}
	return address, phone
}
