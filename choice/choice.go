// Package choice owns the ordered set of weighted wheel options
package choice

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/lixenwraith/spin-wheel/constants"
)

// ID identifies a choice for the lifetime of a session, never reused
type ID uint32

// Choice is one weighted option on the wheel
type Choice struct {
	ID     ID
	Label  string
	Weight int
}

// CleanInput prepares raw typed text for use as a label
// Surrounding whitespace is trimmed and line breaks become spaces
func CleanInput(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// SanitizeLabel normalizes to NFC and bounds the label to MaxLabelLength runes
func SanitizeLabel(label string) string {
	label = norm.NFC.String(label)
	if utf8.RuneCountInString(label) <= constants.MaxLabelLength {
		return label
	}
	runes := []rune(label)
	return string(runes[:constants.MaxLabelLength])
}

func clampWeight(w int) int {
	if w < 1 {
		return 1
	}
	if w > constants.MaxWeight {
		return constants.MaxWeight
	}
	return w
}
