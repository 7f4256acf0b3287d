package kernel

import (
	"fmt"
	"strings"

	"selfstorage/internal/pkg/errs"
)

// Size is the size category of a storage unit.
type Size int

const (
	// UnknownSize catches uninitialized values.
	UnknownSize Size = iota
	Small
	Medium
	Large
)

var sizeCodes = map[Size]string{
	Small:  "small",
	Medium: "medium",
	Large:  "large",
}

var sizeLabels = map[Size]string{
	Small:  "Small (up to 1 m³)",
	Medium: "Medium (1-5 m³)",
	Large:  "Large (over 5 m³)",
}

// AllSizes lists the valid sizes in ascending order.
func AllSizes() []Size {
	return []Size{Small, Medium, Large}
}

// ParseSize maps a persisted or transported code ("small", "medium", "large") to a Size.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseSize(code string) (Size, error) {
	normalized := strings.ToLower(strings.TrimSpace(code))
	for size, c := range sizeCodes {
		if c == normalized {
			return size, nil
		}
	}
	return UnknownSize, errs.NewValueIsInvalidErrorWithCause(
		"size",
		fmt.Errorf("%q is not one of small, medium, large", code),
	)
}

// Validate fails for UnknownSize and out-of-range values.
func (s Size) Validate() error {
	if _, ok := sizeCodes[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("size", fmt.Errorf("%d is not a valid size", s))
	}
	return nil
}

// String returns the code used in storage and on the wire.
func (s Size) String() string {
	if code, ok := sizeCodes[s]; ok {
		return code
	}
	return "unknown"
}

// Label is the human readable description shown to customers.
func (s Size) Label() string {
	if label, ok := sizeLabels[s]; ok {
		return label
	}
	return "Unknown"
}
