package types

import (
	"regexp"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// BusinessUnitCode is the alphabetic prefix of a risk identifier, e.g. "DP" in "DP-P01-R01".
type BusinessUnitCode string

var codePattern = regexp.MustCompile(`^[A-Za-z]+$`)

// Validate checks if the code is a non-empty run of ASCII letters
func (c BusinessUnitCode) Validate() error {
	if c == "" {
		return goerr.New("business unit code cannot be empty")
	}
	if !codePattern.MatchString(string(c)) {
		return goerr.New("business unit code must be alphabetic", goerr.V("code", c))
	}
	return nil
}

// Key returns the case-folded form used for lookups
func (c BusinessUnitCode) Key() string {
	return strings.ToUpper(string(c))
}

// String returns the string representation of BusinessUnitCode
func (c BusinessUnitCode) String() string {
	return string(c)
}
