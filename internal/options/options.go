// Package options provides shared validation helpers for functional-options
// configurations.
package options

import "errors"

// ValidateSingleInputSource verifies that exactly one input source was
// configured. The provided flags report which sources are set; noneMsg and
// multipleMsg become the error text for the zero and many cases.
func ValidateSingleInputSource(noneMsg, multipleMsg string, sourcesSet ...bool) error {
	count := 0
	for _, set := range sourcesSet {
		if set {
			count++
		}
	}
	switch {
	case count == 0:
		return errors.New(noneMsg)
	case count > 1:
		return errors.New(multipleMsg)
	}
	return nil
}
