// Package sanitizer strips markup from user supplied text such as market
// questions and outcome labels.
package sanitizer

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

type TextCleaner struct {
	policy *bluemonday.Policy
}

// NewTextCleaner returns a cleaner backed by bluemonday's strict policy,
// which removes every HTML element and attribute.
func NewTextCleaner() *TextCleaner {
	return &TextCleaner{policy: bluemonday.StrictPolicy()}
}

// Clean strips markup and trims surrounding whitespace.
func (c *TextCleaner) Clean(s string) string {
	return strings.TrimSpace(c.policy.Sanitize(s))
}

// CleanAll applies Clean to every element and returns a new slice.
func (c *TextCleaner) CleanAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = c.Clean(s)
	}
	return out
}
