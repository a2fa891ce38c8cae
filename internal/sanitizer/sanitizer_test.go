package sanitizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	c := NewTextCleaner()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text unchanged", "Will it rain tomorrow?", "Will it rain tomorrow?"},
		{"tags stripped", "<b>Yes</b>", "Yes"},
		{"script removed", `<script>alert("x")</script>No`, "No"},
		{"whitespace trimmed", "  Maybe  ", "Maybe"},
		{"empty stays empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Clean(tt.in))
		})
	}
}

func TestCleanAll(t *testing.T) {
	c := NewTextCleaner()
	got := c.CleanAll([]string{"<i>Yes</i>", " No "})
	assert.Equal(t, []string{"Yes", "No"}, got)
}
