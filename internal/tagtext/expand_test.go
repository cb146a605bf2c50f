package tagtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpand(t *testing.T) {
	src := "Hi [[Name]], visit [[Your link]] at [[Company name]] [[Other]]"
	got := Expand(src, reviewTags, map[string]string{
		"Name":      "Jane",
		"Your link": "https://example.com/r/1",
	})
	assert.Equal(t, "Hi Jane, visit https://example.com/r/1 at <company name> [[Other]]", got)
}

func TestPlaceholders(t *testing.T) {
	got := Placeholders("[[Name]] [[Other]] [[Name]]\n[[Your link]]", reviewTags)
	assert.Equal(t, []string{"Name", "Name", "Your link"}, got)
	assert.Empty(t, Placeholders("plain", reviewTags))
}
