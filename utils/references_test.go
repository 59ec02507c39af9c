package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linearcode/models"
)

func TestDetectReferences(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string // expected Raw values in order
	}{
		{
			name:     "empty text",
			text:     "",
			expected: nil,
		},
		{
			name:     "no marker",
			text:     "please look at this issue when you have time",
			expected: nil,
		},
		{
			name:     "single reference to end of text",
			text:     "broken build, @opencode run-tests --verbose",
			expected: []string{"@opencode run-tests --verbose"},
		},
		{
			name:     "marker only",
			text:     "@opencode",
			expected: []string{"@opencode"},
		},
		{
			name: "two references split at second marker",
			text: "@opencode fix the linter @opencode deploy staging",
			expected: []string{
				"@opencode fix the linter",
				"@opencode deploy staging",
			},
		},
		{
			name:     "case-insensitive marker",
			text:     "hey @OpenCode review this",
			expected: []string{"@OpenCode review this"},
		},
		{
			name: "three references keep document order",
			text: "@opencode a\n@opencode b\n@opencode c",
			expected: []string{
				"@opencode a",
				"@opencode b",
				"@opencode c",
			},
		},
		{
			name:     "trailing whitespace trimmed from raw",
			text:     "@opencode status   \n",
			expected: []string{"@opencode status"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs := DetectReferences(tt.text)
			require.Len(t, refs, len(tt.expected))
			for i, expected := range tt.expected {
				assert.Equal(t, expected, refs[i].Raw)
			}
		})
	}
}

func TestDetectReferences_Positions(t *testing.T) {
	text := "prefix @opencode first @opencode second"
	refs := DetectReferences(text)
	require.Len(t, refs, 2)

	assert.Equal(t, 7, refs[0].Position.Start)
	assert.Equal(t, 23, refs[0].Position.End)
	assert.Equal(t, 23, refs[1].Position.Start)
	assert.Equal(t, len(text), refs[1].Position.End)

	// Context captures the text leading up to the marker
	assert.True(t, strings.HasPrefix(refs[0].Context, "prefix "))
}

func TestDetectReferences_IsStateless(t *testing.T) {
	text := "@opencode one @opencode two"
	first := DetectReferences(text)
	second := DetectReferences(text)
	assert.Equal(t, first, second)
}

func TestHasReference(t *testing.T) {
	assert.True(t, HasReference("ping @opencode please"))
	assert.True(t, HasReference("ping @OPENCODE please"))
	assert.False(t, HasReference("no marker here"))
	assert.False(t, HasReference(""))
}

func TestExtractAction(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "action with options",
			raw:      "@opencode run-tests --verbose",
			expected: "run-tests",
		},
		{
			name:     "marker only defaults to help",
			raw:      "@opencode",
			expected: "help",
		},
		{
			name:     "marker with trailing spaces defaults to help",
			raw:      "@opencode   ",
			expected: "help",
		},
		{
			name:     "action is lower-cased",
			raw:      "@opencode Deploy staging",
			expected: "deploy",
		},
		{
			name:     "mixed-case marker is stripped",
			raw:      "@OpenCode status",
			expected: "status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action := ExtractAction(models.Reference{Raw: tt.raw})
			assert.Equal(t, tt.expected, action)
		})
	}
}

func TestHasOption(t *testing.T) {
	ref := models.Reference{Raw: "@opencode run-tests --verbose -f"}

	assert.True(t, HasOption(ref, []string{"verbose"}))
	assert.True(t, HasOption(ref, []string{"f"}))
	assert.True(t, HasOption(ref, []string{"missing", "verbose"}))
	assert.False(t, HasOption(ref, []string{"quiet"}))
	assert.False(t, HasOption(ref, nil))

	// Case-insensitive on both sides
	assert.True(t, HasOption(models.Reference{Raw: "@opencode build --Force"}, []string{"force"}))
}
