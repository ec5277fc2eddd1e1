package morphology

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePartOfSpeech(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "single canonical tag",
			input:    []string{"noun"},
			expected: []string{"noun"},
		},
		{
			name:     "case insensitive",
			input:    []string{"NOUN"},
			expected: []string{"noun"},
		},
		{
			name:     "whitespace trimmed",
			input:    []string{"  verb "},
			expected: []string{"verb"},
		},
		{
			name:     "unknown tags dropped",
			input:    []string{"gerund", "noun"},
			expected: []string{"noun"},
		},
		{
			name:     "multi-tag output truncated to first",
			input:    []string{"adjective", "adverb"},
			expected: []string{"adjective"},
		},
		{
			name:     "duplicates collapsed before truncation",
			input:    []string{"verb", "Verb", "noun"},
			expected: []string{"verb"},
		},
		{
			name:     "empty input",
			input:    nil,
			expected: []string{},
		},
		{
			name:     "only unknown tags",
			input:    []string{"article", "numeral"},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizePartOfSpeech(tt.input))
		})
	}
}

func TestNormalizeArticle(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"der", "der"},
		{"Die", "die"},
		{" DAS ", "das"},
		{"", ""},
		{"den", ""},
		{"la", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeArticle(tt.input), "input %q", tt.input)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		pos         []string
		article     string
		expectedPos []string
		expectedArt string
		expectedErr error
	}{
		{
			name:        "noun with article",
			pos:         []string{"noun"},
			article:     "die",
			expectedPos: []string{"noun"},
			expectedArt: "die",
		},
		{
			name:        "noun without article",
			pos:         []string{"noun"},
			article:     "",
			expectedErr: ErrArticleRequired,
		},
		{
			name:        "noun with invalid article",
			pos:         []string{"noun"},
			article:     "le",
			expectedErr: ErrArticleRequired,
		},
		{
			name:        "verb with article",
			pos:         []string{"verb"},
			article:     "der",
			expectedErr: ErrArticleNotAllowed,
		},
		{
			name:        "unset morphology",
			pos:         nil,
			article:     "",
			expectedPos: []string{},
			expectedArt: "",
		},
		{
			name:        "article without part of speech",
			pos:         nil,
			article:     "das",
			expectedErr: ErrArticleNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, art, err := Validate(tt.pos, tt.article)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedPos, pos)
			assert.Equal(t, tt.expectedArt, art)
		})
	}
}

func TestCapitalizeFirst(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"tisch", "Tisch"},
		{"Tisch", "Tisch"},
		{"übung", "Übung"},
		{"ärger", "Ärger"},
		{"", ""},
		{"123abc", "123abc"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, CapitalizeFirst(tt.input), "input %q", tt.input)
	}
}
