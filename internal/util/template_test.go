package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTemplate(t *testing.T) {
	tests := []struct {
		name string
		text string
		data map[string]any
		want string
	}{
		{
			name: "no markers fast path",
			text: "plain text",
			want: "plain text",
		},
		{
			name: "simple substitution",
			text: "Research this topic: {{.Topic}}",
			data: map[string]any{"Topic": "go generics"},
			want: "Research this topic: go generics",
		},
		{
			name: "join helper",
			text: `{{join ", " .Items}}`,
			data: map[string]any{"Items": []string{"a", "b", "c"}},
			want: "a, b, c",
		},
		{
			name: "default helper",
			text: `{{default "article" .Kind}}`,
			data: map[string]any{"Kind": ""},
			want: "article",
		},
		{
			name: "upper helper",
			text: "{{upper .Word}}",
			data: map[string]any{"Word": "loud"},
			want: "LOUD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RenderTemplate(tt.text, tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderTemplate_ParseError(t *testing.T) {
	_, err := RenderTemplate("{{.Broken", nil)
	assert.Error(t, err)
}
