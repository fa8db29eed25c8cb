// Package tests contains unit tests for the README link rewriting.
package tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/pywheeler/pywheeler/service/readme"
)

// TestReadmeLinkRewrite tests relative link expansion for publication
func TestReadmeLinkRewrite(t *testing.T) {
	svc := readme.NewService("https://github.com/acme/widgets", "main", "README.md", "")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "relative link",
			input: "[guide](docs/guide.md)",
			want:  "[guide](https://github.com/acme/widgets/blob/main/docs/guide.md)",
		},
		{
			name:  "relative image",
			input: "![logo](img/logo.png)",
			want:  "![logo](https://github.com/acme/widgets/raw/main/img/logo.png)",
		},
		{
			name:  "absolute link untouched",
			input: "[site](https://example.com/page)",
			want:  "[site](https://example.com/page)",
		},
		{
			name:  "anchor untouched",
			input: "[section](#install)",
			want:  "[section](#install)",
		},
		{
			name:  "mailto untouched",
			input: "[mail](mailto:dev@example.com)",
			want:  "[mail](mailto:dev@example.com)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.Rewrite(tt.input))
		})
	}
}

// TestReadmeOutputDefaultsToInput tests in-place rewriting
func TestReadmeOutputDefaultsToInput(t *testing.T) {
	svc := readme.NewService("https://github.com/acme/widgets", "main", "README.md", "")
	assert.Equal(t, "README.md", svc.OutputPath())
}
