package assets

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://assets.example.com/portfolio/a.png", "portfolio/a.png"},
		{"https://assets.example.com/bucket/portfolio/a.png", "portfolio/a.png"},
		{"http://localhost:9000/portfolio/resume.pdf", "portfolio/resume.pdf"},
		{"https://assets.example.com/a.png", ""},   // no folder component
		{"https://assets.example.com/", ""},        // no path
		{"", ""},                                   // empty
		{"://bad url", ""},                         // unparseable
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, ObjectKey(tc.url), "url=%q", tc.url)
	}
}
