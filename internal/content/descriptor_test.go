package content

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	require.Equal(t, "my-cool-blog", Slugify("My Cool Blog"))
	require.Equal(t, "hello-world", Slugify("Hello, World!"))
	require.Equal(t, "already-a-slug", Slugify("already-a-slug"))
}

func TestDescriptorValidate(t *testing.T) {
	d := Descriptor{Name: "projects", Required: []string{"title", "description", "imageUrl"}}

	err := d.Validate(map[string]any{"title": "X", "description": "Y", "imageUrl": "https://host/p/a.png"})
	require.NoError(t, err)

	err = d.Validate(map[string]any{"title": "X", "description": "   "})
	require.Error(t, err)
	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	require.ElementsMatch(t, []string{"description", "imageUrl"}, verr.Missing)
}

func TestBlogDescriptorGeneratesSlug(t *testing.T) {
	var blogs Descriptor
	for _, d := range Collections() {
		if d.Name == "blogs" {
			blogs = d
		}
	}
	require.NotNil(t, blogs.Prepare)

	fields := map[string]any{"title": "My Cool Blog", "content": "c", "category": "tech"}
	blogs.Prepare(fields)
	require.Equal(t, "my-cool-blog", fields["slug"])

	// an explicit slug is left alone
	fields = map[string]any{"title": "My Cool Blog", "slug": "custom"}
	blogs.Prepare(fields)
	require.Equal(t, "custom", fields["slug"])
}

func TestCollectionsAreWellFormed(t *testing.T) {
	seen := map[string]bool{}
	for _, d := range Collections() {
		require.NotEmpty(t, d.Name)
		require.False(t, seen[d.Name], "duplicate collection %s", d.Name)
		seen[d.Name] = true
		require.NotEmpty(t, d.SortField, "%s needs a sort field", d.Name)
		require.NotEmpty(t, d.Required, "%s needs required fields", d.Name)
	}
	require.True(t, seen["resumes"])
	require.True(t, seen["projects"])
}
