package content

import (
	"regexp"
	"strings"
)

// Descriptor describes one content collection: its route/collection name,
// create-time validation policy, list ordering, which field (if any) points at
// an externally hosted asset, and whether the "at most one active record"
// rule applies.
type Descriptor struct {
	Name         string
	Required     []string
	SortField    string
	SortAsc      bool
	AssetField   string
	SingleActive bool
	// Prepare runs on new documents before validation (slug generation etc.)
	Prepare func(fields map[string]any)
}

// Validate checks that every required field is present and non-empty.
func (d Descriptor) Validate(fields map[string]any) error {
	var missing []string
	for _, name := range d.Required {
		v, ok := fields[name]
		if !ok || v == nil {
			missing = append(missing, name)
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

var slugStrip = regexp.MustCompile(`[^\w-]+`)

// Slugify derives a URL slug from a title: "My Cool Blog" -> "my-cool-blog".
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = strings.ReplaceAll(s, " ", "-")
	return slugStrip.ReplaceAllString(s, "")
}

// Collections returns the descriptors for every content collection served by
// the admin panel and the public page. Ordering matches the original site:
// newest-first for portfolio-style lists, insertion order for timeline-style
// ones (education, experience, contacts), date fields for dated entries.
func Collections() []Descriptor {
	return []Descriptor{
		{
			Name:       "projects",
			Required:   []string{"title", "description", "imageUrl"},
			SortField:  "createdAt",
			AssetField: "imageUrl",
		},
		{
			Name:       "blogs",
			Required:   []string{"title", "content", "category"},
			SortField:  "createdAt",
			AssetField: "imageUrl",
			Prepare: func(fields map[string]any) {
				if s, _ := fields["slug"].(string); s == "" {
					if title, _ := fields["title"].(string); title != "" {
						fields["slug"] = Slugify(title)
					}
				}
			},
		},
		{
			Name:      "skills",
			Required:  []string{"name", "category", "badge", "experience"},
			SortField: "createdAt",
		},
		{
			Name:       "certificates",
			Required:   []string{"name", "issuer", "issueDate", "imageUrl"},
			SortField:  "issueDate",
			AssetField: "imageUrl",
		},
		{
			Name:       "achievements",
			Required:   []string{"title", "organization", "date"},
			SortField:  "date",
			AssetField: "imageUrl",
		},
		{
			Name:      "education",
			Required:  []string{"degree", "school", "year"},
			SortField: "createdAt",
			SortAsc:   true,
		},
		{
			Name:      "experience",
			Required:  []string{"role", "company", "duration"},
			SortField: "createdAt",
			SortAsc:   true,
		},
		{
			Name:      "contacts",
			Required:  []string{"platform", "value", "link"},
			SortField: "createdAt",
			SortAsc:   true,
		},
		{
			Name:       "photos",
			Required:   []string{"name", "imageUrl"},
			SortField:  "createdAt",
			AssetField: "imageUrl",
		},
		{
			Name:         "resumes",
			Required:     []string{"name", "fileUrl"},
			SortField:    "createdAt",
			AssetField:   "fileUrl",
			SingleActive: true,
		},
		{
			Name:      "dsa",
			Required:  []string{"platform", "problemsSolved", "profileLink"},
			SortField: "createdAt",
		},
	}
}
