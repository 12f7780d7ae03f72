package assets

import (
	"net/url"
	"strings"
)

// ObjectKey derives the asset-store object key from a stored asset URL.
// Uploaded files live one folder deep in the bucket ("portfolio/<name>.png"),
// so the key is the last two path segments. Returns "" when the URL does not
// follow that convention; callers treat that as "nothing to clean up".
func ObjectKey(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	segs := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segs) < 2 {
		return ""
	}
	folder := segs[len(segs)-2]
	name := segs[len(segs)-1]
	if folder == "" || name == "" {
		return ""
	}
	return folder + "/" + name
}
