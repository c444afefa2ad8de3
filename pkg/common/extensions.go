package common

import (
	"net/url"
	"path"
	"strings"
)

var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".bmp":  {},
	".webp": {},
}

// IsImageFormat returns true if the path (or the path component of a URL) has an image file extension.
// Query strings and fragments are ignored, the comparison is case-insensitive.
func IsImageFormat(rawURL string) bool {
	p := rawURL
	parsed, err := url.Parse(rawURL)
	if err == nil && parsed.Path != "" {
		p = parsed.Path
	}
	_, ok := imageExtensions[strings.ToLower(path.Ext(p))]
	return ok
}

// IsImageContentType returns true for "image/*" MIME types (parameters are ignored).
func IsImageContentType(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "image/")
}
