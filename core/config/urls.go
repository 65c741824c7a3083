package config

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// imageExtensions are the raster and vector formats browsers display in <img>.
var imageExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".svg": true, ".webp": true, ".avif": true, ".bmp": true, ".ico": true,
}

// IsImageURL reports whether rawURL names a file with an image extension.
// Query strings and fragments are ignored.
func IsImageURL(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return imageExtensions[strings.ToLower(path.Ext(parsed.Path))]
}

// checkImageURL accepts absolute http(s) URLs, root or path relative
// references and the "#" placeholder.
func checkImageURL(rawURL string) error {
	if rawURL == "" || rawURL == "#" {
		return nil
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid image URL %q: %w", rawURL, err)
	}
	switch parsed.Scheme {
	case "", "http", "https":
		return nil
	}
	return fmt.Errorf("invalid image URL %q: scheme %q not allowed", rawURL, parsed.Scheme)
}
