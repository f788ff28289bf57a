// Package media turns opaque profile-picture references into display URLs.
// Image transformation itself happens on the marketplace CDN.
package media

import (
	"net/url"
	"strings"
)

// Resolver builds display URLs from storage references.
type Resolver struct {
	baseURL string
}

// NewResolver creates a resolver rooted at the CDN base URL.
func NewResolver(baseURL string) *Resolver {
	return &Resolver{baseURL: strings.TrimRight(baseURL, "/")}
}

// URL resolves a reference. Absolute references pass through unchanged;
// empty references resolve to empty (caller skips the photo).
func (r *Resolver) URL(ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	if r.baseURL == "" {
		return ""
	}
	return r.baseURL + "/" + url.PathEscape(ref)
}
