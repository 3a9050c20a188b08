package sanitizer

import (
	"github.com/microcosm-cc/bluemonday"
)

// HTMLSanitizer removes dangerous HTML elements and attributes before
// imported pages are converted to markdown.
//
// Thread-safe for concurrent use.
type HTMLSanitizer struct {
	policy *bluemonday.Policy
}

// NewHTMLSanitizer creates a sanitizer with safe HTML policies.
// Uses a UGC (User Generated Content) policy that allows common formatting
// while stripping dangerous elements like scripts, event handlers, and javascript: URLs.
func NewHTMLSanitizer() *HTMLSanitizer {
	policy := bluemonday.UGCPolicy()

	// Inline images exported by editors arrive as data URIs
	policy.AllowDataURIImages()

	// The document title is read separately and must not leak into the body
	policy.SkipElementsContent("title")

	return &HTMLSanitizer{policy: policy}
}

// Sanitize removes dangerous HTML while preserving safe content.
//
// Removes:
// - <script> tags
// - Event handlers (onclick, onerror, etc.)
// - javascript: URLs
//
// Preserves:
// - Basic formatting, headings, lists and tables
// - Links and images (with sanitized URLs)
// - Code blocks
func (s *HTMLSanitizer) Sanitize(html string) string {
	return s.policy.Sanitize(html)
}
