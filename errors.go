package supadata

import "strings"

// Error is the single error type surfaced for every API-level failure:
// structured errors returned by the service, gateway failures in front of
// it, and local request validation. Transport failures (connection refused,
// timeout, DNS) are returned as ordinary wrapped errors instead, so callers
// can tell the two categories apart with errors.As.
type Error struct {
	// Code identifies the kind of error, e.g. "video-not-found".
	Code string `json:"code"`
	// Title is a short human-readable summary.
	Title string `json:"title"`
	// Description explains the failure in detail.
	Description string `json:"description"`
	// DocumentationURL points at the error's documentation page, when the
	// service provides one.
	DocumentationURL string `json:"documentation_url,omitempty"`
}

func (e *Error) Error() string {
	parts := make([]string, 0, 4)
	if e.Description != "" {
		parts = append(parts, e.Description)
	}
	if e.Code != "" {
		parts = append(parts, "Code: "+e.Code)
	}
	if e.Title != "" {
		parts = append(parts, "Title: "+e.Title)
	}
	if e.DocumentationURL != "" {
		parts = append(parts, "Documentation: "+e.DocumentationURL)
	}
	return strings.Join(parts, " | ")
}

func invalidRequest(title, description string) *Error {
	return &Error{Code: "invalid-request", Title: title, Description: description}
}
