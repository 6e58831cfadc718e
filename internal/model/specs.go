package model

import "strings"

// SplitSpecs breaks a comma-joined description into specification
// fragments, trimming whitespace and dropping empty segments. Fragments
// containing literal commas cannot survive this encoding; new clients
// should send the specs list directly.
func SplitSpecs(description string) []string {
	if strings.TrimSpace(description) == "" {
		return []string{}
	}

	var specs []string
	for _, part := range strings.Split(description, ",") {
		if part = strings.TrimSpace(part); part != "" {
			specs = append(specs, part)
		}
	}
	if specs == nil {
		return []string{}
	}
	return specs
}

// JoinSpecs renders a specs list as a comma-joined description for
// legacy display paths.
func JoinSpecs(specs []string) string {
	return strings.Join(specs, ", ")
}
