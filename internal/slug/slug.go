// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from arbitrary strings.
package slug

import (
	"regexp"
	"strings"
)

// nonAlphanumeric matches any run of characters outside [a-z0-9].
var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Generate creates a URL-friendly slug from the given string: lowercase,
// every non-alphanumeric run collapsed to a single hyphen, leading and
// trailing hyphens trimmed.
// Example: "Hello, World! 2024" → "hello-world-2024"
func Generate(s string) string {
	result := nonAlphanumeric.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(result, "-")
}
