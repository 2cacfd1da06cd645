package lib

import "strings"

// Slugify normalizes an admin-entered category id: lowercased, runs of
// whitespace collapsed to a single underscore. "Sheep Meat" -> "sheep_meat".
func Slugify(s string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	return strings.Join(fields, "_")
}
