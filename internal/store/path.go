package store

import "strings"

// DefaultSeparator joins the segments of a state path.
const DefaultSeparator = "."

// SeparateSubstateAndValuePaths splits a full value path into the path of the
// containing substate and the key of the value inside it. The value key is
// the segment after the last separator, so "a.b.c" yields ("a.b", "c").
// A path without a separator has no substate: ("", path).
func SeparateSubstateAndValuePaths(fullPath, separator string) (substate, value string) {
	if separator == "" {
		return "", fullPath
	}
	idx := strings.LastIndex(fullPath, separator)
	if idx < 0 {
		return "", fullPath
	}
	return fullPath[:idx], fullPath[idx+len(separator):]
}

// splitPath breaks a path into its segments. The empty path has none.
func splitPath(path, separator string) []string {
	if path == "" {
		return nil
	}
	if separator == "" {
		return []string{path}
	}
	return strings.Split(path, separator)
}
