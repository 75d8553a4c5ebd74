package main

import (
	"fmt"
	"strconv"
	"strings"
)

// pathSegment is one step of a dotted/bracketed field path: either a
// named field ("header.version") or a numeric array index
// ("items[2]"). Adapted from the teacher's field-path-to-Go-template
// parser: the same dot/bracket scanning, repurposed to walk bindata's
// own Node tree directly (Struct.Field / Array.At) rather than to emit
// text/template syntax, since there is no generic document to render
// against here.
type pathSegment struct {
	name  string
	index int
	isIdx bool
}

// parsePath splits "a.b[2].c" into a sequence of path segments.
func parsePath(path string) ([]pathSegment, error) {
	if path == "" {
		return nil, fmt.Errorf("empty field path")
	}
	var segs []pathSegment
	for _, part := range strings.Split(path, ".") {
		if part == "" {
			return nil, fmt.Errorf("empty path component in %q", path)
		}
		name, indexes, err := splitBrackets(part)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", path, err)
		}
		segs = append(segs, pathSegment{name: name})
		for _, idx := range indexes {
			segs = append(segs, pathSegment{index: idx, isIdx: true})
		}
	}
	return segs, nil
}

// splitBrackets separates "items[0][1]" into its base name and the
// sequence of bracketed integer indices.
func splitBrackets(part string) (string, []int, error) {
	start := strings.IndexByte(part, '[')
	if start == -1 {
		return part, nil, nil
	}
	name := part[:start]
	if name == "" {
		return "", nil, fmt.Errorf("missing field name before '[' in %q", part)
	}
	rest := part[start:]
	var indexes []int
	for len(rest) > 0 {
		if rest[0] != '[' {
			return "", nil, fmt.Errorf("malformed bracket in %q", part)
		}
		end := strings.IndexByte(rest, ']')
		if end == -1 {
			return "", nil, fmt.Errorf("unclosed '[' in %q", part)
		}
		n, err := strconv.Atoi(rest[1:end])
		if err != nil {
			return "", nil, fmt.Errorf("non-numeric index %q in %q", rest[1:end], part)
		}
		indexes = append(indexes, n)
		rest = rest[end+1:]
	}
	return name, indexes, nil
}
