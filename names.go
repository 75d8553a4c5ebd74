package bindata

import "strings"

// ToSnakeCase rewrites a user-visible class name to the Registry's
// canonical lookup key: runs of uppercase collapse to one token, each
// token lowercases, and tokens join with underscores. This is the
// "registry's camel-case name rewriter" spec.md §1 calls an external
// collaborator — included here as a small, concrete convenience the
// core itself never calls (Register/Lookup take already-normalized
// names), so schema authors porting CamelCase type names can derive a
// registry key without hand-writing one.
func ToSnakeCase(name string) string {
	if name == "" {
		return ""
	}
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		upper := r >= 'A' && r <= 'Z'
		if upper {
			startOfRun := i == 0 || !(runes[i-1] >= 'A' && runes[i-1] <= 'Z')
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if i > 0 && (startOfRun || nextLower) {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
