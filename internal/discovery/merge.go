// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Merge combines the global and local result sets into one. Names collide
// case-insensitively; the local entry always wins. A conflict is recorded
// (under the local entry's original-case name) only when the displaced
// entry came from the global source: two local entries sharing a name is
// silent last-write-wins, since conflicts are tracked between sources, not
// within one.
//
// Merge is a pure function over two immutable inputs: it raises nothing and
// produces deterministic output — entries sorted global-before-local then
// by case-sensitive name, conflict names sorted lexicographically, and the
// summary recomputed from the final collection (overrides reduce the global
// count, so counts are not additive).
func Merge(global, local *ToolSet) *ToolSet {
	byKey := make(map[string]DiscoveredTool, len(global.Entries)+len(local.Entries))
	for _, e := range global.Entries {
		byKey[strings.ToLower(e.Tool.Name)] = e
	}

	var conflicts []string
	for _, e := range local.Entries {
		key := strings.ToLower(e.Tool.Name)
		if held, ok := byKey[key]; ok && held.SourceKind == SourceGlobal {
			conflicts = append(conflicts, e.Tool.Name)
		}
		byKey[key] = e
	}

	entries := maps.Values(byKey)
	slices.SortFunc(entries, func(a, b DiscoveredTool) int {
		if a.SourceKind != b.SourceKind {
			if a.SourceKind == SourceGlobal {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Tool.Name, b.Tool.Name)
	})
	slices.Sort(conflicts)

	return &ToolSet{
		Entries: entries,
		Summary: summarize(entries, conflicts),
	}
}
