package note

import (
	"sort"
	"strings"
)

// Visible derives the display list from the collection plus the transient
// filter inputs. A note passes when it carries the selected tag (empty tag
// selects all) AND matches the search query (empty query matches all); the
// result is ordered by updatedAt descending, ties kept in input order.
// Pure function: no side effects, no stored state.
func Visible(notes []Note, query, tag string) []Note {
	q := strings.ToLower(query)

	var visible []Note
	for _, n := range notes {
		if tag != "" && !containsTag(n.Tags, tag) {
			continue
		}
		if q != "" && !matchesQuery(n, q) {
			continue
		}
		visible = append(visible, n)
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].UpdatedAt.After(visible[j].UpdatedAt)
	})
	return visible
}

// matchesQuery reports whether q (already lowercased) appears as a substring
// of the note's title, content, or any of its tags.
func matchesQuery(n Note, q string) bool {
	if strings.Contains(strings.ToLower(n.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(n.Content), q) {
		return true
	}
	for _, t := range n.Tags {
		if strings.Contains(t, q) {
			return true
		}
	}
	return false
}

// AllTags returns the deduplicated union of tags across the full collection,
// sorted lexicographically. It ignores search and tag selection so filter
// controls always show every tag in use.
func AllTags(notes []Note) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, n := range notes {
		for _, t := range n.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	sort.Strings(tags)
	return tags
}
