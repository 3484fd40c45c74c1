package discover

import "strings"

// mergeContacts combines the search and page passes into one deduplicated,
// capped list. Contacts are inserted in source-priority order (search before
// page) and the first write wins per case-insensitive full name, so a
// page-sourced duplicate never overwrites a search-sourced entry.
func mergeContacts(search, page []Contact, maxContacts int) []Contact {
	seen := make(map[string]struct{}, len(search)+len(page))
	merged := make([]Contact, 0, len(search)+len(page))

	for _, list := range [][]Contact{search, page} {
		for _, c := range list {
			key := strings.ToLower(c.FullName)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, c)
		}
	}

	if maxContacts > 0 && len(merged) > maxContacts {
		merged = merged[:maxContacts]
	}
	return merged
}
