package domain

import "sort"

// DeriveCatalog returns every distinct concept tag across attempts, sorted lexicographically.
func DeriveCatalog(attempts []Attempt) []string {
	seen := make(map[string]struct{})
	for _, a := range attempts {
		for _, tag := range a.ConceptTags {
			seen[tag] = struct{}{}
		}
	}

	catalog := make([]string, 0, len(seen))
	for tag := range seen {
		catalog = append(catalog, tag)
	}
	sort.Strings(catalog)
	return catalog
}
