// Package gallery holds the photo collection and its category filter.
package gallery

// AllSelector is the sentinel selector for the whole collection.
const AllSelector = "all"

// Category is a named grouping of photo filenames.
// A category with All set shows the whole collection and has no own list.
type Category struct {
	Name   string
	All    bool
	Photos []string
}

// Index maps categories to photo sets and owns the deduplicated collection.
// It is built once at load and never mutated, so the collection order is
// stable across category switches.
type Index struct {
	categories []Category
	collection []string
	byName     map[string][]string
}

// NewIndex builds the collection by flattening every non-"all" category and
// dropping duplicates while keeping first-seen order.
func NewIndex(categories []Category) *Index {
	idx := &Index{
		categories: categories,
		byName:     make(map[string][]string, len(categories)),
	}

	seen := make(map[string]bool)
	for _, c := range categories {
		if c.All {
			continue
		}
		for _, p := range c.Photos {
			if !seen[p] {
				seen[p] = true
				idx.collection = append(idx.collection, p)
			}
		}
		idx.byName[c.Name] = append(idx.byName[c.Name], c.Photos...)
	}
	for name, photos := range idx.byName {
		idx.byName[name] = dedupe(photos)
	}

	return idx
}

// FromList builds an index with a single implicit "all" category.
func FromList(photos []string) *Index {
	return NewIndex([]Category{{Name: AllSelector, Photos: photos}})
}

// Collection returns the deduplicated photo list in first-seen order.
func (idx *Index) Collection() []string {
	return idx.collection
}

// Len returns the number of unique photos.
func (idx *Index) Len() int {
	return len(idx.collection)
}

// Selectors returns the category selectors in configuration order with
// AllSelector first. Categories flagged All are folded into AllSelector.
func (idx *Index) Selectors() []string {
	result := []string{AllSelector}
	seen := map[string]bool{AllSelector: true}
	for _, c := range idx.categories {
		if c.All || seen[c.Name] {
			continue
		}
		seen[c.Name] = true
		result = append(result, c.Name)
	}
	return result
}

// IsAll reports whether selector refers to the whole collection.
func (idx *Index) IsAll(selector string) bool {
	if selector == "" || selector == AllSelector {
		return true
	}
	for _, c := range idx.categories {
		if c.All && c.Name == selector {
			return true
		}
	}
	return false
}

// Filter returns the ordered photo subset for selector: the whole collection
// for "all", the category's own list otherwise, and nil for unknown names.
func (idx *Index) Filter(selector string) []string {
	if idx.IsAll(selector) {
		return idx.collection
	}
	return idx.byName[selector]
}

func dedupe(s []string) []string {
	seen := make(map[string]bool, len(s))
	result := make([]string, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
