package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testCategories() []Category {
	return []Category{
		{Name: "All", All: true},
		{Name: "Kyoto", Photos: []string{"1.jpg", "2.jpg", "3.jpg"}},
		{Name: "Osaka", Photos: []string{"3.jpg", "4.jpg", "4.jpg"}},
		{Name: "Food", Photos: []string{"2.jpg", "5.jpg"}},
	}
}

func TestNewIndex_CollectionDedupesInFirstSeenOrder(t *testing.T) {
	idx := NewIndex(testCategories())

	assert.Equal(t, []string{"1.jpg", "2.jpg", "3.jpg", "4.jpg", "5.jpg"}, idx.Collection())
	assert.Equal(t, 5, idx.Len())
}

func TestFilter(t *testing.T) {
	idx := NewIndex(testCategories())

	tests := []struct {
		selector string
		want     []string
	}{
		{"all", []string{"1.jpg", "2.jpg", "3.jpg", "4.jpg", "5.jpg"}},
		{"", []string{"1.jpg", "2.jpg", "3.jpg", "4.jpg", "5.jpg"}},
		{"All", []string{"1.jpg", "2.jpg", "3.jpg", "4.jpg", "5.jpg"}},
		{"Kyoto", []string{"1.jpg", "2.jpg", "3.jpg"}},
		{"Osaka", []string{"3.jpg", "4.jpg"}},
		{"Food", []string{"2.jpg", "5.jpg"}},
	}
	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			assert.Equal(t, tt.want, idx.Filter(tt.selector))
		})
	}
}

func TestFilter_UnknownCategoryIsEmpty(t *testing.T) {
	idx := NewIndex(testCategories())
	assert.Empty(t, idx.Filter("Tokyo"))
}

func TestFilter_NeverReturnsDuplicates(t *testing.T) {
	idx := NewIndex(testCategories())

	for _, sel := range idx.Selectors() {
		seen := map[string]bool{}
		for _, p := range idx.Filter(sel) {
			if seen[p] {
				t.Errorf("Filter(%q) contains duplicate %q", sel, p)
			}
			seen[p] = true
		}
	}
}

func TestFilter_DoesNotReorderCollection(t *testing.T) {
	idx := NewIndex(testCategories())
	before := append([]string(nil), idx.Collection()...)

	idx.Filter("Food")
	idx.Filter("Osaka")

	assert.Equal(t, before, idx.Collection())
}

func TestSelectors(t *testing.T) {
	idx := NewIndex(testCategories())
	assert.Equal(t, []string{"all", "Kyoto", "Osaka", "Food"}, idx.Selectors())
}

func TestFromList(t *testing.T) {
	idx := FromList([]string{"a.jpg", "b.jpg", "a.jpg"})

	assert.Equal(t, []string{"a.jpg", "b.jpg"}, idx.Filter(AllSelector))
	assert.Equal(t, []string{"all"}, idx.Selectors())
}

func TestNewIndex_Empty(t *testing.T) {
	idx := NewIndex(nil)

	assert.Equal(t, 0, idx.Len())
	assert.Empty(t, idx.Filter(AllSelector))
}
