// Package skills holds the technical skill catalog and extracts catalog skills from resume text.
package skills

import (
	"regexp"
	"slices"
	"sort"
)

// Category is a named group of lowercase catalog terms.
type Category struct {
	Name  string
	Terms []string
}

// Catalog is an immutable, ordered skill taxonomy. A term may belong to more
// than one category. Safe for concurrent use once built.
type Catalog struct {
	categories []Category
	terms      []string
	patterns   map[string]*regexp.Regexp
	membership map[string][]string
}

// NewCatalog builds a catalog from categories, preserving their order.
// Term patterns are compiled once here.
func NewCatalog(categories []Category) *Catalog {
	c := &Catalog{
		categories: make([]Category, 0, len(categories)),
		patterns:   make(map[string]*regexp.Regexp),
		membership: make(map[string][]string),
	}
	for _, cat := range categories {
		terms := append([]string(nil), cat.Terms...)
		c.categories = append(c.categories, Category{Name: cat.Name, Terms: terms})
		for _, term := range terms {
			if !containsString(c.membership[term], cat.Name) {
				c.membership[term] = append(c.membership[term], cat.Name)
			}
			if _, ok := c.patterns[term]; ok {
				continue
			}
			c.patterns[term] = regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
			c.terms = append(c.terms, term)
		}
	}
	sort.Strings(c.terms)
	return c
}

// Categories returns a copy of the categories in catalog order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	for i, cat := range c.categories {
		out[i] = Category{Name: cat.Name, Terms: slices.Clone(cat.Terms)}
	}
	return out
}

// Terms returns a copy of every distinct term, sorted.
func (c *Catalog) Terms() []string {
	return slices.Clone(c.terms)
}

// Contains reports whether term is a catalog term (exact, lowercase).
func (c *Catalog) Contains(term string) bool {
	_, ok := c.patterns[term]
	return ok
}

// CategoriesOf returns the names of every category listing term, in catalog order.
func (c *Catalog) CategoriesOf(term string) []string {
	return slices.Clone(c.membership[term])
}

// pattern returns the word-boundary pattern for a catalog term.
func (c *Catalog) pattern(term string) *regexp.Regexp {
	return c.patterns[term]
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

var defaultCatalog = NewCatalog(technicalSkills)

// DefaultCatalog returns the built-in technical skill catalog.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}
