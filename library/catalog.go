// Package library implements the lending engine: a genre-bucketed
// catalog of books, users borrowing and returning them, pluggable sort
// orders, and snapshot iteration over available titles.
package library

import (
	"fmt"
	"sort"
	"strings"
)

// Catalog groups books into genre buckets. Genre keys are
// case-sensitive; title lookup is not. A bucket keeps insertion order
// until SortGenre reorders it.
type Catalog struct {
	genres       map[string][]*Book
	strategy     SortStrategy
	currentGenre string
}

// NewCatalog returns an empty catalog sorting by title.
func NewCatalog() *Catalog {
	return &Catalog{genres: make(map[string][]*Book)}
}

// AddBook appends b to the bucket for its genre, creating the bucket
// on first use.
func (c *Catalog) AddBook(b *Book) {
	c.genres[b.Genre] = append(c.genres[b.Genre], b)
}

// FindBook locates a book by title, ignoring case. Bucket scan order
// is unspecified, so with duplicate titles any one match may be
// returned.
func (c *Catalog) FindBook(title string) (*Book, error) {
	for _, bucket := range c.genres {
		for _, b := range bucket {
			if strings.EqualFold(b.Title, title) {
				return b, nil
			}
		}
	}
	return nil, fmt.Errorf("find %q: %w", title, ErrNotFound)
}

// Genres returns the genre names present in the catalog, in no
// particular order.
func (c *Catalog) Genres() []string {
	names := make([]string, 0, len(c.genres))
	for g := range c.genres {
		names = append(names, g)
	}
	return names
}

// BooksInGenre returns a copy of the genre's bucket in its current
// order. Unknown genres yield an empty slice.
func (c *Catalog) BooksInGenre(genre string) []*Book {
	bucket := c.genres[genre]
	out := make([]*Book, len(bucket))
	copy(out, bucket)
	return out
}

// SetSortStrategy replaces the ordering used by SortGenre. It does not
// reorder anything by itself.
func (c *Catalog) SetSortStrategy(s SortStrategy) { c.strategy = s }

// Strategy returns the active sorting strategy.
func (c *Catalog) Strategy() SortStrategy { return c.strategy }

// SortGenre permanently reorders the genre's bucket in place using the
// active strategy. Ties keep their prior order. A genre with no bucket
// is a no-op.
func (c *Catalog) SortGenre(genre string) {
	bucket := c.genres[genre]
	sort.SliceStable(bucket, func(i, j int) bool {
		return c.strategy.less(bucket[i], bucket[j])
	})
}

// SetCurrentGenre pins Iterator to one genre. The empty string clears
// the pin so Iterator walks the whole catalog.
func (c *Catalog) SetCurrentGenre(genre string) { c.currentGenre = genre }

// GenreIterator returns a snapshot iterator over the genre's currently
// available books. Unknown genres yield an empty iterator.
func (c *Catalog) GenreIterator(genre string) *BookIterator {
	return newBookIterator(c.genres[genre])
}

// Iterator walks the pinned genre when one is set, otherwise every
// available book across all buckets.
func (c *Catalog) Iterator() *BookIterator {
	if c.currentGenre != "" {
		return c.GenreIterator(c.currentGenre)
	}
	var all []*Book
	for _, bucket := range c.genres {
		all = append(all, bucket...)
	}
	return newBookIterator(all)
}
