package library

// SortStrategy selects the ordering applied by Catalog.SortGenre. The
// zero value sorts by title.
type SortStrategy int

const (
	// SortByTitle orders books by title, ascending.
	SortByTitle SortStrategy = iota
	// SortByAuthor orders books by author, ascending.
	SortByAuthor
	// SortByGenre orders books by genre, ascending.
	SortByGenre
)

// String returns the display label for the strategy.
func (s SortStrategy) String() string {
	switch s {
	case SortByAuthor:
		return "Author"
	case SortByGenre:
		return "Genre"
	default:
		return "Title"
	}
}

// less reports whether a orders before b under s. Comparisons are
// case-sensitive lexicographic.
func (s SortStrategy) less(a, b *Book) bool {
	switch s {
	case SortByAuthor:
		return a.Author < b.Author
	case SortByGenre:
		return a.Genre < b.Genre
	default:
		return a.Title < b.Title
	}
}
