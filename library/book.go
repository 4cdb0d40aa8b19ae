package library

import (
	"fmt"
	"strings"
)

// Book is a single title in the catalog. Availability flips as the
// book is checked out and returned; everything else is fixed at
// creation.
type Book struct {
	Title     string
	Author    string
	Genre     string
	Available bool
}

// NewBook returns an available book.
func NewBook(title, author, genre string) *Book {
	return &Book{Title: title, Author: author, Genre: genre, Available: true}
}

// knownTypes lists the catalog types the factory recognizes.
var knownTypes = map[string]struct{}{
	"fiction":     {},
	"non-fiction": {},
	"mystery":     {},
	"romance":     {},
	"sci-fi":      {},
}

// NewBookOfType builds a book for a catalog type. Recognized types
// (fiction, non-fiction, mystery, romance, sci-fi, matched without
// regard to case) keep the supplied genre; any other type files the
// book under "General".
func NewBookOfType(bookType, title, author, genre string) *Book {
	if _, ok := knownTypes[strings.ToLower(bookType)]; !ok {
		genre = "General"
	}
	return NewBook(title, author, genre)
}

// Checkout marks the book unavailable. Checking out an unavailable
// book fails and changes nothing.
func (b *Book) Checkout() error {
	if !b.Available {
		return fmt.Errorf("checkout %q: %w", b.Title, ErrNotAvailable)
	}
	b.Available = false
	return nil
}

// Return marks the book available again.
func (b *Book) Return() {
	b.Available = true
}

// String formats the book for listings.
func (b *Book) String() string {
	status := "Available"
	if !b.Available {
		status = "Checked Out"
	}
	return fmt.Sprintf("%s by %s [%s] - %s", b.Title, b.Author, b.Genre, status)
}
