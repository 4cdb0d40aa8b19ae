package library

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// SaveToFile writes every book as one "title,author,genre,available"
// line. Fields are written as-is, so a field containing a comma will
// not survive a round trip.
func (c *Catalog) SaveToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, bucket := range c.genres {
		for _, b := range bucket {
			fmt.Fprintf(w, "%s,%s,%s,%t\n", b.Title, b.Author, b.Genre, b.Available)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	return nil
}

// LoadFromFile adds every well-formed line of the file to the catalog.
// Lines without exactly four comma-separated fields are silently
// skipped. A book saved as unavailable is loaded available and checked
// out right away so its state carries over.
func (c *Catalog) LoadFromFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		parts := strings.Split(sc.Text(), ",")
		if len(parts) != 4 {
			continue
		}
		b := NewBook(parts[0], parts[1], parts[2])
		c.AddBook(b)
		if !strings.EqualFold(parts[3], "true") {
			_ = b.Checkout()
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	return nil
}
