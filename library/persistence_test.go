package library

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"testing"
)

// catalogTuples flattens a catalog into sorted "title,author,genre,avail"
// strings so catalogs can be compared without caring about bucket order.
func catalogTuples(c *Catalog) []string {
	var tuples []string
	for _, genre := range c.Genres() {
		for _, b := range c.BooksInGenre(genre) {
			tuples = append(tuples, fmt.Sprintf("%s,%s,%s,%t", b.Title, b.Author, b.Genre, b.Available))
		}
	}
	sort.Strings(tuples)
	return tuples
}

func TestSaveLoadRoundTrip(t *testing.T) {
	c := sampleCatalog()
	dune, err := c.FindBook("Dune")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if err := dune.Checkout(); err != nil {
		t.Fatalf("checkout: %v", err)
	}

	path := filepath.Join(t.TempDir(), "catalog.txt")
	if err := c.SaveToFile(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded := NewCatalog()
	if err := loaded.LoadFromFile(path); err != nil {
		t.Fatalf("load: %v", err)
	}

	got, want := catalogTuples(loaded), catalogTuples(c)
	if !slices.Equal(got, want) {
		t.Fatalf("round trip mismatch:\n got %v\nwant %v", got, want)
	}
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.txt")
	content := "Dune,Frank Herbert,Sci-Fi,true\n" +
		"not a record\n" +
		"too,many,fields,here,extra\n" +
		"\n" +
		"Gone Girl,Gillian Flynn,Mystery,false\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	c := NewCatalog()
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("load: %v", err)
	}

	if got := len(catalogTuples(c)); got != 2 {
		t.Fatalf("want 2 books, got %d", got)
	}

	gone, err := c.FindBook("Gone Girl")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if gone.Available {
		t.Fatalf("book saved as unavailable should load checked out")
	}

	dune, err := c.FindBook("Dune")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if !dune.Available {
		t.Fatalf("book saved as available should stay available")
	}
}

func TestLoadAppendsToExistingCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.txt")
	if err := os.WriteFile(path, []byte("Hyperion,Dan Simmons,Sci-Fi,true\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	c := NewCatalog()
	c.AddBook(NewBook("Dune", "Frank Herbert", "Sci-Fi"))
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("load: %v", err)
	}

	if got := len(c.BooksInGenre("Sci-Fi")); got != 2 {
		t.Fatalf("want 2 books after load, got %d", got)
	}
}

func TestSaveToMissingDirFails(t *testing.T) {
	c := sampleCatalog()
	if err := c.SaveToFile(filepath.Join(t.TempDir(), "missing", "catalog.txt")); err == nil {
		t.Fatalf("want error for unwritable path")
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	c := NewCatalog()
	if err := c.LoadFromFile(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Fatalf("want error for missing file")
	}
}
