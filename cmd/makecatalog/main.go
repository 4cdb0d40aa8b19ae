// Command makecatalog writes a catalog save-file from a YAML seed list
// (or the built-in starter books) so a library session can load a
// prepared shelf.
//
// Usage: makecatalog [seed.yaml] [output.txt]
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/N1z00/HW3/library"
)

func main() {
	seedPath := ""
	outPath := "catalog.txt"
	if len(os.Args) > 1 {
		seedPath = os.Args[1]
	}
	if len(os.Args) > 2 {
		outPath = os.Args[2]
	}

	seeds := library.DefaultSeedBooks()
	if seedPath != "" {
		var err error
		if seeds, err = library.LoadSeedFile(seedPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	catalog := library.NewCatalog()
	catalog.Seed(seeds)

	if err := catalog.SaveToFile(outPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	genres := catalog.Genres()
	sort.Strings(genres)

	total := 0
	for _, g := range genres {
		total += len(catalog.BooksInGenre(g))
	}

	fmt.Printf("Wrote %d books across %d genres to %s\n", total, len(genres), outPath)
	for _, g := range genres {
		fmt.Printf("  %-15s %d\n", g, len(catalog.BooksInGenre(g)))
	}
}
