package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/N1z00/HW3/history"
	"github.com/N1z00/HW3/library"
)

func newLibraryCmd(cfg *Config) *cobra.Command {
	ledgerPath := cfg.LedgerDB
	seedPath := cfg.SeedFile

	cmd := &cobra.Command{
		Use:   "library",
		Short: "Run the interactive library lending session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLibrarySession(ledgerPath, seedPath)
		},
	}
	cmd.Flags().StringVar(&ledgerPath, "ledger", ledgerPath, "lending history database")
	cmd.Flags().StringVar(&seedPath, "seed", seedPath, "YAML seed file for the starting catalog")
	return cmd
}

func runLibrarySession(ledgerPath, seedPath string) error {
	catalog := library.NewCatalog()
	if seedPath == "" {
		catalog.Seed(library.DefaultSeedBooks())
	} else {
		seeds, err := library.LoadSeedFile(seedPath)
		if err != nil {
			return err
		}
		catalog.Seed(seeds)
	}

	// Lending still works without the ledger, history is best-effort.
	ledger, err := history.Open(ledgerPath)
	if err != nil {
		fmt.Printf("Warning: lending history disabled: %v\n", err)
		ledger = nil
	} else {
		defer ledger.Close()
	}

	sc := bufio.NewScanner(os.Stdin)

	fmt.Println("Welcome to the library!")
	name, ok := promptLine(sc, "Your name: ")
	if !ok {
		return nil
	}
	if name == "" {
		name = "Guest"
	}
	user := library.NewUser(name)

	for {
		fmt.Println()
		fmt.Println("1. Browse books by genre")
		fmt.Println("2. Check out a book")
		fmt.Println("3. Return a book")
		fmt.Println("4. View your checked out books")
		fmt.Println("5. Change sorting preference")
		fmt.Println("6. Sort a genre")
		fmt.Println("7. Save catalog to file")
		fmt.Println("8. Load catalog from file")
		fmt.Println("9. View lending history")
		fmt.Println("10. Exit")

		choice, ok := promptLine(sc, "> ")
		if !ok {
			return nil
		}

		n, err := strconv.Atoi(choice)
		if err != nil {
			fmt.Println("Please enter a number between 1 and 10.")
			continue
		}

		switch n {
		case 1:
			handleBrowse(sc, catalog)
		case 2:
			handleCheckout(sc, catalog, user, ledger)
		case 3:
			handleReturn(sc, catalog, user, ledger)
		case 4:
			handleViewCheckedOut(user)
		case 5:
			handleChangeSorting(sc, catalog)
		case 6:
			handleSortGenre(sc, catalog)
		case 7:
			handleSaveCatalog(sc, catalog)
		case 8:
			handleLoadCatalog(sc, catalog)
		case 9:
			handleViewHistory(sc, ledger, user)
		case 10:
			fmt.Println("Thank you for visiting the library!")
			return nil
		default:
			fmt.Println("Please enter a number between 1 and 10.")
		}
	}
}

func handleBrowse(sc *bufio.Scanner, catalog *library.Catalog) {
	genres := catalog.Genres()
	if len(genres) == 0 {
		fmt.Println("The catalog is empty.")
		return
	}
	sort.Strings(genres)
	fmt.Printf("Genres: %s\n", strings.Join(genres, ", "))

	genre, ok := promptLine(sc, "Genre: ")
	if !ok {
		return
	}
	catalog.SetCurrentGenre(genre)
	catalog.SortGenre(genre)

	fmt.Printf("Available books in %s (sorted by %s):\n", genre, catalog.Strategy())
	found := false
	for it := catalog.Iterator(); it.Next(); {
		fmt.Printf("  %s\n", it.Book())
		found = true
	}
	if !found {
		fmt.Println("  (none)")
	}
}

func handleCheckout(sc *bufio.Scanner, catalog *library.Catalog, user *library.User, ledger *history.Store) {
	title, ok := promptLine(sc, "Title to check out: ")
	if !ok {
		return
	}
	book, err := catalog.FindBook(title)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if err := user.Borrow(book); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("%s successfully checked out: %s\n", user.Name(), book.Title)
	recordEvent(ledger, history.KindBorrowed, user.Name(), book)
}

func handleReturn(sc *bufio.Scanner, catalog *library.Catalog, user *library.User, ledger *history.Store) {
	title, ok := promptLine(sc, "Title to return: ")
	if !ok {
		return
	}
	book, err := catalog.FindBook(title)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if !user.Return(book) {
		fmt.Println("You don't have this book checked out")
		return
	}
	fmt.Printf("%s successfully returned: %s\n", user.Name(), book.Title)
	recordEvent(ledger, history.KindReturned, user.Name(), book)
}

func handleViewCheckedOut(user *library.User) {
	books := user.CheckedOutBooks()
	if len(books) == 0 {
		fmt.Println("You have no books checked out.")
		return
	}
	sort.Slice(books, func(i, j int) bool { return books[i].Title < books[j].Title })

	fmt.Printf("%s's checked out books:\n", user.Name())
	for _, b := range books {
		fmt.Printf("  %s by %s [%s]\n", b.Title, b.Author, b.Genre)
	}
}

func handleChangeSorting(sc *bufio.Scanner, catalog *library.Catalog) {
	fmt.Println("1. Title")
	fmt.Println("2. Author")
	fmt.Println("3. Genre")

	choice, ok := promptLine(sc, "Sort by: ")
	if !ok {
		return
	}
	switch choice {
	case "1":
		catalog.SetSortStrategy(library.SortByTitle)
	case "2":
		catalog.SetSortStrategy(library.SortByAuthor)
	case "3":
		catalog.SetSortStrategy(library.SortByGenre)
	default:
		fmt.Println("Please enter a number between 1 and 3.")
		return
	}
	fmt.Printf("Sorting preference set to %s\n", catalog.Strategy())
}

func handleSortGenre(sc *bufio.Scanner, catalog *library.Catalog) {
	genre, ok := promptLine(sc, "Genre to sort: ")
	if !ok {
		return
	}
	if len(catalog.BooksInGenre(genre)) == 0 {
		fmt.Printf("No books in genre %s\n", genre)
		return
	}
	catalog.SortGenre(genre)

	fmt.Printf("%s sorted by %s:\n", genre, catalog.Strategy())
	for _, b := range catalog.BooksInGenre(genre) {
		fmt.Printf("  %s\n", b)
	}
}

func handleSaveCatalog(sc *bufio.Scanner, catalog *library.Catalog) {
	path, ok := promptLine(sc, "Save to (default catalog.txt): ")
	if !ok {
		return
	}
	if path == "" {
		path = "catalog.txt"
	}
	if err := catalog.SaveToFile(path); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Catalog saved to %s\n", path)
}

func handleLoadCatalog(sc *bufio.Scanner, catalog *library.Catalog) {
	path, ok := promptLine(sc, "Load from (default catalog.txt): ")
	if !ok {
		return
	}
	if path == "" {
		path = "catalog.txt"
	}
	if err := catalog.LoadFromFile(path); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Catalog loaded from %s\n", path)
}

func handleViewHistory(sc *bufio.Scanner, ledger *history.Store, user *library.User) {
	if ledger == nil {
		fmt.Println("Lending history is disabled for this session.")
		return
	}

	who, ok := promptLine(sc, fmt.Sprintf("Show events for (Enter for %s, 'all' for everyone): ", user.Name()))
	if !ok {
		return
	}

	f := history.Filter{Limit: 20}
	switch who {
	case "":
		f.User = user.Name()
	case "all":
	default:
		f.User = who
	}

	events, err := ledger.Query(f)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(events) == 0 {
		fmt.Println("No lending history yet.")
		return
	}

	fmt.Printf("%-20s %-10s %-20s %s\n", "When", "Event", "User", "Title")
	fmt.Println(strings.Repeat("-", 80))
	for _, e := range events {
		fmt.Printf("%-20s %-10s %-20s %s\n",
			e.OccurredAt.Local().Format("2006-01-02 15:04:05"),
			strings.TrimPrefix(e.Kind, "Book"),
			truncateString(e.Payload.User, 20),
			truncateString(e.Payload.Title, 35))
	}

	if counts, err := ledger.CountByKind(); err == nil {
		fmt.Printf("\nTotal borrows: %d | Total returns: %d\n",
			counts[history.KindBorrowed], counts[history.KindReturned])
	}
}

// recordEvent appends to the ledger when it is open. Failures are
// reported but never interrupt the session.
func recordEvent(ledger *history.Store, kind, userName string, b *library.Book) {
	if ledger == nil {
		return
	}
	e := history.NewEvent(kind, userName, b.Title, b.Author, b.Genre)
	if err := ledger.Append(e); err != nil {
		fmt.Printf("Warning: could not record lending history: %v\n", err)
	}
}
