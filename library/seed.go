package library

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SeedBook is one entry of a YAML seed file. Type is the factory type;
// unrecognized types land in the General genre.
type SeedBook struct {
	Type   string `yaml:"type"`
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Genre  string `yaml:"genre"`
}

type seedFile struct {
	Books []SeedBook `yaml:"books"`
}

// LoadSeedFile reads a YAML seed file of the form:
//
//	books:
//	  - type: fiction
//	    title: "1984"
//	    author: George Orwell
//	    genre: Fiction
func LoadSeedFile(path string) ([]SeedBook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var sf seedFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return sf.Books, nil
}

// DefaultSeedBooks returns the built-in starter catalog.
func DefaultSeedBooks() []SeedBook {
	return []SeedBook{
		{Type: "fiction", Title: "To Kill a Mockingbird", Author: "Harper Lee", Genre: "Fiction"},
		{Type: "fiction", Title: "1984", Author: "George Orwell", Genre: "Fiction"},
		{Type: "fiction", Title: "Pride and Prejudice", Author: "Jane Austen", Genre: "Fiction"},
		{Type: "mystery", Title: "The Girl with the Dragon Tattoo", Author: "Stieg Larsson", Genre: "Mystery"},
		{Type: "mystery", Title: "Gone Girl", Author: "Gillian Flynn", Genre: "Mystery"},
		{Type: "sci-fi", Title: "Dune", Author: "Frank Herbert", Genre: "Sci-Fi"},
		{Type: "sci-fi", Title: "The Hitchhiker's Guide to the Galaxy", Author: "Douglas Adams", Genre: "Sci-Fi"},
		{Type: "non-fiction", Title: "Sapiens", Author: "Yuval Noah Harari", Genre: "Non-Fiction"},
		{Type: "non-fiction", Title: "Educated", Author: "Tara Westover", Genre: "Non-Fiction"},
		{Type: "romance", Title: "The Notebook", Author: "Nicholas Sparks", Genre: "Romance"},
		{Type: "romance", Title: "Me Before You", Author: "Jojo Moyes", Genre: "Romance"},
	}
}

// Seed adds the listed books to the catalog through the type factory.
func (c *Catalog) Seed(seeds []SeedBook) {
	for _, s := range seeds {
		c.AddBook(NewBookOfType(s.Type, s.Title, s.Author, s.Genre))
	}
}
