package library

import "fmt"

// User is a library patron holding checked-out books. The held set has
// set semantics: a book can be held at most once.
type User struct {
	name    string
	holding map[*Book]struct{}
}

// NewUser returns a user holding nothing.
func NewUser(name string) *User {
	return &User{name: name, holding: make(map[*Book]struct{})}
}

// Name returns the user's name.
func (u *User) Name() string { return u.name }

// Borrow checks the book out to u. Borrowing a book the user already
// holds fails without touching its availability; borrowing a book
// someone else holds fails with the checkout error.
func (u *User) Borrow(b *Book) error {
	if _, held := u.holding[b]; held {
		return fmt.Errorf("borrow %q: %w", b.Title, ErrAlreadyHeld)
	}
	if err := b.Checkout(); err != nil {
		return err
	}
	u.holding[b] = struct{}{}
	return nil
}

// Return gives the book back and restores its availability. It
// reports false, changing nothing, when the user does not hold the
// book.
func (u *User) Return(b *Book) bool {
	if _, held := u.holding[b]; !held {
		return false
	}
	delete(u.holding, b)
	b.Return()
	return true
}

// CheckedOutBooks returns a copy of the held set, in no particular
// order.
func (u *User) CheckedOutBooks() []*Book {
	out := make([]*Book, 0, len(u.holding))
	for b := range u.holding {
		out = append(out, b)
	}
	return out
}
