package library

// BookIterator walks a snapshot of available books taken when the
// iterator was created. Checkouts and returns made after creation do
// not change what it yields. Iterators are not restartable; create a
// new one to walk again.
type BookIterator struct {
	books []*Book
	pos   int
	cur   *Book
}

func newBookIterator(books []*Book) *BookIterator {
	avail := make([]*Book, 0, len(books))
	for _, b := range books {
		if b.Available {
			avail = append(avail, b)
		}
	}
	return &BookIterator{books: avail}
}

// Next advances to the next book in the snapshot, reporting false when
// it is exhausted.
func (it *BookIterator) Next() bool {
	if it.pos >= len(it.books) {
		return false
	}
	it.cur = it.books[it.pos]
	it.pos++
	return true
}

// Book returns the book Next advanced to.
func (it *BookIterator) Book() *Book { return it.cur }
