package bank

import "fmt"

// Account is the behavior shared by plain and decorated accounts.
type Account interface {
	Deposit(amount Cents) error
	Withdraw(amount Cents) error
	Close()
	Balance() Cents
	AddObserver(o Observer)
}

// BankAccount holds a balance and fans notifications out to its
// observers after every successful operation. It is not safe for
// concurrent use.
type BankAccount struct {
	number    string
	balance   Cents
	active    bool
	observers []Observer
}

var _ Account = (*BankAccount)(nil)

// NewBankAccount creates an open account with the given number and
// starting balance.
func NewBankAccount(number string, initial Cents) *BankAccount {
	return &BankAccount{number: number, balance: initial, active: true}
}

// Number returns the account number.
func (a *BankAccount) Number() string { return a.number }

// Balance returns the current balance.
func (a *BankAccount) Balance() Cents { return a.balance }

// Active reports whether the account is still open.
func (a *BankAccount) Active() bool { return a.active }

// AddObserver registers o. Observers are notified in registration
// order and are never deduplicated.
func (a *BankAccount) AddObserver(o Observer) {
	a.observers = append(a.observers, o)
}

func (a *BankAccount) notify(message string) {
	for _, o := range a.observers {
		o.Notify(message)
	}
}

// Deposit adds amount to the balance and notifies observers once. A
// closed account or a negative amount fails the call and leaves the
// balance untouched.
func (a *BankAccount) Deposit(amount Cents) error {
	if !a.active {
		return fmt.Errorf("cannot deposit to account %s: %w", a.number, ErrAccountClosed)
	}
	if amount < 0 {
		return fmt.Errorf("cannot deposit %s: %w", amount, ErrNegativeAmount)
	}

	a.balance += amount
	a.notify(fmt.Sprintf("Deposited %s to account %s. New balance: %s", amount, a.number, a.balance))
	return nil
}

// Withdraw removes amount from the balance and notifies observers
// once. It fails on a closed account, a negative amount, or an amount
// above the balance; the balance never goes negative.
func (a *BankAccount) Withdraw(amount Cents) error {
	if !a.active {
		return fmt.Errorf("cannot withdraw from account %s: %w", a.number, ErrAccountClosed)
	}
	if amount < 0 {
		return fmt.Errorf("cannot withdraw %s: %w", amount, ErrNegativeAmount)
	}
	if amount > a.balance {
		return fmt.Errorf("insufficient funds, balance %s, withdrawal %s: %w", a.balance, amount, ErrOverdraw)
	}

	a.balance -= amount
	a.notify(fmt.Sprintf("Withdrew %s from account %s. New balance: %s", amount, a.number, a.balance))
	return nil
}

// Close marks the account closed and notifies observers. Closing an
// already closed account is a no-op with no second notification.
func (a *BankAccount) Close() {
	if !a.active {
		return
	}
	a.active = false
	a.notify(fmt.Sprintf("Account %s has been closed", a.number))
}
