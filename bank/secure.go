package bank

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxWithdrawal is the per-transaction ceiling enforced by
// SecureAccount, independent of the account balance.
const MaxWithdrawal Cents = 500_00

const defaultPIN = "1234"

// Option configures a SecureAccount during construction.
type Option func(*SecureAccount) error

// WithPIN replaces the default PIN. The PIN is stored as a bcrypt
// hash, never in plain text.
func WithPIN(pin string) Option {
	return func(s *SecureAccount) error {
		hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash PIN: %w", err)
		}
		s.pinHash = hash
		return nil
	}
}

// SecureAccount wraps another Account with a per-transaction
// withdrawal ceiling and PIN verification. Everything else delegates
// to the wrapped account: the wrapper keeps no balance copy, no open
// flag, and no observer list of its own.
type SecureAccount struct {
	inner   Account
	pinHash []byte
}

var _ Account = (*SecureAccount)(nil)

// NewSecureAccount wraps account. The PIN defaults to "1234" unless
// WithPIN overrides it.
func NewSecureAccount(account Account, opts ...Option) (*SecureAccount, error) {
	s := &SecureAccount{inner: account}
	if err := WithPIN(defaultPIN)(s); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Deposit delegates to the wrapped account; errors pass through
// unchanged.
func (s *SecureAccount) Deposit(amount Cents) error { return s.inner.Deposit(amount) }

// Withdraw rejects amounts above MaxWithdrawal before the wrapped
// account is consulted, so the ceiling applies regardless of balance.
// Amounts at or under the ceiling delegate unchanged.
func (s *SecureAccount) Withdraw(amount Cents) error {
	if amount > MaxWithdrawal {
		return fmt.Errorf("security limit exceeded, maximum withdrawal per transaction is %s: %w", MaxWithdrawal, ErrOverdraw)
	}
	return s.inner.Withdraw(amount)
}

// Close closes the wrapped account.
func (s *SecureAccount) Close() { s.inner.Close() }

// Balance reads through to the wrapped account.
func (s *SecureAccount) Balance() Cents { return s.inner.Balance() }

// AddObserver forwards registration to the wrapped account.
func (s *SecureAccount) AddObserver(o Observer) { s.inner.AddObserver(o) }

// VerifyPIN checks candidate against the account PIN. Operations are
// not gated on it.
func (s *SecureAccount) VerifyPIN(candidate string) error {
	if err := bcrypt.CompareHashAndPassword(s.pinHash, []byte(candidate)); err != nil {
		return ErrWrongPIN
	}
	return nil
}
