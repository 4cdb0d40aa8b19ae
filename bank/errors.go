package bank

import "errors"

// Account operations wrap these sentinels so callers can classify
// failures with errors.Is.
var (
	// ErrNegativeAmount is returned when a deposit or withdrawal names a
	// negative amount.
	ErrNegativeAmount = errors.New("negative amount")

	// ErrOverdraw is returned when a withdrawal exceeds the available
	// balance or a security ceiling.
	ErrOverdraw = errors.New("overdraw")

	// ErrAccountClosed is returned when a deposit or withdrawal is
	// attempted on a closed account.
	ErrAccountClosed = errors.New("account is closed")

	// ErrWrongPIN is returned when PIN verification fails.
	ErrWrongPIN = errors.New("wrong PIN")
)
