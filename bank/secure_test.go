package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SecureAccount_DelegatesDepositsAndReads(t *testing.T) {
	account := NewBankAccount("123456", 100_00)
	secure, err := NewSecureAccount(account)
	require.NoError(t, err)

	require.NoError(t, secure.Deposit(50_00))

	assert.Equal(t, Cents(150_00), secure.Balance())
	assert.Equal(t, Cents(150_00), account.Balance())
}

func Test_SecureAccount_RejectsWithdrawalAboveCeiling(t *testing.T) {
	// The balance covers the amount, so only the ceiling can fail the
	// call.
	account := NewBankAccount("123456", 1000_00)
	secure, err := NewSecureAccount(account)
	require.NoError(t, err)
	rec := &recorder{}
	secure.AddObserver(rec)

	err = secure.Withdraw(600_00)

	assert.ErrorIs(t, err, ErrOverdraw)
	assert.Contains(t, err.Error(), "security limit exceeded")
	assert.Equal(t, Cents(1000_00), account.Balance())
	assert.Empty(t, rec.messages)
}

func Test_SecureAccount_AllowsWithdrawalAtCeiling(t *testing.T) {
	account := NewBankAccount("123456", 1000_00)
	secure, err := NewSecureAccount(account)
	require.NoError(t, err)

	require.NoError(t, secure.Withdraw(MaxWithdrawal))

	assert.Equal(t, Cents(500_00), secure.Balance())
}

func Test_SecureAccount_PassesThroughInsufficientFunds(t *testing.T) {
	account := NewBankAccount("123456", 20_00)
	secure, err := NewSecureAccount(account)
	require.NoError(t, err)

	err = secure.Withdraw(100_00)

	assert.ErrorIs(t, err, ErrOverdraw)
	assert.Contains(t, err.Error(), "insufficient funds")
	assert.Equal(t, Cents(20_00), secure.Balance())
}

func Test_SecureAccount_CloseAndObserverRegistrationDelegate(t *testing.T) {
	account := NewBankAccount("123456", 10_00)
	secure, err := NewSecureAccount(account)
	require.NoError(t, err)
	rec := &recorder{}
	secure.AddObserver(rec)

	secure.Close()

	assert.False(t, account.Active())
	require.Len(t, rec.messages, 1)
	assert.Equal(t, "Account 123456 has been closed", rec.messages[0])
	assert.ErrorIs(t, secure.Deposit(1_00), ErrAccountClosed)
}

func Test_SecureAccount_VerifiesDefaultAndCustomPIN(t *testing.T) {
	account := NewBankAccount("123456", 0)

	byDefault, err := NewSecureAccount(account)
	require.NoError(t, err)
	assert.NoError(t, byDefault.VerifyPIN("1234"))
	assert.ErrorIs(t, byDefault.VerifyPIN("0000"), ErrWrongPIN)

	custom, err := NewSecureAccount(account, WithPIN("9176"))
	require.NoError(t, err)
	assert.NoError(t, custom.VerifyPIN("9176"))
	assert.ErrorIs(t, custom.VerifyPIN("1234"), ErrWrongPIN)
}

func Test_SecureAccount_TypicalSession(t *testing.T) {
	account := NewBankAccount("123456", 100_00)
	secure, err := NewSecureAccount(account)
	require.NoError(t, err)
	rec := &recorder{}
	secure.AddObserver(rec)

	require.NoError(t, secure.Deposit(50_00))
	assert.Equal(t, Cents(150_00), secure.Balance())

	require.NoError(t, secure.Withdraw(30_00))
	assert.Equal(t, Cents(120_00), secure.Balance())

	err = secure.Withdraw(600_00)
	assert.ErrorIs(t, err, ErrOverdraw)
	assert.Contains(t, err.Error(), "security limit exceeded")
	assert.Equal(t, Cents(120_00), secure.Balance())

	require.Len(t, rec.messages, 2)
	assert.Equal(t, "Deposited $50.00 to account 123456. New balance: $150.00", rec.messages[0])
	assert.Equal(t, "Withdrew $30.00 from account 123456. New balance: $120.00", rec.messages[1])
}
