package bank

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_TransactionLogger_EchoesToConsoleAndAppendsToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "transaction_log.txt")
	var console bytes.Buffer
	logger := &TransactionLogger{path: logPath, out: &console}

	logger.Notify("Deposited $50.00 to account 123456. New balance: $150.00")
	logger.Notify("Account 123456 has been closed")

	want := "Transaction Log: Deposited $50.00 to account 123456. New balance: $150.00\n" +
		"Transaction Log: Account 123456 has been closed\n"
	assert.Equal(t, want, console.String())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Equal(t, want, string(data))
}

func Test_TransactionLogger_ReportsWriteFailuresWithoutPropagating(t *testing.T) {
	// A directory path cannot be opened for appending, forcing the
	// failure branch.
	var console bytes.Buffer
	logger := &TransactionLogger{path: t.TempDir(), out: &console}

	logger.Notify("Withdrew $30.00 from account 123456. New balance: $120.00")

	assert.Contains(t, console.String(), "Transaction Log: Withdrew $30.00")
	assert.Contains(t, console.String(), "Error writing to log file:")
}

func Test_TransactionLogger_LogsEveryAccountOperation(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "transaction_log.txt")
	var console bytes.Buffer
	account := NewBankAccount("123456", 100_00)
	account.AddObserver(&TransactionLogger{path: logPath, out: &console})

	require.NoError(t, account.Deposit(50_00))
	require.NoError(t, account.Withdraw(30_00))
	account.Close()

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	want := "Transaction Log: Deposited $50.00 to account 123456. New balance: $150.00\n" +
		"Transaction Log: Withdrew $30.00 from account 123456. New balance: $120.00\n" +
		"Transaction Log: Account 123456 has been closed\n"
	assert.Equal(t, want, string(data))
}
