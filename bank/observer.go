package bank

import (
	"fmt"
	"io"
	"os"
)

// Observer receives a notification message after every completed
// account operation.
type Observer interface {
	Notify(message string)
}

// TransactionLogger echoes every notification to the console and
// appends it to a log file. Logging is best-effort: write failures are
// reported on the console and never reach the account operation that
// triggered them.
type TransactionLogger struct {
	path string
	out  io.Writer
}

// NewTransactionLogger returns a logger appending to the file at path.
func NewTransactionLogger(path string) *TransactionLogger {
	return &TransactionLogger{path: path, out: os.Stdout}
}

var _ Observer = (*TransactionLogger)(nil)

// Notify prints the message and appends it to the log file. The file
// is opened in append mode and closed again on every call; no handle
// is held between notifications.
func (l *TransactionLogger) Notify(message string) {
	line := "Transaction Log: " + message
	fmt.Fprintln(l.out, line)

	f, err := os.OpenFile(l.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(l.out, "Error writing to log file: %v\n", err)
		return
	}
	defer f.Close()

	if _, err := f.WriteString(line + "\n"); err != nil {
		fmt.Fprintf(l.out, "Error writing to log file: %v\n", err)
	}
}
