package main

import (
	"bufio"
	"fmt"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/N1z00/HW3/bank"
)

// promptLine prints a label and reads one trimmed line. The second
// result is false when stdin is exhausted.
func promptLine(sc *bufio.Scanner, label string) (string, bool) {
	fmt.Print(label)
	if !sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(sc.Text()), true
}

// promptCents keeps asking until it reads a well-formed dollar amount.
func promptCents(sc *bufio.Scanner, label string) (bank.Cents, bool) {
	for {
		in, ok := promptLine(sc, label)
		if !ok {
			return 0, false
		}
		amount, err := bank.ParseCents(in)
		if err != nil {
			fmt.Printf("Invalid amount: %s\n", in)
			continue
		}
		return amount, true
	}
}

// readPassword securely reads a password with masking
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", err
	}
	fmt.Println() // Add newline after password input
	return strings.TrimSpace(string(bytePassword)), nil
}

func truncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	return s[:maxLength-3] + "..."
}
