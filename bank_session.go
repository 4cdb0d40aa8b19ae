package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/N1z00/HW3/bank"
)

const accountNumber = "123456"

func newBankCmd(cfg *Config) *cobra.Command {
	logFile := cfg.TransactionLog

	cmd := &cobra.Command{
		Use:   "bank",
		Short: "Run the interactive bank account session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBankSession(logFile)
		},
	}
	cmd.Flags().StringVar(&logFile, "log-file", logFile, "transaction log destination")
	return cmd
}

func runBankSession(logFile string) error {
	sc := bufio.NewScanner(os.Stdin)

	fmt.Println("Welcome to the bank!")

	initial, ok := promptCents(sc, "Opening balance: ")
	if !ok {
		return nil
	}
	for initial < 0 {
		fmt.Println("Opening balance cannot be negative.")
		if initial, ok = promptCents(sc, "Opening balance: "); !ok {
			return nil
		}
	}

	account := bank.NewBankAccount(accountNumber, initial)
	account.AddObserver(bank.NewTransactionLogger(logFile))

	pin, err := readPassword("Set a withdrawal PIN (press Enter to keep the default): ")
	if err != nil {
		return fmt.Errorf("read PIN: %w", err)
	}
	var opts []bank.Option
	if pin != "" {
		opts = append(opts, bank.WithPIN(pin))
	}
	secured, err := bank.NewSecureAccount(account, opts...)
	if err != nil {
		return fmt.Errorf("secure account: %w", err)
	}

	fmt.Printf("Account %s opened with %s\n", accountNumber, secured.Balance())

	for {
		fmt.Println()
		fmt.Println("1. Deposit")
		fmt.Println("2. Withdraw")
		fmt.Println("3. Show balance")
		fmt.Println("4. Verify PIN")
		fmt.Println("5. Close account")
		fmt.Println("6. Exit")

		choice, ok := promptLine(sc, "> ")
		if !ok {
			return nil
		}

		n, err := strconv.Atoi(choice)
		if err != nil {
			fmt.Println("Please enter a number between 1 and 6.")
			continue
		}

		switch n {
		case 1:
			handleDeposit(sc, secured)
		case 2:
			handleWithdraw(sc, secured)
		case 3:
			fmt.Printf("Current balance: %s\n", secured.Balance())
		case 4:
			handleVerifyPIN(secured)
		case 5:
			secured.Close()
		case 6:
			fmt.Println("Goodbye!")
			return nil
		default:
			fmt.Println("Please enter a number between 1 and 6.")
		}
	}
}

func handleDeposit(sc *bufio.Scanner, account bank.Account) {
	amount, ok := promptCents(sc, "Amount to deposit: ")
	if !ok {
		return
	}
	if err := account.Deposit(amount); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}

func handleWithdraw(sc *bufio.Scanner, account bank.Account) {
	amount, ok := promptCents(sc, "Amount to withdraw: ")
	if !ok {
		return
	}
	if err := account.Withdraw(amount); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}

func handleVerifyPIN(account *bank.SecureAccount) {
	pin, err := readPassword("Enter PIN: ")
	if err != nil {
		fmt.Printf("Error reading PIN: %v\n", err)
		return
	}
	if err := account.VerifyPIN(pin); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println("PIN verified.")
}
