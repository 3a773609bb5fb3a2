package model

import (
	"fmt"
	"time"

	"github.com/tellerbank/teller/internal/ledgererror"
)

type AccountType string

const (
	Savings AccountType = "Savings"
	Current AccountType = "Current"
)

// Account holds a single ledger account. Balance moves only through Deposit,
// Withdraw, ApplyTransaction and CalculateInterest, each of which appends
// exactly one transaction reflecting the post-operation balance.
//
// The policy numbers (InterestRate, MinimumBalance, OverdraftLimit) are
// frozen on the account at creation time so a later config change never
// rewrites the rules of an existing account.
type Account struct {
	AccountID      string        `json:"account_id"`
	Holder         string        `json:"holder"`
	Type           AccountType   `json:"type"`
	Balance        float64       `json:"balance"`
	Active         bool          `json:"active"`
	InterestRate   float64       `json:"interest_rate"`
	MinimumBalance float64       `json:"minimum_balance"`
	OverdraftLimit float64       `json:"overdraft_limit"`
	CreatedAt      time.Time     `json:"created_at"`
	Transactions   []Transaction `json:"-"`
}

// Statement is the read-only view returned to callers: account metadata plus
// the ordered transaction history.
type Statement struct {
	AccountID    string        `json:"account_id"`
	Holder       string        `json:"holder"`
	Type         AccountType   `json:"type"`
	Active       bool          `json:"active"`
	Balance      float64       `json:"balance"`
	Transactions []Transaction `json:"transactions"`
}

// NewAccount creates an account of the given type with a zero balance.
func NewAccount(accountID, holder string, accountType AccountType, interestRate, minimumBalance, overdraftLimit float64) *Account {
	return &Account{
		AccountID:      accountID,
		Holder:         holder,
		Type:           accountType,
		Active:         true,
		InterestRate:   interestRate,
		MinimumBalance: minimumBalance,
		OverdraftLimit: overdraftLimit,
		CreatedAt:      time.Now(),
		Transactions:   []Transaction{},
	}
}

func (a *Account) addTransaction(transactionType TransactionType, amount float64) {
	a.Transactions = append(a.Transactions, Transaction{
		TransactionID: GenerateUUIDWithSuffix("txn"),
		Type:          transactionType,
		Amount:        amount,
		Balance:       a.Balance,
		CreatedAt:     time.Now(),
	})
}

// Deposit credits amount to the account and records a Deposit transaction.
func (a *Account) Deposit(amount float64) error {
	if !a.Active {
		return ledgererror.NewLedgerError(ledgererror.ErrInactiveAccount, "account is inactive", nil)
	}
	if amount <= 0 {
		return ledgererror.NewLedgerError(ledgererror.ErrInvalidAmount, "deposit amount must be positive", nil)
	}
	a.Balance += amount
	a.addTransaction(Deposit, amount)
	return nil
}

// CheckWithdrawPolicy runs the variant-specific withdrawal rule without
// touching the balance. Savings accounts must keep MinimumBalance after the
// withdrawal; current accounts may go negative down to -OverdraftLimit.
func (a *Account) CheckWithdrawPolicy(amount float64) error {
	remaining := a.Balance - amount
	switch a.Type {
	case Savings:
		if remaining < a.MinimumBalance {
			return ledgererror.NewLedgerError(ledgererror.ErrBelowMinimum,
				fmt.Sprintf("must maintain minimum balance of %.2f", a.MinimumBalance), nil)
		}
	case Current:
		if remaining < -a.OverdraftLimit {
			return ledgererror.NewLedgerError(ledgererror.ErrOverdraftExceeded,
				fmt.Sprintf("exceeds overdraft limit of %.2f", a.OverdraftLimit), nil)
		}
	}
	return nil
}

// Withdraw debits amount from the account and records a Withdrawal
// transaction with a negative amount. The variant policy is checked before
// the shared balance mutation.
func (a *Account) Withdraw(amount float64) error {
	if !a.Active {
		return ledgererror.NewLedgerError(ledgererror.ErrInactiveAccount, "account is inactive", nil)
	}
	if amount <= 0 {
		return ledgererror.NewLedgerError(ledgererror.ErrInvalidAmount, "withdrawal amount must be positive", nil)
	}
	if err := a.CheckWithdrawPolicy(amount); err != nil {
		return err
	}
	a.Balance -= amount
	a.addTransaction(Withdrawal, -amount)
	return nil
}

// ApplyTransaction mutates the balance by the signed amount and records a
// transaction of the given type. Callers are expected to have validated the
// movement already; the Bank uses this to commit both legs of a transfer.
func (a *Account) ApplyTransaction(transactionType TransactionType, amount float64) {
	a.Balance += amount
	a.addTransaction(transactionType, amount)
}

// CalculateInterest credits one month of interest on a savings account and
// returns the credited amount. Current accounts earn nothing and record no
// transaction.
func (a *Account) CalculateInterest() float64 {
	if a.Type != Savings {
		return 0
	}
	monthlyInterest := (a.Balance * a.InterestRate) / 12
	a.Balance += monthlyInterest
	a.addTransaction(InterestCredit, monthlyInterest)
	return monthlyInterest
}

// GetBalance returns the current balance.
func (a *Account) GetBalance() float64 {
	return a.Balance
}

// GetStatement returns the account metadata and a copy of the transaction
// history.
func (a *Account) GetStatement() Statement {
	transactions := make([]Transaction, len(a.Transactions))
	copy(transactions, a.Transactions)
	return Statement{
		AccountID:    a.AccountID,
		Holder:       a.Holder,
		Type:         a.Type,
		Active:       a.Active,
		Balance:      a.Balance,
		Transactions: transactions,
	}
}

// ToggleStatus flips the account between active and inactive.
func (a *Account) ToggleStatus() {
	a.Active = !a.Active
}
