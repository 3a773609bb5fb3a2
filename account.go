package teller

import (
	"github.com/sirupsen/logrus"

	"github.com/tellerbank/teller/internal/ledgererror"
	"github.com/tellerbank/teller/model"
)

// OpenAccount creates a new account of the given type for username and
// returns its account number.
//
// The username is not checked against the user registry: the caller is
// expected to have authenticated it first. The ownership list is created on
// first use so the registry invariant holds either way.
func (b *Bank) OpenAccount(username, holder string, accountType model.AccountType) (string, error) {
	if !holderRe.MatchString(holder) {
		return "", ledgererror.NewLedgerError(ledgererror.ErrValidation, "invalid account holder name", nil)
	}
	if accountType != model.Savings && accountType != model.Current {
		return "", ledgererror.NewLedgerError(ledgererror.ErrValidation, "unknown account type", string(accountType))
	}

	number, err := b.nextAccountNumber()
	if err != nil {
		return "", err
	}

	var account *model.Account
	if accountType == model.Savings {
		account = model.NewAccount(number, holder, model.Savings,
			b.banking.SavingsInterestRate, b.banking.SavingsMinimumBalance, 0)
	} else {
		account = model.NewAccount(number, holder, model.Current,
			0, 0, b.banking.CurrentOverdraftLimit)
	}

	b.accounts[number] = account
	b.accountHolders[username] = append(b.accountHolders[username], number)
	logrus.WithFields(logrus.Fields{
		"username": username,
		"account":  number,
		"type":     accountType,
	}).Info("account opened")
	return number, nil
}

// GetAccount returns the account with the given number, or nil if it does
// not exist.
func (b *Bank) GetAccount(number string) *model.Account {
	return b.accounts[number]
}

// GetUserAccounts returns the account numbers owned by username, in the
// order they were opened. Unknown usernames yield an empty list.
func (b *Bank) GetUserAccounts(username string) []string {
	numbers := make([]string, len(b.accountHolders[username]))
	copy(numbers, b.accountHolders[username])
	return numbers
}

// ToggleAccountStatus flips the account between active and inactive.
func (b *Bank) ToggleAccountStatus(number string) error {
	account := b.accounts[number]
	if account == nil {
		return ledgererror.NewLedgerError(ledgererror.ErrAccountNotFound, "account not found", number)
	}
	account.ToggleStatus()
	return nil
}
