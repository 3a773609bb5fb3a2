/*
Copyright 2025 Teller Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package teller

import (
	"github.com/sirupsen/logrus"

	"github.com/tellerbank/teller/internal/ledgererror"
	"github.com/tellerbank/teller/model"
)

// Deposit credits amount to the account with the given number.
func (b *Bank) Deposit(number string, amount float64) error {
	account := b.accounts[number]
	if account == nil {
		return ledgererror.NewLedgerError(ledgererror.ErrAccountNotFound, "account not found", number)
	}
	return account.Deposit(amount)
}

// Withdraw debits amount from the account with the given number, subject to
// the account's variant policy.
func (b *Bank) Withdraw(number string, amount float64) error {
	account := b.accounts[number]
	if account == nil {
		return ledgererror.NewLedgerError(ledgererror.ErrAccountNotFound, "account not found", number)
	}
	return account.Withdraw(amount)
}

// GetBalance returns the balance of the account with the given number.
func (b *Bank) GetBalance(number string) (float64, error) {
	account := b.accounts[number]
	if account == nil {
		return 0, ledgererror.NewLedgerError(ledgererror.ErrAccountNotFound, "account not found", number)
	}
	return account.GetBalance(), nil
}

// GetStatement returns the metadata and transaction history of the account
// with the given number.
func (b *Bank) GetStatement(number string) (model.Statement, error) {
	account := b.accounts[number]
	if account == nil {
		return model.Statement{}, ledgererror.NewLedgerError(ledgererror.ErrAccountNotFound, "account not found", number)
	}
	return account.GetStatement(), nil
}

// Transfer moves amount from one account to another as a single all-or-
// nothing operation: every check runs before either balance moves, so a
// failure can never leave the sender debited without the receiver credited.
// Each side records exactly one transfer transaction.
func (b *Bank) Transfer(fromNumber, toNumber string, amount float64) error {
	if amount <= 0 {
		return ledgererror.NewLedgerError(ledgererror.ErrValidation, "transfer amount must be positive", nil)
	}

	sender := b.accounts[fromNumber]
	receiver := b.accounts[toNumber]
	if sender == nil || receiver == nil {
		return ledgererror.NewLedgerError(ledgererror.ErrAccountNotFound, "invalid account number(s)", nil)
	}
	if !sender.Active || !receiver.Active {
		return ledgererror.NewLedgerError(ledgererror.ErrInactiveAccount, "one or both accounts are inactive", nil)
	}
	if err := sender.CheckWithdrawPolicy(amount); err != nil {
		return err
	}

	sender.ApplyTransaction(model.TransferSent, -amount)
	receiver.ApplyTransaction(model.TransferReceived, amount)
	logrus.WithFields(logrus.Fields{
		"from":   fromNumber,
		"to":     toNumber,
		"amount": amount,
	}).Info("transfer completed")
	return nil
}

// CalculateAllInterest credits one month of interest to every active savings
// account.
func (b *Bank) CalculateAllInterest() {
	for _, account := range b.accounts {
		if account.Type == model.Savings && account.Active {
			account.CalculateInterest()
		}
	}
}
