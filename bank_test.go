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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tellerbank/teller/config"
	"github.com/tellerbank/teller/internal/ledgererror"
	"github.com/tellerbank/teller/model"
)

func newTestBank() *Bank {
	return NewBank(config.BankingConfig{
		SavingsInterestRate:   0.045,
		SavingsMinimumBalance: 1000.0,
		CurrentOverdraftLimit: 10000.0,
	})
}

func TestCreateUser(t *testing.T) {
	bank := newTestBank()

	err := bank.CreateUser("alice_01", "Str0ng!Pass")
	assert.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "username too short", username: "al", password: "Str0ng!Pass"},
		{name: "username with illegal characters", username: "alice-01!", password: "Str0ng!Pass"},
		{name: "password too short", username: "bob_2024", password: "S0r!t"},
		{name: "password without upper case", username: "bob_2024", password: "str0ng!pass"},
		{name: "password without lower case", username: "bob_2024", password: "STR0NG!PASS"},
		{name: "password without digit", username: "bob_2024", password: "Strong!Pass"},
		{name: "password without special character", username: "bob_2024", password: "Str0ngPass"},
		{name: "duplicate username", username: "alice_01", password: "Str0ng!Pass"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := bank.CreateUser(tt.username, tt.password)
			assert.True(t, ledgererror.Is(err, ledgererror.ErrValidation))
		})
	}
}

func TestAuthenticateUser(t *testing.T) {
	bank := newTestBank()
	require.NoError(t, bank.CreateUser("alice_01", "Str0ng!Pass"))

	assert.True(t, bank.AuthenticateUser("alice_01", "Str0ng!Pass"))
	assert.False(t, bank.AuthenticateUser("alice_01", "Wr0ng!Pass"))
	assert.False(t, bank.AuthenticateUser("nobody", "Str0ng!Pass"))
}

func TestOpenAccount(t *testing.T) {
	bank := newTestBank()
	require.NoError(t, bank.CreateUser("alice_01", "Str0ng!Pass"))

	number, err := bank.OpenAccount("alice_01", "Alice Smith", model.Savings)
	require.NoError(t, err)
	assert.Len(t, number, 10)

	account := bank.GetAccount(number)
	require.NotNil(t, account)
	assert.Equal(t, "Alice Smith", account.Holder)
	assert.Equal(t, model.Savings, account.Type)
	assert.True(t, account.Active)
	assert.Equal(t, 1000.0, account.MinimumBalance)
	assert.Equal(t, 0.045, account.InterestRate)

	assert.Equal(t, []string{number}, bank.GetUserAccounts("alice_01"))
}

func TestOpenAccountInvalidHolder(t *testing.T) {
	bank := newTestBank()

	for _, holder := range []string{"A", "Alice123", "Alice-Smith", ""} {
		_, err := bank.OpenAccount("alice_01", holder, model.Savings)
		assert.True(t, ledgererror.Is(err, ledgererror.ErrValidation), "holder %q", holder)
	}
}

func TestAccountNumbersAreUnique(t *testing.T) {
	bank := newTestBank()

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		number, err := bank.OpenAccount("alice_01", "Alice Smith", model.Current)
		require.NoError(t, err)
		require.Len(t, number, 10)
		require.False(t, seen[number], "duplicate account number %s", number)
		seen[number] = true
	}
}

func TestSavingsWithdrawScenario(t *testing.T) {
	bank := newTestBank()
	require.NoError(t, bank.CreateUser("alice_01", "Str0ng!Pass"))
	number, err := bank.OpenAccount("alice_01", "Alice Smith", model.Savings)
	require.NoError(t, err)

	require.NoError(t, bank.Deposit(number, 1500))
	balance, err := bank.GetBalance(number)
	require.NoError(t, err)
	assert.Equal(t, 1500.0, balance)

	require.NoError(t, bank.Withdraw(number, 400))
	balance, _ = bank.GetBalance(number)
	assert.Equal(t, 1100.0, balance)

	err = bank.Withdraw(number, 200)
	assert.True(t, ledgererror.Is(err, ledgererror.ErrBelowMinimum))
	balance, _ = bank.GetBalance(number)
	assert.Equal(t, 1100.0, balance)
}

func TestCurrentOverdraftScenario(t *testing.T) {
	bank := newTestBank()
	number, err := bank.OpenAccount("bob_2024", "Bob Jones", model.Current)
	require.NoError(t, err)

	require.NoError(t, bank.Withdraw(number, 5000))
	balance, _ := bank.GetBalance(number)
	assert.Equal(t, -5000.0, balance)

	err = bank.Withdraw(number, 6000)
	assert.True(t, ledgererror.Is(err, ledgererror.ErrOverdraftExceeded))
	balance, _ = bank.GetBalance(number)
	assert.Equal(t, -5000.0, balance)
}

func TestTransfer(t *testing.T) {
	bank := newTestBank()
	from, err := bank.OpenAccount("alice_01", "Alice Smith", model.Current)
	require.NoError(t, err)
	to, err := bank.OpenAccount("bob_2024", "Bob Jones", model.Current)
	require.NoError(t, err)
	require.NoError(t, bank.Deposit(from, 500))
	require.NoError(t, bank.Deposit(to, 200))

	require.NoError(t, bank.Transfer(from, to, 100))

	fromBalance, _ := bank.GetBalance(from)
	toBalance, _ := bank.GetBalance(to)
	assert.Equal(t, 400.0, fromBalance)
	assert.Equal(t, 300.0, toBalance)

	fromStatement, _ := bank.GetStatement(from)
	toStatement, _ := bank.GetStatement(to)
	require.Len(t, fromStatement.Transactions, 2)
	require.Len(t, toStatement.Transactions, 2)

	sent := fromStatement.Transactions[1]
	assert.Equal(t, model.TransferSent, sent.Type)
	assert.Equal(t, -100.0, sent.Amount)
	assert.Equal(t, 400.0, sent.Balance)

	received := toStatement.Transactions[1]
	assert.Equal(t, model.TransferReceived, received.Type)
	assert.Equal(t, 100.0, received.Amount)
	assert.Equal(t, 300.0, received.Balance)
}

func TestTransferFailures(t *testing.T) {
	bank := newTestBank()
	from, err := bank.OpenAccount("alice_01", "Alice Smith", model.Savings)
	require.NoError(t, err)
	to, err := bank.OpenAccount("bob_2024", "Bob Jones", model.Current)
	require.NoError(t, err)
	require.NoError(t, bank.Deposit(from, 1500))

	err = bank.Transfer(from, to, 0)
	assert.True(t, ledgererror.Is(err, ledgererror.ErrValidation))

	err = bank.Transfer(from, "0000000000", 100)
	assert.True(t, ledgererror.Is(err, ledgererror.ErrAccountNotFound))

	// sender policy violation leaves both sides untouched
	err = bank.Transfer(from, to, 600)
	assert.True(t, ledgererror.Is(err, ledgererror.ErrBelowMinimum))
	fromBalance, _ := bank.GetBalance(from)
	toBalance, _ := bank.GetBalance(to)
	assert.Equal(t, 1500.0, fromBalance)
	assert.Equal(t, 0.0, toBalance)

	require.NoError(t, bank.ToggleAccountStatus(to))
	err = bank.Transfer(from, to, 100)
	assert.True(t, ledgererror.Is(err, ledgererror.ErrInactiveAccount))
	fromBalance, _ = bank.GetBalance(from)
	assert.Equal(t, 1500.0, fromBalance)
}

func TestCalculateAllInterest(t *testing.T) {
	bank := newTestBank()
	savings, err := bank.OpenAccount("alice_01", "Alice Smith", model.Savings)
	require.NoError(t, err)
	frozen, err := bank.OpenAccount("alice_01", "Alice Smith", model.Savings)
	require.NoError(t, err)
	current, err := bank.OpenAccount("bob_2024", "Bob Jones", model.Current)
	require.NoError(t, err)

	require.NoError(t, bank.Deposit(savings, 12000))
	require.NoError(t, bank.Deposit(frozen, 12000))
	require.NoError(t, bank.Deposit(current, 12000))
	require.NoError(t, bank.ToggleAccountStatus(frozen))

	bank.CalculateAllInterest()

	savingsBalance, _ := bank.GetBalance(savings)
	frozenBalance, _ := bank.GetBalance(frozen)
	currentBalance, _ := bank.GetBalance(current)
	assert.InDelta(t, 12045.0, savingsBalance, 1e-9)
	assert.Equal(t, 12000.0, frozenBalance)
	assert.Equal(t, 12000.0, currentBalance)
}

func TestGetAccountStats(t *testing.T) {
	bank := newTestBank()
	savings, err := bank.OpenAccount("alice_01", "Alice Smith", model.Savings)
	require.NoError(t, err)
	current, err := bank.OpenAccount("bob_2024", "Bob Jones", model.Current)
	require.NoError(t, err)
	require.NoError(t, bank.Deposit(savings, 2000))
	require.NoError(t, bank.Deposit(current, 500))
	require.NoError(t, bank.ToggleAccountStatus(current))

	stats := bank.GetAccountStats()
	assert.Equal(t, 2, stats.TotalAccounts)
	assert.Equal(t, 1, stats.ActiveAccounts)
	assert.Equal(t, 1, stats.InactiveAccounts)
	assert.Equal(t, 1, stats.SavingsAccounts)
	assert.Equal(t, 1, stats.CurrentAccounts)
	assert.Equal(t, 2500.0, stats.TotalDeposits)
	assert.Equal(t, 2500.0, bank.TotalDeposits())
	assert.Equal(t, 2, bank.TotalAccounts())
}

func TestLookupsNeverError(t *testing.T) {
	bank := newTestBank()

	assert.Nil(t, bank.GetAccount("0000000000"))
	assert.Empty(t, bank.GetUserAccounts("nobody"))

	_, err := bank.GetBalance("0000000000")
	assert.True(t, ledgererror.Is(err, ledgererror.ErrAccountNotFound))
	err = bank.ToggleAccountStatus("0000000000")
	assert.True(t, ledgererror.Is(err, ledgererror.ErrAccountNotFound))
}
