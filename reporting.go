package teller

import "github.com/tellerbank/teller/model"

// AccountStats is the aggregate view over every account in the bank.
type AccountStats struct {
	TotalAccounts    int     `json:"total_accounts"`
	ActiveAccounts   int     `json:"active_accounts"`
	InactiveAccounts int     `json:"inactive_accounts"`
	SavingsAccounts  int     `json:"savings_accounts"`
	CurrentAccounts  int     `json:"current_accounts"`
	TotalDeposits    float64 `json:"total_deposits"`
}

// TotalDeposits returns the sum of all account balances.
func (b *Bank) TotalDeposits() float64 {
	var total float64
	for _, account := range b.accounts {
		total += account.GetBalance()
	}
	return total
}

// TotalAccounts returns the number of accounts ever opened.
func (b *Bank) TotalAccounts() int {
	return len(b.accounts)
}

// GetAccountStats computes the aggregate counts and totals. Pure read.
func (b *Bank) GetAccountStats() AccountStats {
	stats := AccountStats{TotalAccounts: len(b.accounts)}
	for _, account := range b.accounts {
		if account.Active {
			stats.ActiveAccounts++
		}
		if account.Type == model.Savings {
			stats.SavingsAccounts++
		} else {
			stats.CurrentAccounts++
		}
		stats.TotalDeposits += account.GetBalance()
	}
	stats.InactiveAccounts = stats.TotalAccounts - stats.ActiveAccounts
	return stats
}
