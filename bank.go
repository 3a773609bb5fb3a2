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
	"math/rand"
	"regexp"
	"time"

	"github.com/tellerbank/teller/config"
	"github.com/tellerbank/teller/internal/ledgererror"
	"github.com/tellerbank/teller/model"
)

const accountNumberLength = 10

// maxNumberAttempts bounds the collision retry loop in nextAccountNumber.
// The loop degrades as the 10-digit space fills, which is acceptable at the
// scale this system targets.
const maxNumberAttempts = 100

var (
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]{4,20}$`)
	holderRe   = regexp.MustCompile(`^[A-Za-z\s]{2,50}$`)

	passwordUpperRe   = regexp.MustCompile(`[A-Z]`)
	passwordLowerRe   = regexp.MustCompile(`[a-z]`)
	passwordDigitRe   = regexp.MustCompile(`[0-9]`)
	passwordSpecialRe = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

// Bank is the single source of truth for all users and accounts. It owns the
// registries exclusively; callers hold only identifiers.
//
// A Bank assumes one active caller at a time. Number generation and the
// transfer commit sequence are not safe under interleaved access, so a
// concurrent adaptation must serialize all calls on a given instance.
type Bank struct {
	users          map[string]*model.User
	accounts       map[string]*model.Account
	accountHolders map[string][]string
	banking        config.BankingConfig
	rng            *rand.Rand
}

// NewBank creates an empty bank applying the given policy configuration to
// every account it opens.
func NewBank(banking config.BankingConfig) *Bank {
	return &Bank{
		users:          make(map[string]*model.User),
		accounts:       make(map[string]*model.Account),
		accountHolders: make(map[string][]string),
		banking:        banking,
		rng:            rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// nextAccountNumber draws uniform random 10-digit numeric strings until one
// is unused.
func (b *Bank) nextAccountNumber() (string, error) {
	digits := make([]byte, accountNumberLength)
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		for i := range digits {
			digits[i] = byte('0' + b.rng.Intn(10))
		}
		number := string(digits)
		if _, taken := b.accounts[number]; !taken {
			return number, nil
		}
	}
	return "", ledgererror.NewLedgerError(ledgererror.ErrInternalServer,
		"could not allocate a unique account number", nil)
}

func validatePassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	return passwordUpperRe.MatchString(password) &&
		passwordLowerRe.MatchString(password) &&
		passwordDigitRe.MatchString(password) &&
		passwordSpecialRe.MatchString(password)
}
