package teller

import (
	"github.com/sirupsen/logrus"

	"github.com/tellerbank/teller/internal/ledgererror"
	"github.com/tellerbank/teller/model"
)

// CreateUser registers a new user with an empty account list. The username
// must be 4-20 characters of letters, digits and underscores; the password
// must be at least 8 characters with an upper-case letter, a lower-case
// letter, a digit and a special character.
func (b *Bank) CreateUser(username, password string) error {
	if !usernameRe.MatchString(username) {
		return ledgererror.NewLedgerError(ledgererror.ErrValidation, "invalid username format", nil)
	}
	if !validatePassword(password) {
		return ledgererror.NewLedgerError(ledgererror.ErrValidation, "password does not meet security requirements", nil)
	}
	if _, exists := b.users[username]; exists {
		return ledgererror.NewLedgerError(ledgererror.ErrValidation, "username already exists", nil)
	}

	b.users[username] = model.NewUser(username, password)
	b.accountHolders[username] = []string{}
	logrus.WithField("username", username).Info("user created")
	return nil
}

// AuthenticateUser reports whether the username exists and the password
// verifies. It never returns an error.
func (b *Bank) AuthenticateUser(username, password string) bool {
	user, exists := b.users[username]
	return exists && user.VerifyPassword(password)
}
