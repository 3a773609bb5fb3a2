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
package model

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/tellerbank/teller/model"
)

type CreateUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type OpenAccount struct {
	Username    string `json:"username"`
	Holder      string `json:"holder"`
	AccountType string `json:"account_type"`
}

type RecordMovement struct {
	Amount float64 `json:"amount"`
}

type RecordTransfer struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

func (u *CreateUser) ValidateCreateUser() error {
	return validation.ValidateStruct(u,
		validation.Field(&u.Username, validation.Required),
		validation.Field(&u.Password, validation.Required),
	)
}

func (u *LoginUser) ValidateLoginUser() error {
	return validation.ValidateStruct(u,
		validation.Field(&u.Username, validation.Required),
		validation.Field(&u.Password, validation.Required),
	)
}

func (a *OpenAccount) ValidateOpenAccount() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.Username, validation.Required),
		validation.Field(&a.Holder, validation.Required),
		validation.Field(&a.AccountType, validation.Required, validation.By(accountTypeValidation)),
	)
}

func accountTypeValidation(value interface{}) error {
	accountType, ok := value.(string)
	if !ok {
		return errors.New("invalid account type")
	}
	if _, err := ToAccountType(accountType); err != nil {
		return err
	}
	return nil
}

// ToAccountType maps the request selector onto the closed set of account
// variants.
func ToAccountType(value string) (model.AccountType, error) {
	switch value {
	case "savings", "Savings":
		return model.Savings, nil
	case "current", "Current":
		return model.Current, nil
	default:
		return "", errors.New("account_type must be 'savings' or 'current'")
	}
}

func (m *RecordMovement) ValidateRecordMovement() error {
	return validation.ValidateStruct(m,
		validation.Field(&m.Amount, validation.Required),
	)
}

func (t *RecordTransfer) ValidateRecordTransfer() error {
	return validation.ValidateStruct(t,
		validation.Field(&t.From, validation.Required),
		validation.Field(&t.To, validation.Required),
		validation.Field(&t.Amount, validation.Required),
	)
}
