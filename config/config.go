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

package config

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"strings"
	"sync/atomic"

	"github.com/kelseyhightower/envconfig"

	"github.com/sirupsen/logrus"
)

const (
	DEFAULT_PORT = "5401"
)

var ConfigStore atomic.Value

type ServerConfig struct {
	Secure    bool   `json:"secure" envconfig:"TELLER_SERVER_SECURE"`
	SecretKey string `json:"secret_key" envconfig:"TELLER_SERVER_SECRET_KEY"`
	Port      string `json:"port" envconfig:"TELLER_SERVER_PORT"`
}

// BankingConfig carries the account policy numbers applied when an account
// is opened. Accounts freeze these values at creation time.
type BankingConfig struct {
	SavingsInterestRate   float64 `json:"savings_interest_rate" envconfig:"TELLER_SAVINGS_INTEREST_RATE"`
	SavingsMinimumBalance float64 `json:"savings_minimum_balance" envconfig:"TELLER_SAVINGS_MINIMUM_BALANCE"`
	CurrentOverdraftLimit float64 `json:"current_overdraft_limit" envconfig:"TELLER_CURRENT_OVERDRAFT_LIMIT"`
}

type Configuration struct {
	ProjectName string        `json:"project_name" envconfig:"TELLER_PROJECT_NAME"`
	Server      ServerConfig  `json:"server"`
	Banking     BankingConfig `json:"banking"`
}

func loadConfigFromFile(file string) error {
	var cnf Configuration
	_, err := os.Stat(file)
	if err == nil {
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		err = json.NewDecoder(f).Decode(&cnf)
		if err != nil {
			return err
		}

	} else if errors.Is(err, os.ErrNotExist) {
		log.Println("config json not passed, will use env variables")
	}

	// override config from environment variables
	err = envconfig.Process("teller", &cnf)
	if err != nil {
		return err
	}

	err = cnf.validateAndAddDefaults()
	if err != nil {
		return err
	}

	ConfigStore.Store(&cnf)
	return err
}

func InitConfig(configFile string) error {
	logger()
	return loadConfigFromFile(configFile)
}

func Fetch() (*Configuration, error) {
	config := ConfigStore.Load()
	c, ok := config.(*Configuration)
	if !ok {
		return nil, errors.New("config not loaded from file. Create a json file called teller.json with your config ❌")
	}
	return c, nil
}

func (cnf *Configuration) validateAndAddDefaults() error {
	if cnf.ProjectName == "" {
		log.Println("Warning: Project name is empty. Setting a default name.")
		cnf.ProjectName = "Teller Server"
	}

	// Trim white spaces from fields
	cnf.ProjectName = strings.TrimSpace(cnf.ProjectName)
	cnf.Server.Port = strings.TrimSpace(cnf.Server.Port)

	// Set default value for Port if it's empty
	if cnf.Server.Port == "" {
		cnf.Server.Port = DEFAULT_PORT
		log.Printf("Warning: Port not specified in config. Setting default port: %s", DEFAULT_PORT)
	}

	if cnf.Server.Secure && cnf.Server.SecretKey == "" {
		log.Println("Error: Secure mode is enabled but no secret key is set.")
		return errors.New("secret key is required when secure mode is enabled")
	}

	if cnf.Banking.SavingsInterestRate < 0 {
		log.Println("Error: Savings interest rate cannot be negative.")
		return errors.New("savings interest rate cannot be negative")
	}
	if cnf.Banking.SavingsInterestRate == 0 {
		cnf.Banking.SavingsInterestRate = 0.045
	}

	if cnf.Banking.SavingsMinimumBalance < 0 {
		log.Println("Error: Savings minimum balance cannot be negative.")
		return errors.New("savings minimum balance cannot be negative")
	}
	if cnf.Banking.SavingsMinimumBalance == 0 {
		cnf.Banking.SavingsMinimumBalance = 1000.0
	}

	if cnf.Banking.CurrentOverdraftLimit < 0 {
		log.Println("Error: Current overdraft limit cannot be negative.")
		return errors.New("current overdraft limit cannot be negative")
	}
	if cnf.Banking.CurrentOverdraftLimit == 0 {
		cnf.Banking.CurrentOverdraftLimit = 10000.0
	}

	return nil
}

// MockConfig sets a mock configuration for testing purposes.
func MockConfig(mockConfig *Configuration) {
	if err := mockConfig.validateAndAddDefaults(); err != nil {
		log.Printf("Warning: mock config failed validation: %v", err)
	}
	ConfigStore.Store(mockConfig)
}

func logger() {
	logger := logrus.New()
	log.SetOutput(logger.Writer())
}
