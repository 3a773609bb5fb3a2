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
package api

import (
	"net/http"

	model2 "github.com/tellerbank/teller/api/model"

	"github.com/gin-gonic/gin"
)

func (a Api) Deposit(c *gin.Context) {
	number := c.Param("number")

	var movement model2.RecordMovement
	if err := c.ShouldBindJSON(&movement); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := movement.ValidateRecordMovement(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	if err := a.bank.Deposit(number, movement.Amount); err != nil {
		respondError(c, err)
		return
	}

	balance, err := a.bank.GetBalance(number)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"account_number": number, "balance": balance})
}

func (a Api) Withdraw(c *gin.Context) {
	number := c.Param("number")

	var movement model2.RecordMovement
	if err := c.ShouldBindJSON(&movement); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := movement.ValidateRecordMovement(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	if err := a.bank.Withdraw(number, movement.Amount); err != nil {
		respondError(c, err)
		return
	}

	balance, err := a.bank.GetBalance(number)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"account_number": number, "balance": balance})
}

func (a Api) Transfer(c *gin.Context) {
	var transfer model2.RecordTransfer
	if err := c.ShouldBindJSON(&transfer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := transfer.ValidateRecordTransfer(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	if err := a.bank.Transfer(transfer.From, transfer.To, transfer.Amount); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"from": transfer.From, "to": transfer.To, "amount": transfer.Amount})
}

// RunInterest applies one month of interest to every active savings account.
func (a Api) RunInterest(c *gin.Context) {
	a.bank.CalculateAllInterest()
	c.JSON(http.StatusOK, gin.H{"message": "interest applied to active savings accounts"})
}
