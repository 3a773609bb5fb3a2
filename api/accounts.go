package api

import (
	"net/http"

	model2 "github.com/tellerbank/teller/api/model"

	"github.com/gin-gonic/gin"
)

func (a Api) OpenAccount(c *gin.Context) {
	var newAccount model2.OpenAccount
	if err := c.ShouldBindJSON(&newAccount); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := newAccount.ValidateOpenAccount(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	accountType, err := model2.ToAccountType(newAccount.AccountType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	number, err := a.bank.OpenAccount(newAccount.Username, newAccount.Holder, accountType)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"account_number": number})
}

func (a Api) GetAccount(c *gin.Context) {
	number := c.Param("number")

	account := a.bank.GetAccount(number)
	if account == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
		return
	}
	c.JSON(http.StatusOK, account)
}

func (a Api) GetBalance(c *gin.Context) {
	number := c.Param("number")

	balance, err := a.bank.GetBalance(number)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"account_number": number, "balance": balance})
}

func (a Api) GetStatement(c *gin.Context) {
	number := c.Param("number")

	statement, err := a.bank.GetStatement(number)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, statement)
}

func (a Api) ToggleAccountStatus(c *gin.Context) {
	number := c.Param("number")

	if err := a.bank.ToggleAccountStatus(number); err != nil {
		respondError(c, err)
		return
	}
	account := a.bank.GetAccount(number)
	c.JSON(http.StatusOK, gin.H{"account_number": number, "active": account.Active})
}
