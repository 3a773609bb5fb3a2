package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tellerbank/teller"
	"github.com/tellerbank/teller/api/middleware"
	"github.com/tellerbank/teller/config"
	"github.com/tellerbank/teller/internal/ledgererror"
)

type Api struct {
	bank   *teller.Bank
	router *gin.Engine
}

func (a Api) Router() *gin.Engine {
	router := a.router
	router.POST("/users", a.CreateUser)
	router.POST("/login", a.Login)
	router.GET("/users/:username/accounts", a.GetUserAccounts)

	router.POST("/accounts", a.OpenAccount)
	router.GET("/accounts/:number", a.GetAccount)
	router.GET("/accounts/:number/balance", a.GetBalance)
	router.GET("/accounts/:number/statement", a.GetStatement)
	router.PATCH("/accounts/:number/status", a.ToggleAccountStatus)

	router.POST("/accounts/:number/deposits", a.Deposit)
	router.POST("/accounts/:number/withdrawals", a.Withdraw)
	router.POST("/transfers", a.Transfer)
	router.POST("/interest-runs", a.RunInterest)

	router.GET("/stats", a.GetStats)
	return a.router
}

func NewAPI(b *teller.Bank) *Api {
	gin.SetMode(gin.ReleaseMode)
	conf, err := config.Fetch()
	if err != nil {
		return nil
	}
	r := gin.Default()
	if conf.Server.Secure {
		r.Use(middleware.SecretKeyAuthMiddleware())
	}

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, "server running...")
	})

	return &Api{bank: b, router: r}
}

// respondError translates a domain error into the HTTP status its code maps
// to. The domain never formats presentation text; this is the boundary.
func respondError(c *gin.Context, err error) {
	c.JSON(ledgererror.MapErrorToHTTPStatus(err), gin.H{"error": err.Error()})
}

func (a Api) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, a.bank.GetAccountStats())
}
