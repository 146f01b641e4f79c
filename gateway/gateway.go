// Package gateway exposes the FlightSurety client over JSON HTTP API used by
// the dapp.
package gateway

import (
	"context"
	"errors"
	"math/big"
	"net/http"
	"time"

	"github.com/flightsurety/flightsurety-contract/client"
	"github.com/flightsurety/flightsurety-contract/rpc/suretydata"
	"github.com/gin-gonic/gin"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"go.uber.org/zap"
)

// Service is the FlightSurety client used by the handlers, *client.Client
// implements it.
type Service interface {
	Account() util.Uint160
	IsOperational() (bool, error)
	Airline(airline util.Uint160) (*suretydata.SuretydataAirline, error)
	EndorsementNeeded(airline util.Uint160) (int64, error)
	RegisterAirline(ctx context.Context, airline util.Uint160) (*client.Result, error)
	Fund(ctx context.Context, amount string) (*client.Result, error)
	Flights(pageSize int) ([]*suretydata.SuretydataFlight, error)
	FlightByKey(key util.Uint256) (*suretydata.SuretydataFlight, error)
	RegisterFlight(ctx context.Context, prm client.FlightPrm) (util.Uint256, *client.Result, error)
	FetchFlightStatus(ctx context.Context, f client.FlightRef) (int64, *client.Result, error)
	Book(ctx context.Context, prm client.BookPrm) (*client.Result, error)
	Ticket(f client.FlightRef, passenger util.Uint160) (*suretydata.SuretydataTicket, error)
	Credit(account util.Uint160) (*big.Int, error)
	Withdraw(ctx context.Context) (*big.Int, *client.Result, error)
}

// Handler serves the API.
type Handler struct {
	log      *zap.Logger
	service  Service
	pageSize int
}

// NewHandler returns a Handler over the service. Flights are listed in pages
// of the given size.
func NewHandler(log *zap.Logger, service Service, pageSize int) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{log: log, service: service, pageSize: pageSize}
}

// Register adds API routes to the group.
func (h *Handler) Register(router *gin.RouterGroup) {
	router.GET("/status", h.status)

	router.POST("/airlines", h.registerAirline)
	router.POST("/airlines/fund", h.fund)
	router.GET("/airlines/:address", h.airline)

	router.GET("/flights", h.flights)
	router.POST("/flights", h.registerFlight)
	router.GET("/flights/:id", h.flight)
	router.POST("/flights/:id/status", h.fetchFlightStatus)
	router.POST("/flights/:id/tickets", h.book)
	router.GET("/flights/:id/tickets/:address", h.ticket)

	router.GET("/credits/:address", h.credit)
	router.POST("/withdrawals", h.withdraw)
}

// NewRouter returns gin engine serving the handler under /api.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(h.log))
	h.Register(r.Group("/api"))
	return r
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("request served",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("took", time.Since(start)))
	}
}

// fail writes error response with status matching the error.
func (h *Handler) fail(c *gin.Context, err error) {
	code := http.StatusInternalServerError

	var fe *client.FaultError
	switch {
	case errors.Is(err, client.ErrUnknownAirline),
		errors.Is(err, client.ErrUnknownFlight),
		errors.Is(err, client.ErrUnknownOracle):
		code = http.StatusNotFound
	case errors.Is(err, client.ErrAccessDenied),
		errors.Is(err, client.ErrNotFunded):
		code = http.StatusForbidden
	case errors.Is(err, client.ErrNotOperational):
		code = http.StatusServiceUnavailable
	case errors.Is(err, client.ErrAlreadyRegistered),
		errors.Is(err, client.ErrAlreadyEndorsed),
		errors.Is(err, client.ErrTicketPurchased),
		errors.Is(err, client.ErrFlightSettled):
		code = http.StatusConflict
	case errors.Is(err, client.ErrNoCredit),
		errors.Is(err, client.ErrInsufficientPayment),
		errors.Is(err, client.ErrInsuranceLimit),
		errors.As(err, &fe):
		code = http.StatusUnprocessableEntity
	}

	if code == http.StatusInternalServerError {
		h.log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}

	c.JSON(code, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func (h *Handler) status(c *gin.Context) {
	ok, err := h.service.IsOperational()
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, statusResponse{
		Operational: ok,
		Account:     addressString(h.service.Account()),
	})
}
