package gateway

import (
	"errors"
	"math/big"
	"net/http"

	"github.com/flightsurety/flightsurety-contract/client"
	"github.com/flightsurety/flightsurety-contract/config"
	"github.com/flightsurety/flightsurety-contract/rpc/suretydata"
	"github.com/gin-gonic/gin"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

type statusResponse struct {
	Operational bool   `json:"operational"`
	Account     string `json:"account"`
}

type txResponse struct {
	Tx  string `json:"tx"`
	Gas string `json:"gas"`
}

type registerAirlineRequest struct {
	Address string `json:"address" binding:"required"`
}

type registerAirlineResponse struct {
	txResponse
	Admitted bool  `json:"admitted"`
	Votes    int64 `json:"votes,omitempty"`
}

type fundRequest struct {
	Amount string `json:"amount" binding:"required"`
}

type airlineResponse struct {
	Address           string `json:"address"`
	Registered        bool   `json:"registered"`
	Funded            bool   `json:"funded"`
	Endorsements      int64  `json:"endorsements"`
	EndorsementNeeded int64  `json:"endorsement_needed"`
	Fund              string `json:"fund"`
}

type registerFlightRequest struct {
	Code        string `json:"code" binding:"required"`
	Origin      string `json:"origin"`
	Destination string `json:"destination" binding:"required"`
	Departure   int64  `json:"departure" binding:"required"`
	Landing     int64  `json:"landing" binding:"required"`
	TicketCost  string `json:"ticket_cost" binding:"required"`
}

type registerFlightResponse struct {
	txResponse
	ID string `json:"id"`
}

type flightResponse struct {
	ID          string `json:"id"`
	Airline     string `json:"airline"`
	Code        string `json:"code"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Departure   int64  `json:"departure"`
	Landing     int64  `json:"landing"`
	TicketCost  string `json:"ticket_cost"`
	Status      int64  `json:"status"`
	Credited    bool   `json:"credited"`
}

type fetchStatusResponse struct {
	txResponse
	Index int64 `json:"index"`
}

type bookRequest struct {
	Insurance string `json:"insurance" binding:"required"`
	Payment   string `json:"payment"`
}

type ticketResponse struct {
	Purchased bool   `json:"purchased"`
	Insurance string `json:"insurance"`
	Payout    string `json:"payout"`
}

type creditResponse struct {
	Address string `json:"address"`
	Credit  string `json:"credit"`
}

type withdrawResponse struct {
	txResponse
	Amount string `json:"amount"`
}

func newTxResponse(res *client.Result) txResponse {
	if res == nil {
		return txResponse{}
	}
	return txResponse{
		Tx:  res.Hash.StringLE(),
		Gas: client.FormatGAS(big.NewInt(res.GasConsumed)),
	}
}

func addressString(u util.Uint160) string {
	return address.Uint160ToString(u)
}

func newFlightResponse(key util.Uint256, f *suretydata.SuretydataFlight) flightResponse {
	return flightResponse{
		ID:          suretydata.EncodeFlightID(key),
		Airline:     addressString(f.Airline),
		Code:        f.Code,
		Origin:      f.Origin,
		Destination: f.Destination,
		Departure:   f.Departure.Int64(),
		Landing:     f.Landing.Int64(),
		TicketCost:  client.FormatGAS(f.TicketCost),
		Status:      f.Status.Int64(),
		Credited:    f.Credited,
	}
}

func flightRef(f *suretydata.SuretydataFlight) client.FlightRef {
	return client.FlightRef{
		Code:        f.Code,
		Destination: f.Destination,
		Landing:     f.Landing.Int64(),
	}
}

func (h *Handler) registerAirline(c *gin.Context) {
	var req registerAirlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	airline, err := config.ParseHash160(req.Address)
	if err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.service.RegisterAirline(c.Request.Context(), airline)

	var qe *client.QuorumError
	if errors.As(err, &qe) {
		c.JSON(http.StatusAccepted, registerAirlineResponse{
			txResponse: newTxResponse(res),
			Votes:      qe.Votes,
		})
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, registerAirlineResponse{
		txResponse: newTxResponse(res),
		Admitted:   true,
	})
}

func (h *Handler) fund(c *gin.Context) {
	var req fundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if _, err := client.ParseGAS(req.Amount); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.service.Fund(c.Request.Context(), req.Amount)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, newTxResponse(res))
}

func (h *Handler) airline(c *gin.Context) {
	airline, err := config.ParseHash160(c.Param("address"))
	if err != nil {
		badRequest(c, err)
		return
	}

	a, err := h.service.Airline(airline)
	if err != nil {
		h.fail(c, err)
		return
	}
	if !a.Registered {
		h.fail(c, client.ErrUnknownAirline)
		return
	}

	needed, err := h.service.EndorsementNeeded(airline)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, airlineResponse{
		Address:           addressString(airline),
		Registered:        a.Registered,
		Funded:            a.FeePaid,
		Endorsements:      a.Endorsements.Int64(),
		EndorsementNeeded: needed,
		Fund:              client.FormatGAS(a.Fund),
	})
}

func (h *Handler) flights(c *gin.Context) {
	list, err := h.service.Flights(h.pageSize)
	if err != nil {
		h.fail(c, err)
		return
	}

	res := make([]flightResponse, len(list))
	for i, f := range list {
		res[i] = newFlightResponse(flightRef(f).Key(), f)
	}

	c.JSON(http.StatusOK, res)
}

func (h *Handler) registerFlight(c *gin.Context) {
	var req registerFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if req.Landing <= req.Departure {
		badRequest(c, errors.New("landing must be after departure"))
		return
	}

	key, res, err := h.service.RegisterFlight(c.Request.Context(), client.FlightPrm{
		Code:        req.Code,
		Origin:      req.Origin,
		Destination: req.Destination,
		Departure:   req.Departure,
		Landing:     req.Landing,
		TicketCost:  req.TicketCost,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, registerFlightResponse{
		txResponse: newTxResponse(res),
		ID:         suretydata.EncodeFlightID(key),
	})
}

// flightParam resolves the flight from the :id path parameter. It writes the
// error response and returns false if the flight can't be resolved.
func (h *Handler) flightParam(c *gin.Context) (util.Uint256, *suretydata.SuretydataFlight, bool) {
	key, err := suretydata.DecodeFlightID(c.Param("id"))
	if err != nil {
		badRequest(c, err)
		return util.Uint256{}, nil, false
	}

	f, err := h.service.FlightByKey(key)
	if err != nil {
		h.fail(c, err)
		return util.Uint256{}, nil, false
	}

	return key, f, true
}

func (h *Handler) flight(c *gin.Context) {
	key, f, ok := h.flightParam(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, newFlightResponse(key, f))
}

func (h *Handler) fetchFlightStatus(c *gin.Context) {
	_, f, ok := h.flightParam(c)
	if !ok {
		return
	}

	index, res, err := h.service.FetchFlightStatus(c.Request.Context(), flightRef(f))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusAccepted, fetchStatusResponse{
		txResponse: newTxResponse(res),
		Index:      index,
	})
}

func (h *Handler) book(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	_, f, ok := h.flightParam(c)
	if !ok {
		return
	}

	res, err := h.service.Book(c.Request.Context(), client.BookPrm{
		Flight:    flightRef(f),
		Insurance: req.Insurance,
		Payment:   req.Payment,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, newTxResponse(res))
}

func (h *Handler) ticket(c *gin.Context) {
	passenger, err := config.ParseHash160(c.Param("address"))
	if err != nil {
		badRequest(c, err)
		return
	}

	_, f, ok := h.flightParam(c)
	if !ok {
		return
	}

	t, err := h.service.Ticket(flightRef(f), passenger)
	if err != nil {
		h.fail(c, err)
		return
	}
	if !t.Purchased {
		c.JSON(http.StatusNotFound, gin.H{"error": "ticket is not purchased"})
		return
	}

	c.JSON(http.StatusOK, ticketResponse{
		Purchased: t.Purchased,
		Insurance: client.FormatGAS(t.Insurance),
		Payout:    client.FormatGAS(t.Payout),
	})
}

func (h *Handler) credit(c *gin.Context) {
	account, err := config.ParseHash160(c.Param("address"))
	if err != nil {
		badRequest(c, err)
		return
	}

	credit, err := h.service.Credit(account)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, creditResponse{
		Address: addressString(account),
		Credit:  client.FormatGAS(credit),
	})
}

func (h *Handler) withdraw(c *gin.Context) {
	amount, res, err := h.service.Withdraw(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, withdrawResponse{
		txResponse: newTxResponse(res),
		Amount:     client.FormatGAS(amount),
	})
}
