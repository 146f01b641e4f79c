/*
Package client provides a high-level interface to the FlightSurety contracts.

Client binds the App and Data contracts to a single actor, so every
transaction is sent on behalf of one active account. Mutating calls are
test-invoked first, then sent with the configured fees and awaited. Contract
faults are returned as *FaultError values which unwrap to the package errors.
*/
package client

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/flightsurety/flightsurety-contract/rpc/suretyapp"
	"github.com/flightsurety/flightsurety-contract/rpc/suretydata"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"go.uber.org/zap"
)

// Actor groups the actor.Actor methods used by Client.
type Actor interface {
	suretydata.Invoker
	suretyapp.Actor

	// Sender returns the account transactions are sent from.
	Sender() util.Uint160
	// Sign adds the sender signature to the transaction.
	Sign(tx *transaction.Transaction) error
	// Send relays the signed transaction to the network.
	Send(tx *transaction.Transaction) (util.Uint256, uint32, error)
	// WaitAny waits for one of the transactions to be persisted.
	WaitAny(ctx context.Context, vub uint32, hashes ...util.Uint256) (*state.AppExecResult, error)
}

// Fees are the fixed fee parameters attached to every transaction.
type Fees struct {
	// SystemFee is the GAS limit of the transaction. Zero means the test
	// invocation result is used as is.
	SystemFee int64
	// NetworkFee is added on top of the calculated network fee to prioritize
	// the transaction.
	NetworkFee int64
}

// Prm groups Client parameters.
type Prm struct {
	// Writes transaction progress. Defaults to no-op logger.
	Logger *zap.Logger

	// Actor sends transactions from the active account. Payments need the
	// witness scope of NewActor.
	Actor Actor

	// App is the FlightSurety App contract address.
	App util.Uint160
	// Data is the FlightSurety Data contract address.
	Data util.Uint160

	Fees Fees
}

// Client is a FlightSurety contracts client.
type Client struct {
	log   *zap.Logger
	actor Actor
	fees  Fees

	app  *suretyapp.Contract
	data *suretydata.Contract
}

// Result describes a persisted transaction.
type Result struct {
	Hash        util.Uint256
	VUB         uint32
	GasConsumed int64
	Stack       []stackitem.Item

	log *result.ApplicationLog
}

// ApplicationLog returns the application log of the transaction, it can be
// passed to the event decoders of the rpc packages.
func (r *Result) ApplicationLog() *result.ApplicationLog {
	return r.log
}

// New returns a Client for the given contracts.
func New(prm Prm) (*Client, error) {
	switch {
	case prm.Actor == nil:
		return nil, errors.New("missing actor")
	case prm.App.Equals(util.Uint160{}):
		return nil, errors.New("missing App contract address")
	case prm.Data.Equals(util.Uint160{}):
		return nil, errors.New("missing Data contract address")
	case prm.Fees.SystemFee < 0 || prm.Fees.NetworkFee < 0:
		return nil, errors.New("negative fee")
	}

	log := prm.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Client{
		log:   log,
		actor: prm.Actor,
		fees:  prm.Fees,
		app:   suretyapp.New(prm.Actor, prm.App),
		data:  suretydata.New(prm.Actor, prm.Data),
	}, nil
}

// Account returns the active account.
func (c *Client) Account() util.Uint160 {
	return c.actor.Sender()
}

// tune applies configured fees to the test-invoked transaction.
func (c *Client) tune(tx *transaction.Transaction) error {
	if c.fees.SystemFee > 0 {
		if tx.SystemFee > c.fees.SystemFee {
			return fmt.Errorf("%w: %d > %d", ErrGasLimitExceeded, tx.SystemFee, c.fees.SystemFee)
		}
		tx.SystemFee = c.fees.SystemFee
	}
	tx.NetworkFee += c.fees.NetworkFee
	return nil
}

// execute builds the transaction with the given function, sends it and waits
// for the result. The function must return an unsigned transaction.
func (c *Client) execute(ctx context.Context, method string, makeTx func() (*transaction.Transaction, error)) (*Result, error) {
	tx, err := makeTx()
	if err != nil {
		return nil, newFaultError(method, err.Error())
	}

	err = c.tune(tx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	err = c.actor.Sign(tx)
	if err != nil {
		return nil, fmt.Errorf("%s: sign transaction: %w", method, err)
	}

	h, vub, err := c.actor.Send(tx)
	if err != nil {
		return nil, fmt.Errorf("%s: send transaction: %w", method, err)
	}

	c.log.Debug("transaction sent, waiting...",
		zap.String("method", method), zap.Stringer("tx", h), zap.Uint32("vub", vub))

	res, err := c.actor.WaitAny(ctx, vub, h)
	if err != nil {
		return nil, fmt.Errorf("%s: wait for transaction %s: %w", method, h.StringLE(), err)
	}

	if res.VMState != vmstate.Halt {
		c.log.Info("transaction failed",
			zap.String("method", method), zap.Stringer("tx", h), zap.String("exception", res.FaultException))
		return nil, newFaultError(method, res.FaultException)
	}

	c.log.Info("transaction persisted",
		zap.String("method", method), zap.Stringer("tx", h), zap.Int64("gas", res.GasConsumed))

	return &Result{
		Hash:        h,
		VUB:         vub,
		GasConsumed: res.GasConsumed,
		Stack:       res.Stack,
		log: &result.ApplicationLog{
			Container:     h,
			IsTransaction: true,
			Executions:    []state.Execution{res.Execution},
		},
	}, nil
}

func (r *Result) boolResult() (bool, error) {
	if len(r.Stack) == 0 {
		return false, errors.New("empty result stack")
	}
	return r.Stack[0].TryBool()
}

func (r *Result) intResult() (*big.Int, error) {
	if len(r.Stack) == 0 {
		return nil, errors.New("empty result stack")
	}
	return r.Stack[0].TryInteger()
}
