/*
Package oracle implements an off-chain oracle server for the FlightSurety App
contract.

Server manages a set of oracle accounts. On start it registers the accounts
which are not registered yet and caches indexes assigned to them. Then it
handles OracleRequest events: every account holding the requested index
reports the flight status obtained from the StatusSource.
*/
package oracle

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"sync"

	"github.com/flightsurety/flightsurety-contract/client"
	"github.com/flightsurety/flightsurety-contract/common"
	"github.com/flightsurety/flightsurety-contract/events"
	"github.com/flightsurety/flightsurety-contract/rpc/suretyapp"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"go.uber.org/zap"
)

// Account is an oracle account able to act in the App contract,
// *client.Client implements it.
type Account interface {
	Account() util.Uint160
	IsOracleRegistered(oracle util.Uint160) (bool, error)
	RegisterOracle(ctx context.Context) (*client.Result, error)
	OracleIndexes(oracle util.Uint160) ([]int64, error)
	SubmitOracleResponse(ctx context.Context, index int64, f client.FlightRef, status int64) (*client.Result, error)
}

// StatusSource provides flight statuses.
type StatusSource interface {
	FlightStatus(ctx context.Context, f client.FlightRef) (int64, error)
}

// RandomStatus picks one of the statuses randomly on each call.
type RandomStatus []int

// FlightStatus implements StatusSource.
func (s RandomStatus) FlightStatus(context.Context, client.FlightRef) (int64, error) {
	if len(s) == 0 {
		return 0, errors.New("no statuses to choose from")
	}
	return int64(s[rand.Intn(len(s))]), nil
}

// FixedStatus always reports the same status.
type FixedStatus int64

// FlightStatus implements StatusSource.
func (s FixedStatus) FlightStatus(context.Context, client.FlightRef) (int64, error) {
	return int64(s), nil
}

// Prm groups Server parameters.
type Prm struct {
	Logger   *zap.Logger
	Accounts []Account
	Source   StatusSource
	// Register enables registration of unknown accounts on Start.
	Register bool
}

// Server answers flight status requests.
type Server struct {
	log      *zap.Logger
	source   StatusSource
	register bool

	mtx      sync.RWMutex
	accounts []Account
	indexes  map[util.Uint160][]int64
}

var _ events.Handler = (*Server)(nil)

// New returns a Server with the given parameters.
func New(prm Prm) (*Server, error) {
	if len(prm.Accounts) == 0 {
		return nil, errors.New("no oracle accounts")
	}
	if prm.Source == nil {
		return nil, errors.New("missing status source")
	}

	log := prm.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Server{
		log:      log,
		source:   prm.Source,
		register: prm.Register,
		accounts: prm.Accounts,
		indexes:  make(map[util.Uint160][]int64, len(prm.Accounts)),
	}, nil
}

// Start registers accounts if enabled and loads their indexes. Accounts that
// are not registered are skipped with a warning.
func (s *Server) Start(ctx context.Context) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for _, acc := range s.accounts {
		addr := acc.Account()
		l := s.log.With(zap.Stringer("oracle", addr))

		registered, err := acc.IsOracleRegistered(addr)
		if err != nil {
			return fmt.Errorf("check oracle %s registration: %w", addr.StringLE(), err)
		}

		if !registered {
			if !s.register {
				l.Warn("oracle is not registered, skipping")
				continue
			}

			_, err = acc.RegisterOracle(ctx)
			if err != nil {
				return fmt.Errorf("register oracle %s: %w", addr.StringLE(), err)
			}
			l.Info("oracle registered")
		}

		indexes, err := acc.OracleIndexes(addr)
		if err != nil {
			return fmt.Errorf("get indexes of oracle %s: %w", addr.StringLE(), err)
		}
		s.indexes[addr] = indexes

		l.Info("oracle is ready", zap.Int64s("indexes", indexes))
	}

	if len(s.indexes) == 0 {
		return errors.New("no registered oracles")
	}
	return nil
}

// Indexes returns the cached indexes of the oracle.
func (s *Server) Indexes(oracle util.Uint160) []int64 {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return slices.Clone(s.indexes[oracle])
}

// Handle implements events.Handler, it reacts on OracleRequest events only.
func (s *Server) Handle(ctx context.Context, ev *events.Event) error {
	req, ok := ev.Value.(*suretyapp.OracleRequestEvent)
	if !ok {
		return nil
	}

	return s.Respond(ctx, req)
}

// Respond submits the flight status on behalf of every account holding the
// requested index. Submission stops as soon as the request is closed.
func (s *Server) Respond(ctx context.Context, req *suretyapp.OracleRequestEvent) error {
	index := req.Index.Int64()
	f := client.FlightRef{
		Code:        req.Code,
		Destination: req.Destination,
		Landing:     req.Landing.Int64(),
	}
	l := s.log.With(zap.String("flight", f.Code), zap.Int64("index", index))

	s.mtx.RLock()
	defer s.mtx.RUnlock()

	var (
		responded int
		errs      []error
	)
	for _, acc := range s.accounts {
		addr := acc.Account()
		if !slices.Contains(s.indexes[addr], index) {
			continue
		}

		status, err := s.source.FlightStatus(ctx, f)
		if err != nil {
			return fmt.Errorf("get flight status: %w", err)
		}
		if !common.IsValidStatus(int(status)) {
			return fmt.Errorf("status source returned invalid status %d", status)
		}

		_, err = acc.SubmitOracleResponse(ctx, index, f, status)
		if errors.Is(err, client.ErrRequestClosed) {
			l.Info("flight status request is closed", zap.Int("responses", responded))
			return nil
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("oracle %s: %w", addr.StringLE(), err))
			continue
		}

		responded++
		l.Debug("oracle response submitted", zap.Stringer("oracle", addr), zap.Int64("status", status))
	}

	l.Info("flight status request handled", zap.Int("responses", responded))
	return errors.Join(errs...)
}
