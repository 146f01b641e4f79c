package main

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/flightsurety/flightsurety-contract/client"
	"github.com/flightsurety/flightsurety-contract/config"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// env holds resources shared by commands working with the network.
type env struct {
	log *zap.Logger
	cfg *config.Config
	net config.Network
	rpc *rpcclient.WSClient
}

func newLogger(debug bool) (*zap.Logger, error) {
	c := zap.NewProductionConfig()
	c.Encoding = "console"
	c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if debug {
		c.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return c.Build()
}

// newEnv loads configuration and dials the selected network.
func newEnv(c *cli.Context) (*env, error) {
	log, err := newLogger(c.Bool("debug"))
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	n, err := cfg.SelectedNetwork()
	if err != nil {
		return nil, err
	}

	e := &env{log: log, cfg: cfg, net: n}
	if e.rpc, err = e.dial(c.Context); err != nil {
		return nil, err
	}

	return e, nil
}

// dial opens a new connection to the selected network.
func (e *env) dial(ctx context.Context) (*rpcclient.WSClient, error) {
	rpc, err := rpcclient.NewWS(ctx, e.net.URL, rpcclient.WSOptions{
		Options: rpcclient.Options{
			DialTimeout:    e.net.DialTimeout,
			RequestTimeout: e.net.DialTimeout,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}
	if err = rpc.Init(); err != nil {
		rpc.Close()
		return nil, fmt.Errorf("RPC client init: %w", err)
	}

	e.log.Debug("connected to the network", zap.String("network", e.cfg.Network), zap.String("url", e.net.URL))

	return rpc, nil
}

func (e *env) close() {
	e.rpc.Close()
	_ = e.log.Sync()
}

// openAccounts decrypts accounts of the wallet. A single account is opened if
// the wallet address is set, otherwise the first n accounts (all if n is
// zero).
func openAccounts(w config.Wallet, n int) ([]*wallet.Account, error) {
	if w.Path == "" {
		return nil, errors.New("missing wallet path")
	}

	wlt, err := wallet.NewWalletFromFile(w.Path)
	if err != nil {
		return nil, fmt.Errorf("open wallet: %w", err)
	}
	defer wlt.Close()

	var accs []*wallet.Account
	if w.Address != "" {
		addr, err := config.ParseHash160(w.Address)
		if err != nil {
			return nil, fmt.Errorf("wallet address: %w", err)
		}
		acc := wlt.GetAccount(addr)
		if acc == nil {
			return nil, fmt.Errorf("account %s is missing in the wallet", w.Address)
		}
		accs = []*wallet.Account{acc}
	} else {
		accs = wlt.Accounts
		if n > 0 && n < len(accs) {
			accs = accs[:n]
		}
	}
	if len(accs) == 0 {
		return nil, errors.New("wallet has no accounts")
	}

	for _, acc := range accs {
		if err = acc.Decrypt(w.Password, wlt.Scrypt); err != nil {
			return nil, fmt.Errorf("decrypt account %s: %w", acc.Address, err)
		}
	}

	return accs, nil
}

// newClient returns FlightSurety client acting on behalf of the account over
// the given connection.
func (e *env) newClient(rpc *rpcclient.WSClient, acc *wallet.Account) (*client.Client, error) {
	app, err := e.net.AppHash()
	if err != nil {
		return nil, fmt.Errorf("app contract: %w", err)
	}
	data, err := e.net.DataHash()
	if err != nil {
		return nil, fmt.Errorf("data contract: %w", err)
	}
	fees, err := e.cfg.ClientFees()
	if err != nil {
		return nil, err
	}

	act, err := client.NewActor(rpc, acc)
	if err != nil {
		return nil, fmt.Errorf("init actor: %w", err)
	}

	return client.New(client.Prm{
		Logger: e.log.With(zap.String("account", acc.Address)),
		Actor:  act,
		App:    app,
		Data:   data,
		Fees:   fees,
	})
}

// withClient runs f with the client of the configured wallet account.
func withClient(f func(c *cli.Context, e *env, cl *client.Client) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		e, err := newEnv(c)
		if err != nil {
			return cli.Exit(err, 1)
		}
		defer e.close()

		accs, err := openAccounts(e.cfg.Wallet, 1)
		if err != nil {
			return cli.Exit(err, 1)
		}

		cl, err := e.newClient(e.rpc, accs[0])
		if err != nil {
			return cli.Exit(err, 1)
		}

		return f(c, e, cl)
	}
}

func printResult(c *cli.Context, res *client.Result) {
	if res == nil {
		return
	}
	fmt.Fprintf(c.App.Writer, "Transaction: %s\nGAS consumed: %s\n",
		res.Hash.StringLE(), client.FormatGAS(big.NewInt(res.GasConsumed)))
}
