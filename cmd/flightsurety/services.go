package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/flightsurety/flightsurety-contract/client"
	"github.com/flightsurety/flightsurety-contract/events"
	"github.com/flightsurety/flightsurety-contract/gateway"
	"github.com/flightsurety/flightsurety-contract/oracle"
	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// listen passes contract notifications to the handler until the context is
// done.
func (e *env) listen(ctx context.Context, h events.Handler) error {
	app, err := e.net.AppHash()
	if err != nil {
		return fmt.Errorf("app contract: %w", err)
	}
	data, err := e.net.DataHash()
	if err != nil {
		return fmt.Errorf("data contract: %w", err)
	}

	l, err := events.NewListener(events.ListenerPrm{
		Logger:     e.log,
		Subscriber: e.rpc,
		Decoder:    events.Decoder{App: app, Data: data},
		Handler:    h,
	})
	if err != nil {
		return err
	}

	err = l.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func oracleCommand() *cli.Command {
	return &cli.Command{
		Name:  "oracle",
		Usage: "oracle server",
		Subcommands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "answer flight status requests on behalf of the oracle wallet accounts",
				Action: oracleRun,
			},
		},
	}
}

func oracleRun(c *cli.Context) error {
	e, err := newEnv(c)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer e.close()

	accs, err := openAccounts(e.cfg.Oracle.Wallet, e.cfg.Oracle.Accounts)
	if err != nil {
		return cli.Exit(fmt.Errorf("oracle wallet: %w", err), 1)
	}

	// Transactions are awaited over a connection of their own, the listener
	// connection is busy with the notification stream.
	rpc, err := e.dial(c.Context)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer rpc.Close()

	oracles := make([]oracle.Account, len(accs))
	for i := range accs {
		if oracles[i], err = e.newClient(rpc, accs[i]); err != nil {
			return cli.Exit(err, 1)
		}
	}

	srv, err := oracle.New(oracle.Prm{
		Logger:   e.log,
		Accounts: oracles,
		Source:   oracle.RandomStatus(e.cfg.Oracle.Statuses),
		Register: e.cfg.Oracle.Register,
	})
	if err != nil {
		return cli.Exit(err, 1)
	}
	if err = srv.Start(c.Context); err != nil {
		return cli.Exit(fmt.Errorf("start oracle server: %w", err), 1)
	}

	if err = e.listen(c.Context, srv); err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}

func relayCommand() *cli.Command {
	return &cli.Command{
		Name:  "relay",
		Usage: "Kafka event relay",
		Subcommands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "publish contract events to Kafka",
				Action: relayRun,
			},
		},
	}
}

func relayRun(c *cli.Context) error {
	e, err := newEnv(c)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer e.close()

	if len(e.cfg.Relay.Brokers) == 0 {
		return cli.Exit("relay: no brokers configured", 1)
	}

	r, err := events.NewRelay(e.log, events.NewKafkaWriter(e.cfg.Relay.Brokers, e.cfg.Relay.Topic))
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer func() {
		if err := r.Close(); err != nil {
			e.log.Warn("failed to close Kafka writer", zap.Error(err))
		}
	}()

	e.log.Info("relaying events", zap.Strings("brokers", e.cfg.Relay.Brokers), zap.String("topic", e.cfg.Relay.Topic))

	if err = e.listen(c.Context, r); err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}

func gatewayCommand() *cli.Command {
	return &cli.Command{
		Name:  "gateway",
		Usage: "HTTP API gateway",
		Subcommands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "serve the HTTP API on behalf of the wallet account",
				Action: withClient(gatewayRun),
			},
		},
	}
}

func gatewayRun(c *cli.Context, e *env, cl *client.Client) error {
	if !c.Bool("debug") {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:    e.cfg.Gateway.Address,
		Handler: gateway.NewRouter(gateway.NewHandler(e.log, cl, e.cfg.Gateway.PageSize)),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	e.log.Info("gateway is listening", zap.String("address", srv.Addr))

	select {
	case err := <-errCh:
		return cli.Exit(err, 1)
	case <-c.Context.Done():
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return cli.Exit(fmt.Errorf("shutdown http server: %w", err), 1)
		}
		return nil
	}
}
