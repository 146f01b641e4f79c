package main

import (
	"errors"
	"fmt"

	"github.com/flightsurety/flightsurety-contract/config"
	"github.com/flightsurety/flightsurety-contract/contracts"
	"github.com/flightsurety/flightsurety-contract/deploy"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func deployCommand() *cli.Command {
	return &cli.Command{
		Name:  "deploy",
		Usage: "deploy or update FlightSurety contracts owned by the wallet account",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "contracts",
				Usage: "directory with compiled contracts",
				Value: "contracts",
			},
			&cli.StringFlag{
				Name:     "first-airline",
				Usage:    "address of the airline registered on deployment",
				Required: true,
			},
		},
		Action: deployAction,
	}
}

func deployAction(c *cli.Context) error {
	firstAirline, err := config.ParseHash160(c.String("first-airline"))
	if err != nil {
		return cli.Exit(fmt.Errorf("first airline: %w", err), 1)
	}

	ctrs, err := contracts.GetFromDir(c.String("contracts"))
	if err != nil {
		return cli.Exit(fmt.Errorf("read contracts: %w", err), 1)
	}
	if len(ctrs) != 2 {
		return cli.Exit(errors.New("unexpected number of contracts"), 1)
	}

	e, err := newEnv(c)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer e.close()

	accs, err := openAccounts(e.cfg.Wallet, 1)
	if err != nil {
		return cli.Exit(err, 1)
	}

	res, err := deploy.Deploy(c.Context, deploy.Prm{
		Logger:       e.log,
		Blockchain:   e.rpc,
		LocalAccount: accs[0],
		DataContract: deploy.DataContractPrm{
			Common: deploy.CommonDeployPrm{
				NEF:      ctrs[0].NEF,
				Manifest: ctrs[0].Manifest,
			},
			FirstAirline: firstAirline,
		},
		AppContract: deploy.AppContractPrm{
			Common: deploy.CommonDeployPrm{
				NEF:      ctrs[1].NEF,
				Manifest: ctrs[1].Manifest,
			},
		},
	})
	if err != nil {
		return cli.Exit(fmt.Errorf("deploy: %w", err), 1)
	}

	e.log.Info("contracts are ready",
		zap.Stringer("data", res.Data), zap.Stringer("app", res.App))

	fmt.Fprintf(c.App.Writer, "data: %s\napp: %s\n",
		address.Uint160ToString(res.Data), address.Uint160ToString(res.App))
	return nil
}
