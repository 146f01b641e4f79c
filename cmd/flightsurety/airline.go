package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/flightsurety/flightsurety-contract/client"
	"github.com/flightsurety/flightsurety-contract/config"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/urfave/cli/v2"
)

func operationalCommand() *cli.Command {
	return &cli.Command{
		Name:  "operational",
		Usage: "inspect or vote for the operating status",
		Subcommands: []*cli.Command{
			{
				Name:   "get",
				Usage:  "print the operating status",
				Action: withClient(operationalGet),
			},
			{
				Name:      "set",
				Usage:     "vote for the operating status",
				ArgsUsage: "true|false",
				Action:    withClient(operationalSet),
			},
		},
	}
}

func operationalGet(c *cli.Context, _ *env, cl *client.Client) error {
	ok, err := cl.IsOperational()
	if err != nil {
		return cli.Exit(err, 1)
	}
	fmt.Fprintln(c.App.Writer, ok)
	return nil
}

func operationalSet(c *cli.Context, _ *env, cl *client.Client) error {
	mode, err := strconv.ParseBool(c.Args().First())
	if err != nil {
		return cli.Exit(fmt.Errorf("invalid mode: %w", err), 1)
	}

	res, err := cl.SetOperatingStatus(c.Context, mode)

	var qe *client.QuorumError
	if errors.As(err, &qe) {
		printResult(c, res)
		fmt.Fprintf(c.App.Writer, "Vote accepted, %d votes so far\n", qe.Votes)
		return nil
	}
	if err != nil {
		return cli.Exit(err, 1)
	}

	printResult(c, res)
	fmt.Fprintf(c.App.Writer, "Operating status is set to %t\n", mode)
	return nil
}

func airlineCommand() *cli.Command {
	return &cli.Command{
		Name:  "airline",
		Usage: "manage airlines",
		Subcommands: []*cli.Command{
			{
				Name:      "register",
				Usage:     "register or endorse an airline",
				ArgsUsage: "<address>",
				Action:    withClient(airlineRegister),
			},
			{
				Name:      "fund",
				Usage:     "pay the participation fee",
				ArgsUsage: "<GAS>",
				Action:    withClient(airlineFund),
			},
			{
				Name:      "info",
				Usage:     "print the airline record",
				ArgsUsage: "[address]",
				Action:    withClient(airlineInfo),
			},
		},
	}
}

func airlineRegister(c *cli.Context, _ *env, cl *client.Client) error {
	airline, err := config.ParseHash160(c.Args().First())
	if err != nil {
		return cli.Exit(err, 1)
	}

	res, err := cl.RegisterAirline(c.Context, airline)

	var qe *client.QuorumError
	if errors.As(err, &qe) {
		printResult(c, res)
		fmt.Fprintf(c.App.Writer, "Endorsement accepted, %d votes so far\n", qe.Votes)
		return nil
	}
	if err != nil {
		return cli.Exit(err, 1)
	}

	printResult(c, res)
	fmt.Fprintln(c.App.Writer, "Airline is registered")
	return nil
}

func airlineFund(c *cli.Context, _ *env, cl *client.Client) error {
	if c.Args().Len() != 1 {
		return cli.Exit("amount is required", 1)
	}

	res, err := cl.Fund(c.Context, c.Args().First())
	if err != nil {
		return cli.Exit(err, 1)
	}

	printResult(c, res)
	return nil
}

func airlineInfo(c *cli.Context, _ *env, cl *client.Client) error {
	airline := cl.Account()
	if c.Args().Present() {
		var err error
		if airline, err = config.ParseHash160(c.Args().First()); err != nil {
			return cli.Exit(err, 1)
		}
	}

	a, err := cl.Airline(airline)
	if err != nil {
		return cli.Exit(err, 1)
	}
	if !a.Registered {
		return cli.Exit(client.ErrUnknownAirline, 1)
	}

	needed, err := cl.EndorsementNeeded(airline)
	if err != nil {
		return cli.Exit(err, 1)
	}

	fmt.Fprintf(c.App.Writer, "Address:      %s\n", address.Uint160ToString(airline))
	fmt.Fprintf(c.App.Writer, "Funded:       %t\n", a.FeePaid)
	fmt.Fprintf(c.App.Writer, "Fund:         %s GAS\n", client.FormatGAS(a.Fund))
	fmt.Fprintf(c.App.Writer, "Endorsements: %s (needed %d)\n", a.Endorsements, needed)
	return nil
}
