package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/flightsurety/flightsurety-contract/client"
	"github.com/flightsurety/flightsurety-contract/common"
	"github.com/flightsurety/flightsurety-contract/config"
	"github.com/flightsurety/flightsurety-contract/rpc/suretydata"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/urfave/cli/v2"
)

// flightFlags identify a flight.
var flightFlags = []cli.Flag{
	&cli.StringFlag{Name: "code", Usage: "flight code", Required: true},
	&cli.StringFlag{Name: "to", Usage: "destination", Required: true},
	&cli.TimestampFlag{Name: "landing", Usage: "landing time", Layout: time.RFC3339, Required: true},
}

func flightRef(c *cli.Context) client.FlightRef {
	return client.FlightRef{
		Code:        c.String("code"),
		Destination: c.String("to"),
		Landing:     c.Timestamp("landing").Unix(),
	}
}

func flightCommand() *cli.Command {
	return &cli.Command{
		Name:  "flight",
		Usage: "manage flights",
		Subcommands: []*cli.Command{
			{
				Name:  "register",
				Usage: "register a flight of the wallet airline",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "from", Usage: "origin"},
					&cli.TimestampFlag{Name: "departure", Usage: "departure time", Layout: time.RFC3339, Required: true},
					&cli.StringFlag{Name: "price", Usage: "ticket cost in GAS", Required: true},
				}, flightFlags...),
				Action: withClient(flightRegister),
			},
			{
				Name:  "list",
				Usage: "list registered flights",
				Action: withClient(func(c *cli.Context, e *env, cl *client.Client) error {
					return flightList(c, cl, e.cfg.Gateway.PageSize)
				}),
			},
			{
				Name:   "status",
				Usage:  "request flight status from oracles",
				Flags:  flightFlags,
				Action: withClient(flightStatus),
			},
		},
	}
}

func flightRegister(c *cli.Context, _ *env, cl *client.Client) error {
	ref := flightRef(c)

	key, res, err := cl.RegisterFlight(c.Context, client.FlightPrm{
		Code:        ref.Code,
		Origin:      c.String("from"),
		Destination: ref.Destination,
		Departure:   c.Timestamp("departure").Unix(),
		Landing:     ref.Landing,
		TicketCost:  c.String("price"),
	})
	if err != nil {
		return cli.Exit(err, 1)
	}

	printResult(c, res)
	fmt.Fprintf(c.App.Writer, "Flight ID: %s\n", suretydata.EncodeFlightID(key))
	return nil
}

func flightList(c *cli.Context, cl *client.Client, pageSize int) error {
	flights, err := cl.Flights(pageSize)
	if err != nil {
		return cli.Exit(err, 1)
	}

	w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCODE\tROUTE\tLANDING\tPRICE\tSTATUS\tAIRLINE")
	for _, f := range flights {
		key := suretydata.FlightKey(f.Code, f.Destination, f.Landing.Int64())
		fmt.Fprintf(w, "%s\t%s\t%s-%s\t%s\t%s\t%s\t%s\n",
			suretydata.EncodeFlightID(key),
			f.Code,
			f.Origin, f.Destination,
			time.Unix(f.Landing.Int64(), 0).UTC().Format(time.RFC3339),
			client.FormatGAS(f.TicketCost),
			statusName(f.Status.Int64()),
			address.Uint160ToString(f.Airline))
	}
	return w.Flush()
}

func statusName(s int64) string {
	switch s {
	case common.StatusUnknown:
		return "unknown"
	case common.StatusOnTime:
		return "on time"
	case common.StatusLateAirline:
		return "late (airline)"
	case common.StatusLateWeather:
		return "late (weather)"
	case common.StatusLateTechnical:
		return "late (technical)"
	case common.StatusLateOther:
		return "late (other)"
	default:
		return fmt.Sprintf("invalid (%d)", s)
	}
}

func flightStatus(c *cli.Context, _ *env, cl *client.Client) error {
	index, res, err := cl.FetchFlightStatus(c.Context, flightRef(c))
	if err != nil {
		return cli.Exit(err, 1)
	}

	printResult(c, res)
	fmt.Fprintf(c.App.Writer, "Oracle index: %d\n", index)
	return nil
}

func bookCommand() *cli.Command {
	return &cli.Command{
		Name:  "book",
		Usage: "buy a ticket with flight delay insurance",
		Flags: append([]cli.Flag{
			&cli.StringFlag{Name: "insurance", Usage: "insurance premium in GAS", Value: "0"},
			&cli.StringFlag{Name: "payment", Usage: "attached GAS, ticket cost plus premium by default"},
		}, flightFlags...),
		Action: withClient(func(c *cli.Context, _ *env, cl *client.Client) error {
			res, err := cl.Book(c.Context, client.BookPrm{
				Flight:    flightRef(c),
				Insurance: c.String("insurance"),
				Payment:   c.String("payment"),
			})
			if err != nil {
				return cli.Exit(err, 1)
			}
			printResult(c, res)
			return nil
		}),
	}
}

func creditCommand() *cli.Command {
	return &cli.Command{
		Name:      "credit",
		Usage:     "print the insurance credit",
		ArgsUsage: "[address]",
		Action: withClient(func(c *cli.Context, _ *env, cl *client.Client) error {
			account := cl.Account()
			if c.Args().Present() {
				var err error
				if account, err = config.ParseHash160(c.Args().First()); err != nil {
					return cli.Exit(err, 1)
				}
			}

			credit, err := cl.Credit(account)
			if err != nil {
				return cli.Exit(err, 1)
			}
			fmt.Fprintf(c.App.Writer, "%s GAS\n", client.FormatGAS(credit))
			return nil
		}),
	}
}

func withdrawCommand() *cli.Command {
	return &cli.Command{
		Name:  "withdraw",
		Usage: "withdraw the insurance credit",
		Action: withClient(func(c *cli.Context, _ *env, cl *client.Client) error {
			amount, res, err := cl.Withdraw(c.Context)
			if err != nil {
				return cli.Exit(err, 1)
			}
			printResult(c, res)
			fmt.Fprintf(c.App.Writer, "Withdrawn: %s GAS\n", client.FormatGAS(amount))
			return nil
		}),
	}
}
