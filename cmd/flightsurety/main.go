package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "flightsurety",
		Usage:   "FlightSurety flight delay insurance on Neo N3",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the configuration file",
				Value:   "config.yml",
				EnvVars: []string{"FLIGHTSURETY_CONFIG"},
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Commands: []*cli.Command{
			deployCommand(),
			operationalCommand(),
			airlineCommand(),
			flightCommand(),
			bookCommand(),
			creditCommand(),
			withdrawCommand(),
			oracleCommand(),
			gatewayCommand(),
			relayCommand(),
			dumpCommand(),
		},
	}
}
