package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

type storageItem struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

type contractDump struct {
	Name  string        `yaml:"name"`
	Hash  string        `yaml:"hash"`
	Items []storageItem `yaml:"items"`
}

type chainDump struct {
	Network string         `yaml:"network"`
	Block   uint32         `yaml:"block"`
	Root    string         `yaml:"state_root"`
	Items   []contractDump `yaml:"contracts"`
}

func dumpCommand() *cli.Command {
	return &cli.Command{
		Name:  "dump",
		Usage: "dump storage of FlightSurety contracts at the latest state root",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "output file, stdout if omitted",
			},
		},
		Action: dumpAction,
	}
}

func dumpAction(c *cli.Context) error {
	e, err := newEnv(c)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer e.close()

	app, err := e.net.AppHash()
	if err != nil {
		return cli.Exit(fmt.Errorf("app contract: %w", err), 1)
	}
	data, err := e.net.DataHash()
	if err != nil {
		return cli.Exit(fmt.Errorf("data contract: %w", err), 1)
	}

	nLatestBlock, err := e.rpc.GetBlockCount()
	if err != nil {
		return cli.Exit(fmt.Errorf("get number of the latest block: %w", err), 1)
	}

	stateRoot, err := e.rpc.GetStateRootByHeight(nLatestBlock - 1)
	if err != nil {
		return cli.Exit(fmt.Errorf("get state root at penult block #%d: %w", nLatestBlock-1, err), 1)
	}

	d := chainDump{
		Network: e.cfg.Network,
		Block:   nLatestBlock - 1,
		Root:    stateRoot.Root.StringLE(),
	}

	for _, ctr := range []struct {
		name string
		hash util.Uint160
	}{
		{"data", data},
		{"app", app},
	} {
		cd := contractDump{Name: ctr.name, Hash: ctr.hash.StringLE()}

		err = iterateContractStorage(e.rpc, stateRoot.Root, ctr.hash, func(key, value []byte) error {
			cd.Items = append(cd.Items, storageItem{
				Key:   hex.EncodeToString(key),
				Value: hex.EncodeToString(value),
			})
			return nil
		})
		if err != nil {
			return cli.Exit(fmt.Errorf("iterate '%s' contract storage: %w", ctr.name, err), 1)
		}

		d.Items = append(d.Items, cd)
	}

	out := c.App.Writer
	if path := c.String("out"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return cli.Exit(fmt.Errorf("create dump file: %w", err), 1)
		}
		defer f.Close()
		out = f
	}

	enc := yaml.NewEncoder(out)
	defer enc.Close()
	if err = enc.Encode(d); err != nil {
		return cli.Exit(fmt.Errorf("encode dump: %w", err), 1)
	}
	return nil
}

// iterateContractStorage iterates over all storage items of the Neo smart
// contract referenced by given address at the given state root and passes
// them into f. iterateContractStorage breaks on any f's error and returns it.
func iterateContractStorage(rpc *rpcclient.WSClient, root util.Uint256, contract util.Uint160, f func(key, value []byte) error) error {
	var start []byte

	for {
		res, err := rpc.FindStates(root, contract, nil, start, nil)
		if err != nil {
			return fmt.Errorf("get historical storage items of the requested contract at state root '%s': %w", root, err)
		}

		for i := range res.Results {
			err = f(res.Results[i].Key, res.Results[i].Value)
			if err != nil {
				return err
			}
		}

		if !res.Truncated || len(res.Results) == 0 {
			return nil
		}

		start = res.Results[len(res.Results)-1].Key
	}
}
