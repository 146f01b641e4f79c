package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/flightsurety/flightsurety-contract/common"
	"github.com/flightsurety/flightsurety-contract/config"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/stretchr/testify/require"
)

func TestApp(t *testing.T) {
	app := newApp()

	for _, name := range []string{
		"deploy", "operational", "airline", "flight", "book", "credit",
		"withdraw", "oracle", "gateway", "relay", "dump",
	} {
		require.NotNil(t, app.Command(name), name)
	}

	var out bytes.Buffer
	app.Writer = &out
	require.NoError(t, app.Run([]string{"flightsurety", "--help"}))
	require.Contains(t, out.String(), "flightsurety")
}

func TestStatusName(t *testing.T) {
	require.Equal(t, "on time", statusName(common.StatusOnTime))
	require.Equal(t, "late (airline)", statusName(common.StatusLateAirline))
	require.Equal(t, "invalid (25)", statusName(25))
}

func TestOpenAccounts(t *testing.T) {
	const password = "one"

	path := filepath.Join(t.TempDir(), "wallet.json")
	w, err := wallet.NewWallet(path)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, w.CreateAccount("oracle", password))
	}
	require.NoError(t, w.Save())
	w.Close()

	t.Run("first n", func(t *testing.T) {
		accs, err := openAccounts(config.Wallet{Path: path, Password: password}, 2)
		require.NoError(t, err)
		require.Len(t, accs, 2)
		for _, acc := range accs {
			require.True(t, acc.CanSign())
		}
	})
	t.Run("all", func(t *testing.T) {
		accs, err := openAccounts(config.Wallet{Path: path, Password: password}, 0)
		require.NoError(t, err)
		require.Len(t, accs, 3)
	})
	t.Run("by address", func(t *testing.T) {
		addr := w.Accounts[1].Address

		accs, err := openAccounts(config.Wallet{Path: path, Address: addr, Password: password}, 0)
		require.NoError(t, err)
		require.Len(t, accs, 1)
		require.Equal(t, addr, accs[0].Address)
	})
	t.Run("unknown address", func(t *testing.T) {
		_, err := openAccounts(config.Wallet{
			Path:     path,
			Address:  "NbrUYaZgyhSkNoRo9ugRyEMdUZxrhkNaWB",
			Password: password,
		}, 0)
		require.Error(t, err)
	})
	t.Run("wrong password", func(t *testing.T) {
		_, err := openAccounts(config.Wallet{Path: path, Password: "two"}, 1)
		require.Error(t, err)
	})
	t.Run("missing path", func(t *testing.T) {
		_, err := openAccounts(config.Wallet{}, 1)
		require.Error(t, err)
	})
}
