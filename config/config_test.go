package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

func TestLoadExample(t *testing.T) {
	cfg, err := Load("config.example.yml")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	n, err := cfg.SelectedNetwork()
	require.NoError(t, err)
	require.Equal(t, "ws://127.0.0.1:30333/ws", n.URL)
	require.Equal(t, 5*time.Second, n.DialTimeout)
	require.Equal(t, DefaultDialTimeout, cfg.Networks["testnet"].DialTimeout)

	app, err := n.AppHash()
	require.NoError(t, err)
	require.Equal(t, "7d5fe8cd6ef6be2d4cd1ba0c49a7e35d3a9f32e4", app.StringLE())

	fees, err := cfg.ClientFees()
	require.NoError(t, err)
	require.EqualValues(t, 5000_0000, fees.SystemFee)
	require.EqualValues(t, 10_0000, fees.NetworkFee)

	require.Equal(t, 20, cfg.Oracle.Accounts)
	require.True(t, cfg.Oracle.Register)
	require.Equal(t, []int{10, 20, 30, 40, 50}, cfg.Oracle.Statuses)
	require.Equal(t, []string{"localhost:9092"}, cfg.Relay.Brokers)
	require.Equal(t, 32, cfg.Gateway.PageSize)
}

func TestDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
networks:
  only:
    url: http://localhost:30333
`))
	require.NoError(t, err)
	require.Equal(t, "only", cfg.Network)
	require.Equal(t, DefaultRelayTopic, cfg.Relay.Topic)
	require.Equal(t, DefaultGatewayAddress, cfg.Gateway.Address)
	require.Equal(t, DefaultPageSize, cfg.Gateway.PageSize)
	require.Len(t, cfg.Oracle.Statuses, 6)
	require.NoError(t, cfg.Validate())

	fees, err := cfg.ClientFees()
	require.NoError(t, err)
	require.Zero(t, fees.SystemFee)
	require.Zero(t, fees.NetworkFee)
}

func TestInvalid(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("networks: [1, 2"), 0o600))
	_, err = Load(path)
	require.Error(t, err)

	cfg, err := Parse([]byte(`
network: main
networks:
  a: {url: "http://a"}
  b: {url: "http://b"}
oracle:
  statuses: [10, 15]
`))
	require.NoError(t, err)
	_, err = cfg.SelectedNetwork()
	require.Error(t, err)
	require.Error(t, cfg.Validate())

	cfg.Oracle.Statuses = []int{20}
	cfg.Fees.SystemFee = "lots"
	require.Error(t, cfg.Validate())

	cfg.Network = ""
	_, err = cfg.SelectedNetwork()
	require.Error(t, err)
}

func TestParseHash160(t *testing.T) {
	h := util.Uint160{1, 2, 3, 4, 5}

	actual, err := ParseHash160(address.Uint160ToString(h))
	require.NoError(t, err)
	require.Equal(t, h, actual)

	actual, err = ParseHash160(h.StringLE())
	require.NoError(t, err)
	require.Equal(t, h, actual)

	actual, err = ParseHash160("0x" + h.StringLE())
	require.NoError(t, err)
	require.Equal(t, h, actual)

	_, err = ParseHash160("")
	require.Error(t, err)
	_, err = ParseHash160("not an address")
	require.Error(t, err)
}
