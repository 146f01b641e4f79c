// Package config contains configuration of FlightSurety off-chain services.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/flightsurety/flightsurety-contract/client"
	"github.com/flightsurety/flightsurety-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"gopkg.in/yaml.v3"
)

// Default values applied to empty fields after load.
const (
	DefaultDialTimeout    = 10 * time.Second
	DefaultRelayTopic     = "flightsurety-events"
	DefaultGatewayAddress = ":8080"
	DefaultPageSize       = 64
)

// Config is the root of the configuration file.
type Config struct {
	// Network selects one of Networks. Can be omitted if there is only one.
	Network  string             `yaml:"network"`
	Networks map[string]Network `yaml:"networks"`
	Fees     Fees               `yaml:"fees"`
	Wallet   Wallet             `yaml:"wallet"`
	Oracle   Oracle             `yaml:"oracle"`
	Relay    Relay              `yaml:"relay"`
	Gateway  Gateway            `yaml:"gateway"`
}

// Network describes an RPC endpoint and deployed contracts.
type Network struct {
	URL         string        `yaml:"url"`
	DialTimeout time.Duration `yaml:"dial_timeout"`
	// App and Data are contract addresses, either Neo addresses or
	// little-endian hex strings.
	App  string `yaml:"app"`
	Data string `yaml:"data"`
}

// Fees are fixed fees in decimal GAS.
type Fees struct {
	// SystemFee is the GAS limit of each transaction.
	SystemFee string `yaml:"system_fee"`
	// NetworkFee is the priority fee added to each transaction.
	NetworkFee string `yaml:"network_fee"`
}

// Wallet describes the active account.
type Wallet struct {
	Path     string `yaml:"path"`
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
}

// Oracle configures the oracle server.
type Oracle struct {
	// Wallet holds oracle accounts, all of them are used if Accounts is zero.
	Wallet   Wallet `yaml:"wallet"`
	Accounts int    `yaml:"accounts"`
	// Register makes the server register unknown oracle accounts on start.
	Register bool `yaml:"register"`
	// Statuses are the flight status codes reported by the server. A random
	// one is picked per request.
	Statuses []int `yaml:"statuses"`
}

// Relay configures the Kafka event relay.
type Relay struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

// Gateway configures the HTTP gateway.
type Gateway struct {
	Address  string `yaml:"address"`
	PageSize int    `yaml:"page_size"`
}

// Load reads the configuration file and applies defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML configuration and applies defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.setDefaults()
	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Network == "" && len(c.Networks) == 1 {
		for name := range c.Networks {
			c.Network = name
		}
	}
	for name, n := range c.Networks {
		if n.DialTimeout <= 0 {
			n.DialTimeout = DefaultDialTimeout
		}
		c.Networks[name] = n
	}
	if c.Fees.SystemFee == "" {
		c.Fees.SystemFee = "0"
	}
	if c.Fees.NetworkFee == "" {
		c.Fees.NetworkFee = "0"
	}
	if len(c.Oracle.Statuses) == 0 {
		c.Oracle.Statuses = []int{
			common.StatusUnknown,
			common.StatusOnTime,
			common.StatusLateAirline,
			common.StatusLateWeather,
			common.StatusLateTechnical,
			common.StatusLateOther,
		}
	}
	if c.Relay.Topic == "" {
		c.Relay.Topic = DefaultRelayTopic
	}
	if c.Gateway.Address == "" {
		c.Gateway.Address = DefaultGatewayAddress
	}
	if c.Gateway.PageSize <= 0 {
		c.Gateway.PageSize = DefaultPageSize
	}
}

// SelectedNetwork returns the network chosen by the Network field.
func (c *Config) SelectedNetwork() (Network, error) {
	if c.Network == "" {
		return Network{}, errors.New("network is not selected")
	}
	n, ok := c.Networks[c.Network]
	if !ok {
		return Network{}, fmt.Errorf("unknown network %q", c.Network)
	}
	if n.URL == "" {
		return Network{}, fmt.Errorf("network %q: missing RPC URL", c.Network)
	}
	return n, nil
}

// ClientFees converts configured fees to base units.
func (c *Config) ClientFees() (client.Fees, error) {
	sys, err := client.ParseGAS(c.Fees.SystemFee)
	if err != nil {
		return client.Fees{}, fmt.Errorf("system fee: %w", err)
	}
	nwk, err := client.ParseGAS(c.Fees.NetworkFee)
	if err != nil {
		return client.Fees{}, fmt.Errorf("network fee: %w", err)
	}
	return client.Fees{SystemFee: sys.Int64(), NetworkFee: nwk.Int64()}, nil
}

// Validate checks that oracle statuses are known codes.
func (c *Config) Validate() error {
	for _, s := range c.Oracle.Statuses {
		if !common.IsValidStatus(s) {
			return fmt.Errorf("oracle: invalid status code %d", s)
		}
	}
	if len(c.Relay.Brokers) > 0 && c.Relay.Topic == "" {
		return errors.New("relay: missing topic")
	}
	_, err := c.ClientFees()
	return err
}

// AppHash returns the App contract address.
func (n Network) AppHash() (util.Uint160, error) {
	return ParseHash160(n.App)
}

// DataHash returns the Data contract address.
func (n Network) DataHash() (util.Uint160, error) {
	return ParseHash160(n.Data)
}

// ParseHash160 parses a Neo address or a little-endian hex script hash with
// an optional 0x prefix.
func ParseHash160(s string) (util.Uint160, error) {
	if s == "" {
		return util.Uint160{}, errors.New("empty address")
	}
	if u, err := address.StringToUint160(s); err == nil {
		return u, nil
	}
	u, err := util.Uint160DecodeStringLE(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return util.Uint160{}, fmt.Errorf("invalid address %q", s)
	}
	return u, nil
}
