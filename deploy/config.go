package deploy

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Byzantine-Finance/predeposit-contract-ethereum/contracts/ledger/ledgerconst"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"gopkg.in/yaml.v3"
)

// Errors returned by configuration validation.
var (
	ErrMissingUnpauser = errors.New("missing unpauser")
	ErrMissingAsset    = errors.New("missing rebasing or wrapped asset")
	ErrSameAssets      = errors.New("rebasing and wrapped assets must differ")
	ErrUnknownGate     = errors.New("unknown pause gate")
	ErrInvalidAddress  = errors.New("invalid address")
)

// Config is a YAML representation of the deployment settings. Addresses are
// either Neo addresses (N...) or 0x-prefixed script hashes in LE.
type Config struct {
	Registry struct {
		Unpauser string   `yaml:"unpauser"`
		Pausers  []string `yaml:"pausers"`
	} `yaml:"registry"`

	Ledger struct {
		Owner          string   `yaml:"owner"`
		Rebasing       string   `yaml:"rebasing"`
		Wrapped        string   `yaml:"wrapped"`
		Paused         []int    `yaml:"paused"`
		Permissionless bool     `yaml:"permissionless"`
		Depositors     []string `yaml:"depositors"`
		DepositTokens  []string `yaml:"deposit_tokens"`
		Vaults         []string `yaml:"vaults"`
	} `yaml:"ledger"`
}

// Settings groups validated deployment settings of both contracts.
type Settings struct {
	Unpauser util.Uint160
	Pausers  []util.Uint160

	// Owner of the Ledger. Zero value means the deploying account keeps the
	// ownership.
	Owner    util.Uint160
	Rebasing util.Uint160
	Wrapped  util.Uint160
	Paused   []int

	Permissionless bool
	Depositors     []util.Uint160
	DepositTokens  []util.Uint160
	Vaults         []util.Uint160
}

// LoadConfig reads YAML configuration file and converts it into Settings.
func LoadConfig(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read config file: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig decodes YAML configuration and converts it into Settings.
func ParseConfig(data []byte) (Settings, error) {
	var cfg Config

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return Settings{}, fmt.Errorf("decode YAML: %w", err)
	}

	return cfg.Settings()
}

// Settings validates the configuration and converts it into Settings.
func (c Config) Settings() (Settings, error) {
	var (
		s   Settings
		err error
	)

	if c.Registry.Unpauser == "" {
		return s, ErrMissingUnpauser
	}

	s.Unpauser, err = ParseAddress(c.Registry.Unpauser)
	if err != nil {
		return s, fmt.Errorf("unpauser: %w", err)
	}

	s.Pausers, err = parseAddresses(c.Registry.Pausers)
	if err != nil {
		return s, fmt.Errorf("pausers: %w", err)
	}

	if c.Ledger.Owner != "" {
		s.Owner, err = ParseAddress(c.Ledger.Owner)
		if err != nil {
			return s, fmt.Errorf("owner: %w", err)
		}
	}

	if c.Ledger.Rebasing == "" || c.Ledger.Wrapped == "" {
		return s, ErrMissingAsset
	}

	s.Rebasing, err = ParseAddress(c.Ledger.Rebasing)
	if err != nil {
		return s, fmt.Errorf("rebasing asset: %w", err)
	}

	s.Wrapped, err = ParseAddress(c.Ledger.Wrapped)
	if err != nil {
		return s, fmt.Errorf("wrapped asset: %w", err)
	}

	if s.Rebasing.Equals(s.Wrapped) {
		return s, ErrSameAssets
	}

	for _, gate := range c.Ledger.Paused {
		if gate < 0 || gate >= ledgerconst.GatesCount {
			return s, fmt.Errorf("%w: %d", ErrUnknownGate, gate)
		}
	}
	s.Paused = c.Ledger.Paused

	s.Permissionless = c.Ledger.Permissionless

	s.Depositors, err = parseAddresses(c.Ledger.Depositors)
	if err != nil {
		return s, fmt.Errorf("depositors: %w", err)
	}

	s.DepositTokens, err = parseAddresses(c.Ledger.DepositTokens)
	if err != nil {
		return s, fmt.Errorf("deposit tokens: %w", err)
	}

	s.Vaults, err = parseAddresses(c.Ledger.Vaults)
	if err != nil {
		return s, fmt.Errorf("vaults: %w", err)
	}

	return s, nil
}

func parseAddresses(list []string) ([]util.Uint160, error) {
	res := make([]util.Uint160, 0, len(list))

	for i := range list {
		h, err := ParseAddress(list[i])
		if err != nil {
			return nil, fmt.Errorf("item #%d: %w", i, err)
		}

		res = append(res, h)
	}

	return res, nil
}

// ParseAddress decodes Neo address or 0x-prefixed LE script hash. Zero hash
// is rejected.
func ParseAddress(s string) (util.Uint160, error) {
	var (
		h   util.Uint160
		err error
	)

	if hexStr, ok := strings.CutPrefix(s, "0x"); ok {
		h, err = util.Uint160DecodeStringLE(hexStr)
	} else {
		h, err = address.StringToUint160(s)
	}

	if err != nil {
		return h, fmt.Errorf("%w %q: %v", ErrInvalidAddress, s, err)
	}

	if h.Equals(util.Uint160{}) {
		return h, fmt.Errorf("%w: zero hash", ErrInvalidAddress)
	}

	return h, nil
}
