// Package config loads the account-mapping configuration: which ledger
// account each fixed broker role (cash, positions, dividend income, ...)
// posts to.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ledgerimport-dev/ledgerimport/internal/ledger"
)

// Mapping resolves the broker's fixed logical roles to ledger accounts.
// Only Cash, Positions and Dividend drive posting synthesis; the rest are
// accepted for caller-side filing and forward compatibility.
type Mapping struct {
	File       ledger.Account `yaml:"file"`
	Cash       ledger.Account `yaml:"cash"`
	Positions  ledger.Account `yaml:"positions"`
	Fees       ledger.Account `yaml:"fees"`
	Commission ledger.Account `yaml:"commission"`
	Interest   ledger.Account `yaml:"interest"`
	Dividend   ledger.Account `yaml:"dividend"`
	Transfer   ledger.Account `yaml:"transfer"`
}

// Load reads a mapping YAML file from disk and validates it.
func Load(path string) (*Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading account mapping: %w", err)
	}
	var m Mapping
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing account mapping: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("account mapping %s: %w", path, err)
	}
	return &m, nil
}

// Save writes a Mapping to a YAML file.
func Save(path string, m *Mapping) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling account mapping: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing account mapping: %w", err)
	}
	return nil
}

// Validate checks that the roles synthesis reads are present, plus the
// filing account.
func (m *Mapping) Validate() error {
	var missing []string
	for _, role := range []struct {
		name    string
		account ledger.Account
	}{
		{"file", m.File},
		{"cash", m.Cash},
		{"positions", m.Positions},
		{"dividend", m.Dividend},
	} {
		if role.account == "" {
			missing = append(missing, role.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required roles: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Default returns a Mapping with example account names for a new setup.
func Default() *Mapping {
	return &Mapping{
		File:       "Assets:Investments:RBC",
		Cash:       "Assets:Investments:RBC:Cash",
		Positions:  "Assets:Investments:RBC:Positions",
		Fees:       "Expenses:Financial:Fees",
		Commission: "Expenses:Financial:Commissions",
		Interest:   "Income:Investments:Interest",
		Dividend:   "Income:Investments:Dividends",
		Transfer:   "Assets:Transfers",
	}
}
