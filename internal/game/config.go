package game

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the table configuration, loaded from HCL.
type Config struct {
	Game   GameSettings  `hcl:"game,block"`
	Stakes []StakeConfig `hcl:"stake,block"`
}

// GameSettings contains game-level configuration.
type GameSettings struct {
	LogFile     string `hcl:"log_file,optional"`
	SummaryFile string `hcl:"summary_file,optional"` // session summary written at game end
	Seats       int    `hcl:"seats,optional"`
	Seed        int64  `hcl:"seed,optional"`
	DealerBank  int    `hcl:"dealer_bank,optional"` // 0 means the house has unlimited funds
	PaceMs      int    `hcl:"pace_ms,optional"`     // delay between dealer draws
}

// StakeConfig defines one thing the table can be played for.
type StakeConfig struct {
	Name     string `hcl:"name,label"`
	Singular string `hcl:"singular"`
	Plural   string `hcl:"plural,optional"`
	BuyIn    int    `hcl:"buy_in"`
}

// DefaultConfig returns the built-in table: the classic four stakes with
// their traditional buy-ins.
func DefaultConfig() *Config {
	return &Config{
		Game: GameSettings{
			LogFile: "blackjack.log",
			Seats:   1,
			PaceMs:  600,
		},
		Stakes: []StakeConfig{
			{Name: "dollars", Singular: "dollar", Plural: "dollars", BuyIn: 100},
			{Name: "cigarettes", Singular: "cigarette", Plural: "cigarettes", BuyIn: 20},
			{Name: "chips", Singular: "chip", Plural: "chips", BuyIn: 50},
			{Name: "clothing", Singular: "piece of clothing", Plural: "pieces of clothing", BuyIn: 10},
		},
	}
}

// LoadConfig loads configuration from an HCL file, falling back to the
// defaults when the file does not exist.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if config.Game.LogFile == "" {
		config.Game.LogFile = "blackjack.log"
	}
	if config.Game.Seats == 0 {
		config.Game.Seats = 1
	}
	for i := range config.Stakes {
		if config.Stakes[i].Plural == "" {
			config.Stakes[i].Plural = config.Stakes[i].Singular + "s"
		}
	}
	if len(config.Stakes) == 0 {
		config.Stakes = DefaultConfig().Stakes
	}

	return &config, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Game.Seats < 1 {
		return fmt.Errorf("seats must be at least 1, got %d", c.Game.Seats)
	}
	if c.Game.DealerBank < 0 {
		return fmt.Errorf("dealer_bank cannot be negative")
	}
	if c.Game.PaceMs < 0 {
		return fmt.Errorf("pace_ms cannot be negative")
	}
	if len(c.Stakes) == 0 {
		return fmt.Errorf("at least one stake must be configured")
	}

	seen := make(map[string]bool)
	for _, s := range c.Stakes {
		if s.Name == "" {
			return fmt.Errorf("stake name cannot be empty")
		}
		if seen[s.Name] {
			return fmt.Errorf("stake %s: duplicate name", s.Name)
		}
		seen[s.Name] = true
		if s.Singular == "" {
			return fmt.Errorf("stake %s: singular form is required", s.Name)
		}
		if s.BuyIn <= 0 {
			return fmt.Errorf("stake %s: buy-in must be positive", s.Name)
		}
	}
	return nil
}
