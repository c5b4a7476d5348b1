package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/raktsetu/bloodbank-cli/pkg/core/model"
)

const configFileName = "bloodbank_config.yaml"

// InventorySeed holds a blood group's starting stock counters
type InventorySeed struct {
	Total     int `yaml:"total" validate:"min=0"`
	Available int `yaml:"available" validate:"min=0"`
}

// Config represents the application configuration
type Config struct {
	Location      string                   `yaml:"location" validate:"required"`
	DonationDays  string                   `yaml:"donationDays" validate:"required"`
	SlotTimes     []string                 `yaml:"slotTimes" validate:"required,min=1,dive,required"`
	InventorySeed map[string]InventorySeed `yaml:"inventorySeed,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Default returns the built-in configuration used when no config file exists
func Default() *Config {
	return &Config{
		Location:     "AIIMS Blood Bank, Delhi",
		DonationDays: "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR,SA",
		SlotTimes:    []string{"10:30 AM", "02:00 PM", "04:30 PM"},
		InventorySeed: map[string]InventorySeed{
			"O+":  {Total: 45, Available: 38},
			"O-":  {Total: 12, Available: 8},
			"A+":  {Total: 30, Available: 25},
			"A-":  {Total: 10, Available: 6},
			"B+":  {Total: 28, Available: 22},
			"B-":  {Total: 8, Available: 4},
			"AB+": {Total: 15, Available: 12},
			"AB-": {Total: 5, Available: 2},
		},
	}
}

// Load loads and validates the configuration from bloodbank_config.yaml,
// looking in the current directory first, then the user's home directory.
// When no file exists it falls back to the built-in defaults.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return Default(), nil
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct, the donation-day rrule
// syntax, and the inventory seed counters.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if _, err := rrule.StrToRRule(cfg.DonationDays); err != nil {
		return fmt.Errorf("invalid donationDays rule: %w", err)
	}

	for group, seed := range cfg.InventorySeed {
		if !model.BloodGroup(group).IsValid() {
			return fmt.Errorf("inventorySeed: unknown blood group %q", group)
		}
		if seed.Available > seed.Total {
			return fmt.Errorf("inventorySeed[%s]: available (%d) exceeds total (%d)", group, seed.Available, seed.Total)
		}
	}

	return nil
}

// Inventory converts the configured seed into ledger inventory counters
func (c *Config) Inventory() model.Inventory {
	inv := make(model.Inventory, len(c.InventorySeed))
	for group, seed := range c.InventorySeed {
		inv[model.BloodGroup(group)] = model.InventoryItem{
			Total:     seed.Total,
			Available: seed.Available,
		}
	}
	return inv
}

// findConfigFile searches for bloodbank_config.yaml in the current directory
// and the home directory
func findConfigFile() (string, error) {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
