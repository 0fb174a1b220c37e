package common

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// SeedUser describes one user to create at demo startup.
type SeedUser struct {
	Username   string `yaml:"username"`
	Balance    string `yaml:"balance"`
	CreditCard string `yaml:"credit_card"`
}

type seedConfig struct {
	Users []SeedUser `yaml:"users"`
}

// LoadSeedUsers reads the YAML seed file and validates every entry.
func LoadSeedUsers(seedFile string) ([]SeedUser, error) {
	var seedPath string
	if filepath.IsAbs(seedFile) {
		seedPath = seedFile
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		seedPath = filepath.Join(wd, seedFile)
	}

	data, err := os.ReadFile(seedPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", seedFile, err)
	}

	var config seedConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", seedFile, err)
	}

	for i, user := range config.Users {
		if user.Username == "" {
			return nil, fmt.Errorf("user at index %d missing username", i)
		}
		if user.Balance == "" {
			return nil, fmt.Errorf("user at index %d missing balance", i)
		}
		if user.CreditCard == "" {
			return nil, fmt.Errorf("user at index %d missing credit_card", i)
		}
	}

	return config.Users, nil
}
