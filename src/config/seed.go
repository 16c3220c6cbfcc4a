package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SeedAccount is one admin credential from the seed file. Passwords are
// hashed before they reach the store; the file itself holds plaintext and
// should be treated like any other secret.
type SeedAccount struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type seedFile struct {
	Admins []SeedAccount `yaml:"admins"`
}

// LoadSeedFile parses a YAML admin seed file:
//
//	admins:
//	  - username: alice
//	    password: s3cret
func LoadSeedFile(path string) ([]SeedAccount, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var sf seedFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	for i, acc := range sf.Admins {
		if acc.Username == "" || acc.Password == "" {
			return nil, fmt.Errorf("seed file entry %d: username and password are required", i)
		}
	}

	return sf.Admins, nil
}
