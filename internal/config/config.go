package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"jctf-crypto/pkg/logx"
)

// Inputs of the "hidden in plain sight" AES-CBC challenge.
const (
	DefaultAESKey        = "QE1jUWZUalduWnI0dTd4IUElRCpHLUphTmRSZ1VrWHA="
	DefaultAESIV         = "zTnn5Yv9aHjVIhHX2BetXQ=="
	DefaultAESCiphertext = "nbXg75/acDR47Zgtho29ZVnHqFb7Ikca2SNCWj9SNNe1M+J22JxBrg94feT3anuIx2dQusjf1HJ4fRamU2xGUmHL/Sctgx0ZOsSbIyuksblsjNPmajhzTpljIY0ztR/f6LH5Iq6XJ3MjpTnp4wNg4ODQXfgjyc+UPfk91le4/zIFyAMISCskjw1OYGAOHoS5"
)

// Inputs of the "xoracle" challenge. The filler is a run of 'a' as long as
// the flag's hex text.
const (
	DefaultXORFlagKey = "e1a2014cf2a94c4f2d75e2baa14f995d60dc6b9e161bd11ecf24bad183b80e968a267c3a823e"
	DefaultXORFlag    = "6a6374667b315f746830553968545f31745f7734355f3533437572655f61303762386130317d"
)

var DefaultXORFiller = strings.Repeat("a", len(DefaultXORFlag))

// Output formats accepted for decrypted plaintext.
const (
	FormatRaw    = "raw"
	FormatHex    = "hex"
	FormatQuoted = "quoted"
)

// Default returns the embedded challenge inputs.
func Default() *Config {
	c := &Config{}
	applyDefaults(c)
	return c
}

// LoadConfig loads the configuration from the specified YAML file. Fields
// left empty keep their defaults.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %v", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %v", err)
	}

	applyDefaults(config)
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("config validation error: %v", err)
	}
	return config, nil
}

func applyDefaults(c *Config) {
	if c.AESCBC.Key == "" { c.AESCBC.Key = DefaultAESKey }
	if c.AESCBC.IV == "" { c.AESCBC.IV = DefaultAESIV }
	if c.AESCBC.Ciphertext == "" { c.AESCBC.Ciphertext = DefaultAESCiphertext }
	if c.AESCBC.Format == "" { c.AESCBC.Format = FormatRaw }
	if c.XOR.FlagKey == "" { c.XOR.FlagKey = DefaultXORFlagKey }
	if c.XOR.Flag == "" { c.XOR.Flag = DefaultXORFlag }
	if c.XOR.Filler == "" { c.XOR.Filler = DefaultXORFiller }
	if c.Logging.Level == "" { c.Logging.Level = "info" }
}

func validateConfig(c *Config) error {
	if !logx.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("unsupported log level: %s", c.Logging.Level)
	}
	return ValidateFormat(c.AESCBC.Format)
}

// ValidateFormat rejects unknown plaintext output formats.
func ValidateFormat(f string) error {
	switch f {
	case FormatRaw, FormatHex, FormatQuoted:
		return nil
	}
	return fmt.Errorf("unsupported format: %s", f)
}
