package config

// Config carries challenge inputs and output settings. Every field falls
// back to the embedded challenge literals in Default.
type Config struct {
	AESCBC struct {
		Key        string `yaml:"key"`
		IV         string `yaml:"iv"`
		Ciphertext string `yaml:"ciphertext"`
		Unpad      bool   `yaml:"unpad"`
		Format     string `yaml:"format"`
	} `yaml:"aescbc"`

	XOR struct {
		FlagKey string `yaml:"flagKey"`
		Flag    string `yaml:"flag"`
		Filler  string `yaml:"filler"`
	} `yaml:"xor"`

	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`

	Report struct {
		JSON string `yaml:"json"`
		HTML string `yaml:"html"`
		PDF  string `yaml:"pdf"`
	} `yaml:"report"`
}
