package secretpack

import "github.com/spf13/viper"

// newViper isolates the one Gitleaks-specific viper wiring detail (TOML
// config type) so secretpack.go reads as pure pack-assembly logic.
func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	return v
}
