package commands

import (
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries defaults that flags may override.
type Config struct {
	Min    string
	Max    string
	Locale string
	RTL    bool
}

// LoadConfig reads defaults from a .yearpick config file (home directory or
// working directory) and YEARPICK_* environment variables. A missing config
// file is not an error.
func LoadConfig() (*Config, error) {
	viper.SetDefault("locale", "en")
	viper.SetConfigName(".yearpick") // .yaml is implicit
	viper.SetEnvPrefix("YEARPICK")
	viper.AutomaticEnv()

	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return &Config{
		Min:    viper.GetString("min"),
		Max:    viper.GetString("max"),
		Locale: viper.GetString("locale"),
		RTL:    viper.GetBool("rtl"),
	}, nil
}
