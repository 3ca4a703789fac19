package fcmp

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	DefaultGenerators = 256
)

type Config struct {
	Generators int  // vector generators precomputed at init
	Debug      bool // log lifecycle and rejections to stderr
}

func DefaultConfig() Config {
	return Config{Generators: DefaultGenerators}
}

// LoadConfig reads FCMP_GENERATORS and FCMP_DEBUG from the environment, and
// the YAML file named by FCMP_CONFIG when it is set. Environment values win.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FCMP")
	v.AutomaticEnv()
	v.SetDefault("generators", DefaultGenerators)
	v.SetDefault("debug", false)

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%w: config file %s: %v", ErrInvalidParam, path, err)
		}
	}

	cfg := Config{
		Generators: v.GetInt("generators"),
		Debug:      v.GetBool("debug"),
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Generators < LeafLayerWidth || c.Generators > MaxLayerElements {
		return fmt.Errorf("%w: generators %d outside [%d, %d]", ErrInvalidParam, c.Generators, LeafLayerWidth, MaxLayerElements)
	}
	return nil
}
