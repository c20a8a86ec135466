package config

import "time"

// Duration lets poll intervals be written as "100ms" or "1s" in yaml.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

type Config struct {
	Address  string   `yaml:"address,omitempty"`
	Poll     Duration `yaml:"poll,omitempty"`
	Mirror   bool     `yaml:"mirror,omitempty"`
	LogLevel string   `yaml:"logLevel,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Address:  "any",
		Poll:     Duration(100 * time.Millisecond),
		LogLevel: "info",
	}
}
