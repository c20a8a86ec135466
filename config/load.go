package config

import (
	"flag"
	"io/ioutil"
	"os"
	"path"

	"gopkg.in/yaml.v2"

	"github.com/velledaq/k8055/utils"
)

var configPath string

func init() {
	flag.StringVar(&configPath, "config", "", "specify config file")
}

// Path returns the config file location: the -config flag if given,
// otherwise config.yaml under the application home folder.
func Path() string {
	if configPath != "" {
		return configPath
	}
	return path.Join(utils.GetHomeFolder(), "config.yaml")
}

// LoadConfig reads the config file at Path. A missing file is not an
// error; defaults are returned so the monitor runs unconfigured.
func LoadConfig() (*Config, error) {
	c := DefaultConfig()
	data, err := ioutil.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, err
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}
	return c, nil
}
