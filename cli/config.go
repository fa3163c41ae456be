package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// configFile is looked up in the working directory; flags win over it.
const configFile = ".sscript.yaml"

type shellConfig struct {
	Verbose int      `yaml:"verbose"`
	Preload []string `yaml:"preload"`
}

func loadShellConfig() shellConfig {
	var cfg shellConfig
	data, err := os.ReadFile(configFile)
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logrus.WithError(err).Warnf("ignoring malformed %s", configFile)
		return shellConfig{}
	}
	return cfg
}
