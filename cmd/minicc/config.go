package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"minicc/internal"
)

// config carries the driver settings, resolved from the environment plus an
// optional minicc.yaml in the working directory.
type config struct {
	reports internal.Reports
}

type configFile struct {
	Reports struct {
		Tokens  *bool `yaml:"tokens"`
		Symbols *bool `yaml:"symbols"`
		Tac     *bool `yaml:"tac"`
	} `yaml:"reports"`
}

func loadConfig() (*config, error) {
	// A missing .env is fine, the process environment still applies
	_ = godotenv.Load()

	if lvl := os.Getenv("MINICC_LOG_LEVEL"); lvl != "" {
		parsed, err := logrus.ParseLevel(lvl)
		if err != nil {
			return nil, err
		}
		internal.SetLogLevel(parsed)
	}

	if os.Getenv("MINICC_NO_COLOR") != "" {
		color.Disable()
	}

	cfg := &config{reports: internal.AllReports()}

	path := os.Getenv("MINICC_CONFIG")
	if path == "" {
		path = "minicc.yaml"
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	var f configFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, err
	}
	if f.Reports.Tokens != nil {
		cfg.reports.Tokens = *f.Reports.Tokens
	}
	if f.Reports.Symbols != nil {
		cfg.reports.Symbols = *f.Reports.Symbols
	}
	if f.Reports.Tac != nil {
		cfg.reports.Tac = *f.Reports.Tac
	}
	return cfg, nil
}
