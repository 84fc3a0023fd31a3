package main

import (
	"flag"
	"fmt"
	"os"
)

const (
	modeParse   = "parse"
	modeAnalyze = "analyze"
	modeVerify  = "verify"
	modeURL     = "url"
	modeWebsite = "website"
)

type AppFlags struct {
	InputFile        string
	GlobalConfigFile string
	Mode             string
	Company          string
	Website          string
	URL              string
	MetricsOut       string
}

func ParseFlags() AppFlags {
	inputFile := flag.String("input", "", "Path to the posting text or submission JSON. Use '-' to read stdin.")
	inputFileAlias := flag.String("i", "", "Alias for -input")

	globalConfigFile := flag.String("globalconfig", "", "Path to the global YAML/JSON configuration file. If not set, searches default locations.")
	globalConfigFileAlias := flag.String("gc", "", "Alias for -globalconfig")

	modeFlag := flag.String("mode", modeAnalyze, "Mode to run: parse, analyze, verify, url or website")
	modeFlagAlias := flag.String("m", "", "Alias for -mode")

	company := flag.String("company", "", "Company name for verify and website modes")
	website := flag.String("website", "", "Company website for verify mode")
	rawURL := flag.String("url", "", "URL for url mode")
	metricsOut := flag.String("metrics-out", "", "Write Prometheus metrics in text format to this file after the run")

	flag.Parse()

	flags := AppFlags{
		Company:    *company,
		Website:    *website,
		URL:        *rawURL,
		MetricsOut: *metricsOut,
	}

	if *inputFile != "" {
		flags.InputFile = *inputFile
	} else if *inputFileAlias != "" {
		flags.InputFile = *inputFileAlias
	}

	if *globalConfigFile != "" {
		flags.GlobalConfigFile = *globalConfigFile
	} else if *globalConfigFileAlias != "" {
		flags.GlobalConfigFile = *globalConfigFileAlias
	}

	flags.Mode = *modeFlag
	if *modeFlagAlias != "" {
		flags.Mode = *modeFlagAlias
	}

	if err := flags.validate(); err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] %v\n", err)
		flag.Usage()
		os.Exit(2)
	}

	return flags
}

func (f AppFlags) validate() error {
	switch f.Mode {
	case modeParse, modeAnalyze:
		if f.InputFile == "" {
			return fmt.Errorf("-input is required in %s mode", f.Mode)
		}
	case modeVerify, modeWebsite:
		if f.Company == "" {
			return fmt.Errorf("-company is required in %s mode", f.Mode)
		}
	case modeURL:
		if f.URL == "" {
			return fmt.Errorf("-url is required in url mode")
		}
	default:
		return fmt.Errorf("unknown mode %q (parse, analyze, verify, url or website)", f.Mode)
	}
	return nil
}
