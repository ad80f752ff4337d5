package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MEOFIXBUG/walrus-test-harness/framework/wtest"
)

type commandParams struct {
	host           string
	port           int
	apiKey         string
	wrongAPIKey    string
	topic          string
	value          string
	timeout        time.Duration
	configFile     string
	filters        wtest.RegexFilters
	debug          bool
	debugAll       bool
	jUnitFile      string
	skipFile       string
	recordFailures string
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.host, "host", "", "target host (default: config file, WALRUS_TARGET_HOST, or 127.0.0.1)")
	fs.IntVar(&c.port, "port", 0, "target port (default: config file, WALRUS_TARGET_PORT, or 9091)")
	fs.StringVar(&c.apiKey, "key", "", "API key the target was configured with")
	fs.StringVar(&c.wrongAPIKey, "wrong-key", "", "a key the target must reject")
	fs.StringVar(&c.topic, "topic", "", "topic name used by the data-plane scenarios")
	fs.StringVar(&c.value, "value", "", "value written and read back by the data-plane scenarios")
	fs.DurationVar(&c.timeout, "timeout", 0, "connect and per-frame I/O timeout")
	fs.StringVar(&c.configFile, "config", "", "path to a YAML configuration file")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.StringVar(&c.skipFile, "skip-from", "", "file containing names of tests to skip")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")
	fs.StringVar(&c.jUnitFile, "junit", "", "write JUnit XML output to the specified path")
	fs.StringVar(&c.recordFailures, "record-failures", "", "write names of failed tests to the specified path")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	return true
}

// applyOverrides layers the explicitly-set flags on top of whatever the config
// file and environment produced.
func (c commandParams) applyOverrides(cfg *targetConfig) {
	if c.host != "" {
		cfg.Host = c.host
	}
	if c.port != 0 {
		cfg.Port = c.port
	}
	if c.apiKey != "" {
		cfg.APIKey = c.apiKey
	}
	if c.wrongAPIKey != "" {
		cfg.WrongAPIKey = c.wrongAPIKey
	}
	if c.topic != "" {
		cfg.Topic = c.topic
	}
	if c.value != "" {
		cfg.Value = c.value
	}
	if c.timeout != 0 {
		cfg.Timeout = c.timeout
	}
}
