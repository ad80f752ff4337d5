package main

import (
	"bufio"
	"context"
	_ "embed" // this is required in order for go:embed to work
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/MEOFIXBUG/walrus-test-harness/framework/wtest"
	"github.com/MEOFIXBUG/walrus-test-harness/walrustests"
)

//go:embed VERSION
var versionString string // comes from the VERSION file which we update for each release

func main() {
	fmt.Printf("walrus-test-harness v%s\n", strings.TrimSpace(versionString))

	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	results, err := run(params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !results.OK() {
		os.Exit(1)
	}
}

func run(params commandParams) (*wtest.Results, error) {
	if params.skipFile != "" {
		if err := loadSuppressions(&params); err != nil {
			return nil, err
		}
	}

	cfg, err := loadTargetConfig(context.Background(), params.configFile)
	if err != nil {
		return nil, err
	}
	params.applyOverrides(&cfg)
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	wtest.PrintFilterDescription(params.filters)
	fmt.Printf("Running conformance tests against %s\n\n", cfg.addr())

	var testLogger wtest.TestLogger
	consoleLogger := wtest.ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}
	if params.jUnitFile == "" {
		testLogger = consoleLogger
	} else {
		testLogger = &wtest.MultiTestLogger{Loggers: []wtest.TestLogger{
			consoleLogger,
			wtest.NewJUnitTestLogger(params.jUnitFile, cfg.addr(), params.filters),
		}}
	}

	target := walrustests.TargetInfo{
		Addr:        cfg.addr(),
		APIKey:      cfg.APIKey,
		WrongAPIKey: cfg.WrongAPIKey,
		Timeout:     cfg.Timeout,
		Topic:       cfg.Topic,
		Value:       cfg.Value,
	}
	results := walrustests.RunWalrusTestSuite(target, params.filters, testLogger)

	fmt.Println()
	if logErr := testLogger.EndLog(results); logErr != nil {
		return nil, fmt.Errorf("error writing log: %v", logErr)
	}

	if params.recordFailures != "" {
		f, err := os.Create(params.recordFailures)
		if err != nil {
			return nil, fmt.Errorf("cannot create suppression file: %v", err)
		}
		for _, test := range results.Failures {
			fmt.Fprintln(f, test.TestID)
		}
		_ = f.Close()
	}

	return &results, nil
}

func loadSuppressions(params *commandParams) error {
	file, err := os.Open(params.skipFile)
	if err != nil {
		return fmt.Errorf("cannot open provided suppression file: %v", err)
	}
	defer func() { _ = file.Close() }()
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		// Ignore blank lines
		if strings.TrimSpace(line) == "" {
			continue
		}
		escaped := regexp.QuoteMeta(line)
		if err := params.filters.MustNotMatch.Set(escaped); err != nil {
			return fmt.Errorf("cannot parse suppression: %v", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("while processing suppression file: %v", err)
	}
	return nil
}
