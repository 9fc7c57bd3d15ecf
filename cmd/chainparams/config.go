// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2020 The funexd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btclog"
	flags "github.com/jessevdk/go-flags"

	"github.com/funexcoin/funexd/chaincfg"
)

const (
	defaultLogLevel    = "info"
	defaultLogDirname  = "logs"
	defaultLogFilename = "chainparams.log"
)

var (
	defaultHomeDir = btcutil.AppDataDir("funexd", false)
	defaultLogDir  = filepath.Join(defaultHomeDir, defaultLogDirname)
)

// errHelp is returned by loadConfig when it printed the requested help and
// the program should exit without error.
var errHelp = errors.New("help requested")

// config defines the configuration options for chainparams.
//
// See loadConfig for details on the configuration load process.
type config struct {
	TestNet    bool   `long:"testnet" description:"Use the test network"`
	RegTest    bool   `long:"regtest" description:"Use the regression test network"`
	UnitTest   bool   `long:"unittest" description:"Use the unit test network"`
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	LogDir     string `long:"logdir" description:"Directory to log output"`
	Dump       bool   `long:"dump" description:"Dump every parameter of the selected network"`
}

// network returns the network selected by the flags.  The main network is
// used when none is given.
func (cfg *config) network() chaincfg.NetworkID {
	switch {
	case cfg.TestNet:
		return chaincfg.TestNet
	case cfg.RegTest:
		return chaincfg.RegTest
	case cfg.UnitTest:
		return chaincfg.UnitTest
	}
	return chaincfg.MainNet
}

// validLogLevel returns whether or not logLevel is a valid debug log level.
func validLogLevel(logLevel string) bool {
	_, ok := btclog.LevelFromString(logLevel)
	return ok
}

// supportedSubsystems returns a sorted slice of the supported subsystems for
// logging purposes.
func supportedSubsystems() []string {
	subsystems := make([]string, 0, len(subsystemLoggers))
	for subsysID := range subsystemLoggers {
		subsystems = append(subsystems, subsysID)
	}
	sort.Strings(subsystems)
	return subsystems
}

// parseAndSetDebugLevels attempts to parse the specified debug level and set
// the levels accordingly.  An appropriate error is returned if anything is
// invalid.
func parseAndSetDebugLevels(debugLevel string) error {
	// When the specified string doesn't have any delimiters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(debugLevel, ",") &&
		!strings.Contains(debugLevel, "=") {
		if !validLogLevel(debugLevel) {
			return fmt.Errorf("the specified debug level [%v] is invalid",
				debugLevel)
		}
		setLogLevels(debugLevel)
		return nil
	}

	// Split the specified string into subsystem/level pairs while detecting
	// issues and update the log levels accordingly.
	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		fields := strings.Split(logLevelPair, "=")
		if len(fields) != 2 {
			return fmt.Errorf("the specified debug level contains an "+
				"invalid subsystem/level pair [%v]", logLevelPair)
		}

		subsysID, logLevel := fields[0], fields[1]
		if _, exists := subsystemLoggers[subsysID]; !exists {
			return fmt.Errorf("the specified subsystem [%v] is invalid "+
				"-- supported subsystems %v", subsysID,
				supportedSubsystems())
		}
		if !validLogLevel(logLevel) {
			return fmt.Errorf("the specified debug level [%v] is invalid",
				logLevel)
		}
		setLogLevel(subsysID, logLevel)
	}

	return nil
}

// loadConfig parses args into a config and applies the logging options.
//
// It returns errHelp after printing usage when -h is given, and an error
// that has already been printed with usage for invalid options.
func loadConfig(args []string) (*config, error) {
	cfg := config{
		DebugLevel: defaultLogLevel,
		LogDir:     defaultLogDir,
	}

	parser := flags.NewParser(&cfg, flags.HelpFlag)
	remaining, err := parser.ParseArgs(args)
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			return nil, errHelp
		}
		return nil, usageError(parser, err)
	}
	if len(remaining) > 0 {
		return nil, usageError(parser, fmt.Errorf("unexpected "+
			"arguments %v", remaining))
	}

	numNets := 0
	for _, set := range []bool{cfg.TestNet, cfg.RegTest, cfg.UnitTest} {
		if set {
			numNets++
		}
	}
	if numNets > 1 {
		return nil, usageError(parser, errors.New("the testnet, regtest "+
			"and unittest params can't be used together -- choose "+
			"one of the three"))
	}

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", supportedSubsystems())
		return nil, errHelp
	}

	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		return nil, usageError(parser, err)
	}

	if cfg.LogDir != "" {
		cfg.LogDir = cleanAndExpandPath(cfg.LogDir)
		logFile := filepath.Join(cfg.LogDir, defaultLogFilename)
		if err := initLogRotator(logFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return nil, err
		}
	}

	return &cfg, nil
}

// usageError prints err followed by the usage message and returns err.
func usageError(parser *flags.Parser, err error) error {
	fmt.Fprintln(os.Stderr, err)
	parser.WriteHelp(os.Stderr)
	return err
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir := filepath.Dir(defaultHomeDir)
		path = filepath.Join(homeDir, path[1:])
	}

	return filepath.Clean(os.ExpandEnv(path))
}
