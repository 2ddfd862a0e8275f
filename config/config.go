// This file is part of pcidebug.
//
// pcidebug is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// pcidebug is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with pcidebug.  If not, see <https://www.gnu.org/licenses/>.

// Package config holds the settings for a session. Settings are taken from the
// environment, which may be supplemented by the pcidebug.env file in the
// working directory, and can then be overridden by command line flags.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/pcidebug/curated"
	"github.com/jetsetilly/pcidebug/hardware/pci"
	"github.com/jetsetilly/pcidebug/logger"
	"github.com/joho/godotenv"
)

// EnvFile is the name of the file loaded into the environment by Load().
const EnvFile = "pcidebug.env"

// list of environment variables read by Load()
const (
	EnvSlot      = "PCIDEBUG_SLOT"
	EnvBAR       = "PCIDEBUG_BAR"
	EnvVerbosity = "PCIDEBUG_VERBOSITY"
	EnvTerm      = "PCIDEBUG_TERM"
)

// list of terminal types
const (
	TermAuto  = ""
	TermColor = "COLOR"
	TermPlain = "PLAIN"
)

// sentinal error patterns
const (
	InvalidValue   = "config: invalid value for %s: %v"
	InvalidSetting = "config: %s"
	EnvFileError   = "config: %s: %v"
)

// Config is the complete set of settings for a session.
type Config struct {
	// slot of the device in the format accepted by pci.ParseBDF()
	Slot string

	// index of the BAR to access
	BAR int

	// amount of information printed. from zero to logger.MaxVerbosity
	Verbosity int

	// terminal type. one of the Term* values
	Term string

	// batch file to run before the first prompt
	CommandFile string

	// quit after running the batch file
	QuitAfterFile bool

	// file to record commands to
	Record string

	// size of simulated memory. if non-zero then no device is opened
	Simulate uint32

	// echo the log to stderr
	Log bool
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Verbosity: logger.MaxVerbosity,
		Term:      TermAuto,
	}
}

// Load returns the default configuration updated by the environment. The
// EnvFile is loaded into the environment first, if it exists. Variables
// already in the environment are not changed by the EnvFile.
func Load() (Config, error) {
	cfg := Default()

	if err := godotenv.Load(EnvFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return cfg, curated.Errorf(EnvFileError, EnvFile, err)
		}
	} else {
		logger.Logf(logger.Verbosity(3), "config", "loaded %s", EnvFile)
	}

	if s, ok := os.LookupEnv(EnvSlot); ok {
		cfg.Slot = s
	}

	if s, ok := os.LookupEnv(EnvBAR); ok {
		v, err := strconv.Atoi(s)
		if err != nil {
			return cfg, curated.Errorf(InvalidValue, EnvBAR, s)
		}
		cfg.BAR = v
	}

	if s, ok := os.LookupEnv(EnvVerbosity); ok {
		v, err := strconv.Atoi(s)
		if err != nil {
			return cfg, curated.Errorf(InvalidValue, EnvVerbosity, s)
		}
		cfg.Verbosity = v
	}

	if s, ok := os.LookupEnv(EnvTerm); ok {
		cfg.Term = strings.ToUpper(s)
	}

	return cfg, nil
}

// Validate returns an error if any setting is out of range or if a required
// setting is missing.
func (cfg Config) Validate() error {
	if cfg.Slot == "" && cfg.Simulate == 0 {
		return curated.Errorf(InvalidSetting, "a device slot is required")
	}

	if cfg.Slot != "" {
		if _, err := pci.ParseBDF(cfg.Slot); err != nil {
			return err
		}
	}

	if cfg.BAR < 0 || cfg.BAR >= pci.NumBARs {
		return curated.Errorf(InvalidValue, "BAR", cfg.BAR)
	}

	if cfg.Verbosity < 0 || cfg.Verbosity > logger.MaxVerbosity {
		return curated.Errorf(InvalidValue, "verbosity", cfg.Verbosity)
	}

	switch strings.ToUpper(cfg.Term) {
	case TermAuto, TermColor, TermPlain:
	default:
		return curated.Errorf(InvalidValue, "terminal type", cfg.Term)
	}

	return nil
}

// ParseSize parses a hexadecimal size, with or without a 0x prefix. The size
// must not be zero.
func ParseSize(s string) (uint32, error) {
	t := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(t, 16, 32)
	if err != nil || v == 0 {
		return 0, curated.Errorf(InvalidValue, "size", s)
	}
	return uint32(v), nil
}
