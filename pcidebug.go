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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jetsetilly/pcidebug/config"
	"github.com/jetsetilly/pcidebug/debugger"
	"github.com/jetsetilly/pcidebug/debugger/terminal"
	"github.com/jetsetilly/pcidebug/debugger/terminal/colorterm"
	"github.com/jetsetilly/pcidebug/debugger/terminal/plainterm"
	"github.com/jetsetilly/pcidebug/hardware/pci"
	"github.com/jetsetilly/pcidebug/hardware/region"
	"github.com/jetsetilly/pcidebug/logger"
	"github.com/jetsetilly/pcidebug/version"
	"github.com/rs/xid"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
	"golang.org/x/term"
)

func main() {
	atexit.Exit(run(os.Args[1:]))
}

// run the application with the command line arguments and return the exit
// code for the process
func run(args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "* error: %v\n", err)
		return 1
	}

	cmd := rootCommand(&cfg)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return 1
	}

	return 0
}

// rootCommand returns the command line for the application. flags are bound
// to the configuration so that they override the values taken from the
// environment
func rootCommand(cfg *config.Config) *cobra.Command {
	var simulate string
	var showVersion bool

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s -s <device> [flags]", version.ApplicationName),
		Short: "Display and change the memory of a PCI device",
		Long: `Display and change the memory of a PCI device. Commands are ` +
			`entered at the prompt or read from a batch file. Memory is ` +
			`accessed through one of the device's base address registers (BAR).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if showVersion {
				fmt.Println(version.Version())
				return nil
			}

			// errors from now on are not caused by the command line
			cmd.SilenceUsage = true

			if simulate != "" {
				size, err := config.ParseSize(simulate)
				if err != nil {
					return err
				}
				cfg.Simulate = size
			}

			return launch(*cfg)
		},
	}

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.StringVarP(&cfg.Slot, "slot", "s", cfg.Slot, "slot of the device as reported by lspci (BB:DD.F or DDDD:BB:DD.F)")
	flags.IntVarP(&cfg.BAR, "bar", "b", cfg.BAR, "index of the BAR to access")
	flags.StringVarP(&cfg.CommandFile, "file", "f", cfg.CommandFile, "batch file to run before the first prompt")
	flags.BoolVarP(&cfg.QuitAfterFile, "quit", "q", cfg.QuitAfterFile, "quit after running the batch file")
	flags.IntVarP(&cfg.Verbosity, "verbosity", "v", cfg.Verbosity, "amount of information printed (0 to 3)")
	flags.StringVar(&cfg.Term, "term", cfg.Term, "terminal type: COLOR, PLAIN (default depends on stdin)")
	flags.StringVar(&cfg.Record, "record", cfg.Record, "record commands entered at the prompt to a new batch file")
	flags.Lookup("record").NoOptDefVal = fmt.Sprintf("%s_%s.cmd", version.ApplicationName, xid.New())
	flags.StringVar(&simulate, "simulate", "", "use memory of the hexadecimal size instead of a device")
	flags.BoolVar(&cfg.Log, "log", cfg.Log, "echo the log to stderr")
	flags.BoolVarP(&showVersion, "version", "V", false, "print the version and exit")

	return cmd
}

// launch a session with the validated configuration
func launch(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg.Term = strings.ToUpper(cfg.Term)

	logger.SetVerbosity(cfg.Verbosity)
	if cfg.Log {
		if term.IsTerminal(int(os.Stderr.Fd())) {
			logger.SetEcho(logger.NewColorizer(os.Stderr))
		} else {
			logger.SetEcho(os.Stderr)
		}
	}

	reg, err := openRegion(cfg)
	if err != nil {
		return err
	}
	atexit.Register(func() {
		if err := reg.Close(); err != nil {
			logger.Log(logger.Allow, "pcidebug", err.Error())
		}
	})

	trm := newTerminal(cfg.Term)
	atexit.Register(trm.CleanUp)

	dbg, err := debugger.NewDebugger(trm, reg, debugger.Options{
		BAR:            cfg.BAR,
		Verbosity:      cfg.Verbosity,
		Batch:          cfg.CommandFile,
		QuitAfterBatch: cfg.QuitAfterFile,
		Record:         cfg.Record,
	})
	if err != nil {
		return err
	}
	atexit.Register(dbg.End)

	handleSignals(dbg)

	return dbg.Start()
}

// handleSignals ends the process when it is interrupted outside of the color
// terminal's raw mode. the device is released and the recording finished by
// the atexit handlers but only once the command being executed has completed
func handleSignals(dbg *debugger.Debugger) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		dbg.Stop()
		fmt.Println()
		atexit.Exit(1)
	}()
}

// openRegion returns the memory region described by the configuration
func openRegion(cfg config.Config) (*region.Region, error) {
	if cfg.Simulate > 0 {
		logger.Logf(logger.Verbosity(1), "pcidebug", "simulating %d bytes of memory", cfg.Simulate)
		return region.NewMemory(cfg.Simulate), nil
	}

	bdf, err := pci.ParseBDF(cfg.Slot)
	if err != nil {
		return nil, err
	}

	res, err := pci.DefaultSysfs.Open(bdf, cfg.BAR)
	if err != nil {
		return nil, err
	}

	reg, err := res.Region()
	if err != nil {
		res.Close()
		return nil, err
	}

	return reg, nil
}

// newTerminal returns the terminal of the requested type. the color terminal
// is only chosen automatically if both stdin and stdout are terminals
func newTerminal(termType string) terminal.Terminal {
	if termType == config.TermAuto {
		termType = config.TermPlain
		if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
			termType = config.TermColor
		}
	}

	if termType == config.TermColor {
		return &colorterm.ColorTerminal{}
	}
	return plainterm.NewPlainTerminal(nil, nil)
}
