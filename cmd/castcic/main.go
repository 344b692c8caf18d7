// Command castcic drives the CastCIC reduction core from the command
// line: one-shot reduction to normal form, a single inspectable step,
// or a watch loop that re-drives the reducer on every edit to a source
// file written in the minimal surface notation (see internal/surface).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/castcic-lang/castcic/internal/config"
	"github.com/castcic-lang/castcic/internal/machine"
	"github.com/castcic-lang/castcic/internal/types"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: castcic <command> <file> [flags]

Commands:
  reduce <file>   reduce the file's trailing expression to normal form
  step <file>     run exactly one machine transition and print the result
  watch <file>    re-run reduce on every write to <file>

Flags:
  --config <path>      YAML config file (default: none)
  --variant {G,N,S}     GCIC variant (default: G)
  --fuel <n>            fuel budget for reduce/watch (default: 10000)
  --log-level <level>   debug, info, warn, or error (default: info)
`)
}

type cliFlags struct {
	command    string
	file       string
	configPath string
	variant    string
	fuel       int
	logLevel   string
}

func parseArgs(args []string) (*cliFlags, error) {
	f := &cliFlags{fuel: -1}
	var positional []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--config", "--variant", "--fuel", "--log-level":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("%s requires a value", arg)
			}
			val := args[i+1]
			i++
			switch arg {
			case "--config":
				f.configPath = val
			case "--variant":
				f.variant = val
			case "--fuel":
				n := 0
				if _, err := fmt.Sscanf(val, "%d", &n); err != nil {
					return nil, fmt.Errorf("invalid --fuel value %q: %w", val, err)
				}
				f.fuel = n
			case "--log-level":
				f.logLevel = val
			}
		default:
			positional = append(positional, arg)
		}
	}
	if len(positional) < 2 {
		return nil, fmt.Errorf("expected a command and a file")
	}
	f.command, f.file = positional[0], positional[1]
	return f, nil
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "internal error: %v\n", r)
			os.Exit(1)
		}
	}()

	if len(os.Args) < 2 || os.Args[1] == "-help" || os.Args[1] == "--help" || os.Args[1] == "help" {
		usage()
		if len(os.Args) < 2 {
			os.Exit(1)
		}
		return
	}

	flags, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		usage()
		os.Exit(1)
	}

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if flags.variant != "" {
		cfg.Variant = flags.variant
	}
	if flags.fuel >= 0 {
		cfg.Fuel = flags.fuel
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}

	variant, err := cfg.ResolveVariant()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	level, err := cfg.ResolveLogLevel()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := newLogger(level)
	fuel := cfg.ResolveFuel()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var runErr error
	switch flags.command {
	case "reduce":
		runErr = runReduce(ctx, logger, variant, fuel, flags.file)
	case "step":
		runErr = runStep(logger, variant, flags.file)
	case "watch":
		runErr = runWatch(ctx, logger, variant, fuel, flags.file)
	default:
		runErr = fmt.Errorf("unknown command %q", flags.command)
	}

	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr)
		os.Exit(1)
	}
}

func newMachine(variant types.Variant) *machine.Machine {
	return machine.New(variant)
}
