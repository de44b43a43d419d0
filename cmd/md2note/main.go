package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches a command and returns the process exit code.
func runMain(args []string, env *Environment) int {
	loadDotEnv(env)

	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	command, rest := args[1], args[2:]

	switch command {
	case "convert":
		return runConvertCmd(rest, env)
	case "settings":
		return runSettingsCmd(rest, env)
	case "completion":
		if err := runCompletion(rest, env); err != nil {
			fmt.Fprintln(env.Stderr, "error:", err)
			return exitCodeFor(err)
		}
		return ExitSuccess
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "md2note %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		runHelp(rest, env)
		return ExitSuccess
	}

	// "md2note note.md" is shorthand for "md2note convert note.md".
	if looksLikeMarkdown(command) {
		return runConvertCmd(args[1:], env)
	}

	fmt.Fprintf(env.Stderr, "unknown command: %s\n", command)
	printUsage(env.Stderr)
	return ExitUsage
}

// runConvertCmd parses convert flags, sets up logging and runs the conversion.
func runConvertCmd(args []string, env *Environment) int {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		printConvertUsage(env.Stdout)
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(env.Stderr, "error:", err)
		return ExitUsage
	}

	envCfg := loadEnvConfig()
	env.Logger = newLogger(env.Stderr, flags.common.verbose, flags.common.quiet, envCfg.LogLevel)
	warnUnknownEnvVars(env.Logger)
	setMaxProcs(env)

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runConvert(ctx, positional, flags, envCfg, env); err != nil {
		fmt.Fprintln(env.Stderr, "error: "+err.Error()+hintFor(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runSettingsCmd prints the effective settings as YAML.
func runSettingsCmd(args []string, env *Environment) int {
	flags, _, err := parseSettingsFlags(args, env.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		printSettingsUsage(env.Stdout)
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(env.Stderr, "error:", err)
		return ExitUsage
	}

	envCfg := loadEnvConfig()
	env.Logger = newLogger(env.Stderr, flags.common.verbose, flags.common.quiet, envCfg.LogLevel)
	warnUnknownEnvVars(env.Logger)

	if err := runSettings(flags, envCfg, env); err != nil {
		fmt.Fprintln(env.Stderr, "error: "+err.Error()+hintFor(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// setMaxProcs matches GOMAXPROCS to the container CPU quota.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply.
func setMaxProcs(env *Environment) {
	logger := env.Logger
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		logger.Debug().Msgf(format, args...)
	}))
}

// loadDotEnv loads a .env file from the working directory when present.
// Variables already set in the environment win.
func loadDotEnv(env *Environment) {
	if _, err := os.Stat(dotEnvFile); err != nil {
		return
	}
	if err := godotenv.Load(dotEnvFile); err != nil {
		fmt.Fprintf(env.Stderr, "warning: ignoring %s: %v\n", dotEnvFile, err)
	}
}

// dotEnvFile is the optional environment file read at startup.
const dotEnvFile = ".env"

// looksLikeMarkdown reports whether arg names a Markdown file or stdin.
func looksLikeMarkdown(arg string) bool {
	if arg == "-" {
		return true
	}
	ext := filepath.Ext(arg)
	return ext == ".md" || ext == ".markdown"
}

// notifyContext is canceled on interrupt or termination. Windows only
// delivers os.Interrupt; listing SIGTERM there is harmless.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
