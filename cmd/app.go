// Package cmd implements the CLI application to track seafood purchases and sales.
package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/pescados"
	"github.com/etnz/pescados/date"
	"github.com/etnz/pescados/storage"
	"github.com/google/subcommands"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&initCmd{}, "catalog")
	c.Register(&productsCmd{}, "catalog")
	c.Register(&addProductCmd{}, "catalog")
	c.Register(&updateProductCmd{}, "catalog")
	c.Register(&deleteProductCmd{}, "catalog")

	c.Register(&registerCmd{kind: pescados.Purchase}, "ledger")
	c.Register(&registerCmd{kind: pescados.Sale}, "ledger")
	c.Register(&deleteTxCmd{}, "ledger")
	c.Register(&txCmd{}, "ledger")

	c.Register(&dashboardCmd{}, "reports")
	c.Register(&chartCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")
	c.Register(&queryCmd{}, "reports")

	c.Register(&topicCmd{}, "help")
	c.Register(c.HelpCommand(), "help")
	c.Register(c.FlagsCommand(), "help")
	c.Register(c.CommandsCommand(), "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// Flags default to the environment, read when first needed so that a .env file loaded
// by main is taken into account.
var storePath = flag.String("store", "", "Path to the folder holding the products and transactions files. Defaults to $PESCADOS_HOME or .pescados.")
var databaseURL = flag.String("database-url", "", "PostgreSQL connection URL. When set, it is used instead of -store. Defaults to $DATABASE_URL.")
var logLevel = flag.String("log-level", "", "Log level (debug, info, warn, error). Defaults to $PESCADOS_LOG_LEVEL or warn.")

// Defaults used when neither the flag nor the environment is set.
const (
	defaultStore    = ".pescados"
	defaultLogLevel = "warn"
)

// stdout and stdin are the command's terminal.
var (
	stdout io.Writer = os.Stdout
	stdin  io.Reader = os.Stdin
)

// EnvTestingToday fixes the current date, for reproducible documentation examples.
const EnvTestingToday = "PESCADOS_TESTING_TODAY"

// today returns the current date.
var today = func() date.Date {
	if v := os.Getenv(EnvTestingToday); v != "" {
		if d, err := date.Parse(v); err == nil {
			return d
		}
	}
	return date.Today()
}

// flagOrEnv returns the flag value if set, then the environment variable, then def.
func flagOrEnv(v *string, key, def string) string {
	if *v != "" {
		return *v
	}
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// newLogger creates the application logger writing to stderr at the -log-level level.
func newLogger() *zap.Logger {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.DisableStacktrace = true

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(flagOrEnv(logLevel, EnvLogLevel, defaultLogLevel))); err != nil {
		level = zapcore.WarnLevel
	}
	config.Level.SetLevel(level)

	log, err := config.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot create logger: %v\n", err)
		return zap.NewNop()
	}
	return log
}

// openKV opens the configured key value store: Postgres when a database URL is set, a
// directory otherwise.
var openKV = func(ctx context.Context, log *zap.Logger) (storage.KV, error) {
	if url := flagOrEnv(databaseURL, EnvDatabaseURL, ""); url != "" {
		pg, err := storage.OpenPostgres(ctx, url, log)
		if err != nil {
			return nil, err
		}
		return pg, nil
	}
	return storage.OpenDir(flagOrEnv(storePath, EnvHome, defaultStore), log), nil
}

// OpenStore is the central function to open the products and transactions store.
func OpenStore(ctx context.Context) (*pescados.Store, error) {
	log := newLogger()
	kv, err := openKV(ctx, log)
	if err != nil {
		return nil, err
	}
	s, err := pescados.Open(ctx, kv, log)
	if err != nil {
		kv.Close()
		return nil, err
	}
	return s, nil
}

// withStore opens the store, runs fn and closes the store. A write that failed during fn
// turns the command into a failure.
func withStore(ctx context.Context, fn func(*pescados.Store) subcommands.ExitStatus) subcommands.ExitStatus {
	s, err := OpenStore(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	status := fn(s)
	if err := s.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: changes could not be saved: %v\n", err)
		status = subcommands.ExitFailure
	}
	if err := s.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing store: %v\n", err)
		status = subcommands.ExitFailure
	}
	return status
}

// printMarkdown renders markdown for the terminal.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	fmt.Fprint(stdout, md)
}

// confirm asks a yes/no question, no being the default.
func confirm(question string) bool {
	fmt.Fprintf(stdout, "%s [y/N] ", question)
	answer, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "s", "sim":
		return true
	}
	return false
}

// windowFlags are the flags selecting the reporting window.
type windowFlags struct {
	period string
	start  string
	end    string
}

func (w *windowFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&w.period, "p", "", "Predefined period (today, week, month, year; or dia, semana, mes, ano).")
	f.StringVar(&w.start, "s", "", "The start date for a custom range. Overrides -p.")
	f.StringVar(&w.end, "e", "", "The end date for the range, included. Defaults to today.")
}

// isSet reports whether any window flag was given.
func (w *windowFlags) isSet() bool { return w.period != "" || w.start != "" || w.end != "" }

// window resolves the flags, def being the period used when none is given.
func (w *windowFlags) window(def date.Period) (date.Window, error) {
	return date.Resolve(today(), w.period, w.start, w.end, def)
}

// nowSeed returns a seed for random generators.
func nowSeed() uint64 { return uint64(time.Now().UnixNano()) }
