package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/orayew2002/rast-payroll/app"
	"github.com/orayew2002/rast-payroll/config"
	"github.com/orayew2002/rast-payroll/store"
)

const usage = `usage: payroll [-config file] <command> [flags]

commands:
  process   altius=FILE monthinout=FILE ...   extract attendance from biometric exports
  employees list|add|edit|delete [flags]       manage the roster
  override  -id ID -date YYYY-MM-DD -status S -remark R
  search    [-q TEXT] [-id ID]                find employees or show one employee's attendance
  report    [-out FILE]                       write the attendance ledger
  payment   -debit ACCOUNT [-type NEFT|RTGS] [-date DD/MM/YYYY] [-remark R] [-out FILE]
  seed      [-n COUNT]                        add generated employees
  serve                                       run the HTTP API
`

type command func(ctx context.Context, env *env, args []string) error

var commands = map[string]command{
	"process":   runProcess,
	"employees": runEmployees,
	"override":  runOverride,
	"search":    runSearch,
	"report":    runReport,
	"payment":   runPayment,
	"seed":      runSeed,
	"serve":     runServe,
}

// env is what every command runs against.
type env struct {
	cfg *config.Config
	app *app.App
	log *slog.Logger
}

func main() {
	configPath := flag.String("config", "", "path to the YAML config file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}
	run, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n", args[0])
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	s, err := store.Open(ctx, cfg.Store.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	a, err := app.Open(ctx, s, cfg.Window.Window, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open: %v\n", err)
		os.Exit(1)
	}

	e := &env{
		cfg: cfg,
		app: a,
		log: slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}
	if err := run(ctx, e, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", args[0], err)
		s.Close()
		os.Exit(1)
	}
}
