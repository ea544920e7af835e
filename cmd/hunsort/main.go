// Command hunsort reads a member name list, removes duplicate entries, sorts
// the names in Hungarian alphabetical order and mails the list (or prints it
// with -dry-run). Names come from a name list file or from the member
// register database.
//
// Usage:
//
//	hunsort [-config file] [-env file] [-names file | -db file] [-strict] [-dry-run | -html]
//	hunsort explain NAME1 NAME2
//	hunsort export [-config file] [-env file] [-db file] [-o file | -backup dir | -names-only]
//	hunsort serve [-config file] [-env file] [-db file] [-addr host:port]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/npillmayer/schuko/tracing"
	"github.com/xXCoffeeColaXc/hunsort"
	"github.com/xXCoffeeColaXc/hunsort/config"
	"github.com/xXCoffeeColaXc/hunsort/members"
	"github.com/xXCoffeeColaXc/hunsort/namelist"
	"github.com/xXCoffeeColaXc/hunsort/notify"
)

// tracer writes to trace with key 'hunsort'
func tracer() tracing.Trace {
	return tracing.Select("hunsort")
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	configPath string
	envPath    string
	namesPath  string
	dbPath     string
	strict     bool
	dryRun     bool
	printHTML  bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("hunsort", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	fs.StringVar(&opts.envPath, "env", ".env", "file with KEY=VALUE environment settings")
	fs.StringVar(&opts.namesPath, "names", "", "name list (overrides configuration)")
	fs.StringVar(&opts.dbPath, "db", "", "member register database to take names from")
	fs.BoolVar(&opts.strict, "strict", false, "reject names with characters outside the Hungarian alphabet")
	fs.BoolVar(&opts.dryRun, "dry-run", false, "print the sorted names instead of sending them")
	fs.BoolVar(&opts.printHTML, "html", false, "print the message body instead of sending it")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return opts, nil
}

// run executes the command and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 {
		switch args[0] {
		case "explain":
			return explain(args[1:], stdout, stderr)
		case "export":
			return export(ctx, args[1:], stdout, stderr)
		case "serve":
			return serve(ctx, args[1:], stderr)
		}
	}
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	} else if err != nil {
		fmt.Fprintf(stderr, "hunsort: %v\n", err)
		return 2
	}
	if err := sortAndDeliver(ctx, opts, stdout); err != nil {
		tracer().Errorf("%v", err)
		fmt.Fprintf(stderr, "hunsort: %v\n", err)
		return 1
	}
	return 0
}

func sortAndDeliver(ctx context.Context, opts options, stdout io.Writer) error {
	if err := config.LoadDotEnv(opts.envPath); err != nil {
		return err
	}
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.namesPath != "" {
		cfg.NamesPath = opts.namesPath
		cfg.Database = ""
	}
	if opts.dbPath != "" {
		cfg.Database = opts.dbPath
	}
	deliver := !opts.dryRun && !opts.printHTML
	if err := cfg.Validate(deliver); err != nil {
		return err
	}
	raw, err := loadNames(ctx, cfg)
	if err != nil {
		return err
	}
	if opts.strict {
		var errs []error
		for _, name := range raw {
			errs = append(errs, hunsort.Validate(name))
		}
		if err := errors.Join(errs...); err != nil {
			return err
		}
	}
	names := hunsort.DeduplicateAndSort(raw)
	tracer().Infof("%d names, %d duplicates removed", len(names), len(raw)-len(names))
	switch {
	case opts.dryRun:
		for _, name := range names {
			fmt.Fprintln(stdout, name)
		}
		return nil
	case opts.printHTML:
		body, err := notify.RenderHTML(names)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, body)
		return nil
	}
	msg, err := notify.NewMessage(cfg.SendFrom, cfg.SendTo, cfg.Subject, names)
	if err != nil {
		return err
	}
	client := notify.NewClient(cfg.Endpoint, cfg.APIKey, cfg.Timeout)
	if err := client.Send(ctx, msg); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Email sent successfully (%d names).\n", len(names))
	return nil
}

func explain(args []string, stdout, stderr io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(stderr, "usage: hunsort explain NAME1 NAME2")
		return 2
	}
	c := hunsort.Explain(args[0], args[1])
	fmt.Fprintf(stdout, "%s\t%v\tkey %v\n", c.A, c.TokensA, c.KeyA)
	fmt.Fprintf(stdout, "%s\t%v\tkey %v\n", c.B, c.TokensB, c.KeyB)
	fmt.Fprintln(stdout, c)
	return 0
}

// loadNames reads the raw names from the member register if one is
// configured, else from the name list.
func loadNames(ctx context.Context, cfg config.Config) ([]string, error) {
	if cfg.Database == "" {
		return namelist.LoadFile(cfg.NamesPath)
	}
	store, err := members.Open(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	defer store.Close()
	names, err := store.Names(ctx)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("member register %s: %w", cfg.Database, namelist.ErrNoNames)
	}
	return names, nil
}

// registerFlags adds the flags shared by the register sub-commands.
func registerFlags(fs *flag.FlagSet, configPath, envPath, dbPath *string) {
	fs.StringVar(configPath, "config", "", "YAML configuration file")
	fs.StringVar(envPath, "env", ".env", "file with KEY=VALUE environment settings")
	fs.StringVar(dbPath, "db", "", "member register database (overrides configuration)")
}

func registerConfig(configPath, envPath, dbPath string) (config.Config, error) {
	if err := config.LoadDotEnv(envPath); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	if dbPath != "" {
		cfg.Database = dbPath
	}
	if cfg.Database == "" {
		return cfg, errors.New("no member register configured (-db or " + config.EnvDatabase + ")")
	}
	return cfg, nil
}

func export(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var configPath, envPath, dbPath, outPath, backupDir string
	var namesOnly bool
	fs := flag.NewFlagSet("hunsort export", flag.ContinueOnError)
	fs.SetOutput(stderr)
	registerFlags(fs, &configPath, &envPath, &dbPath)
	fs.StringVar(&outPath, "o", "", "output file (default: standard output)")
	fs.StringVar(&backupDir, "backup", "", "write a timestamped backup into this directory")
	fs.BoolVar(&namesOnly, "names-only", false, "write a name list instead of the full register")
	if err := fs.Parse(args); errors.Is(err, flag.ErrHelp) {
		return 0
	} else if err != nil {
		return 2
	}
	cfg, err := registerConfig(configPath, envPath, dbPath)
	if err == nil {
		err = exportRegister(ctx, cfg.Database, outPath, backupDir, namesOnly, stdout)
	}
	if err != nil {
		tracer().Errorf("%v", err)
		fmt.Fprintf(stderr, "hunsort: %v\n", err)
		return 1
	}
	return 0
}

func exportRegister(ctx context.Context, db, outPath, backupDir string, namesOnly bool, stdout io.Writer) error {
	store, err := members.Open(ctx, db)
	if err != nil {
		return err
	}
	defer store.Close()
	if backupDir != "" {
		path, err := store.Backup(ctx, backupDir)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, path)
		return nil
	}
	if outPath == "" {
		return writeRegister(ctx, store, stdout, namesOnly)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := writeRegister(ctx, store, f, namesOnly); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeRegister(ctx context.Context, store *members.Store, w io.Writer, namesOnly bool) error {
	if !namesOnly {
		return store.ExportCSV(ctx, w)
	}
	names, err := store.Names(ctx)
	if err != nil {
		return err
	}
	return namelist.Write(w, names)
}

func serve(ctx context.Context, args []string, stderr io.Writer) int {
	var configPath, envPath, dbPath, addr string
	fs := flag.NewFlagSet("hunsort serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	registerFlags(fs, &configPath, &envPath, &dbPath)
	fs.StringVar(&addr, "addr", "", "listen address (overrides configuration)")
	if err := fs.Parse(args); errors.Is(err, flag.ErrHelp) {
		return 0
	} else if err != nil {
		return 2
	}
	cfg, err := registerConfig(configPath, envPath, dbPath)
	if err == nil {
		if addr != "" {
			cfg.Listen = addr
		}
		err = serveRegister(ctx, cfg)
	}
	if err != nil {
		tracer().Errorf("%v", err)
		fmt.Fprintf(stderr, "hunsort: %v\n", err)
		return 1
	}
	return 0
}

// serveRegister runs the register's HTTP interface until ctx is cancelled or
// the process receives SIGINT or SIGTERM.
func serveRegister(ctx context.Context, cfg config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	store, err := members.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer store.Close()
	if cfg.AdminToken == "" {
		tracer().Infof("%s not set, export is disabled", config.EnvAdminToken)
	}
	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           members.NewHandler(store, cfg.AdminToken, cfg.AllowedOrigin),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		tracer().Infof("member register listening on %s", cfg.Listen)
		errc <- srv.ListenAndServe()
	}()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdown)
}
