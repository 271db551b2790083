// Command catalog manages the tool catalog out of band.
//
//	catalog import -f tools.yaml
//	catalog list
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/dmitrymomot/toolgate/internal/db"
	"github.com/dmitrymomot/toolgate/internal/store"
	"github.com/dmitrymomot/toolgate/pkg/catalog"
	"github.com/dmitrymomot/toolgate/pkg/config"
	"github.com/dmitrymomot/toolgate/pkg/environment"
	"github.com/dmitrymomot/toolgate/pkg/logger"
	"github.com/dmitrymomot/toolgate/pkg/pg"
)

type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"development"`
	Postgres pg.Config
}

var errUsage = errors.New("usage: catalog import -f <file> | catalog list")

func main() {
	var cfg Config
	config.MustLoad(&cfg)

	log := logger.New(logger.WithEnvironment(environment.Parse(cfg.AppEnv), "toolgate-catalog"))

	if err := runWithDB(context.Background(), cfg, log, os.Args[1:]); err != nil {
		log.Error("catalog command failed", logger.Error(err))
		os.Exit(1)
	}
}

func runWithDB(ctx context.Context, cfg Config, log *slog.Logger, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	pool, err := pg.Connect(ctx, cfg.Postgres)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Postgres.MigrateOnStart {
		if err := pg.Migrate(ctx, pool, cfg.Postgres, db.Migrations, log); err != nil {
			return err
		}
	}

	svc := catalog.New(store.New(pool), catalog.WithLogger(log))
	return run(ctx, svc, args, os.Stdout)
}

func run(ctx context.Context, svc *catalog.Service, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "import":
		fs := flag.NewFlagSet("import", flag.ContinueOnError)
		fs.SetOutput(out)
		file := fs.String("f", "tools.yaml", "catalog YAML file")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		return importFile(ctx, svc, *file, out)

	case "list":
		tools, err := svc.List(ctx)
		if err != nil {
			return err
		}
		return printTools(out, tools)

	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func importFile(ctx context.Context, svc *catalog.Service, path string, out io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	tools, err := catalog.ParseFile(f)
	if err != nil {
		return err
	}

	n, err := svc.Import(ctx, tools)
	fmt.Fprintf(out, "imported %d of %d tools\n", n, len(tools))
	return err
}

func printTools(out io.Writer, tools []catalog.Tool) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE ID\tACTIVE")
	for _, t := range tools {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%t\n", t.ID, t.Name, t.PriceID, t.IsActive)
	}
	return tw.Flush()
}
