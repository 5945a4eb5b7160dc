package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/napalu/goopt/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/metabrainz/musicbrainz-weblate-checks/internal/adapters/cli"
	"github.com/metabrainz/musicbrainz-weblate-checks/internal/application"
	"github.com/metabrainz/musicbrainz-weblate-checks/internal/config"
	"github.com/metabrainz/musicbrainz-weblate-checks/internal/domain/entities"
	"github.com/metabrainz/musicbrainz-weblate-checks/internal/infrastructure/catalog"
	"github.com/metabrainz/musicbrainz-weblate-checks/internal/infrastructure/i18n"
	"github.com/metabrainz/musicbrainz-weblate-checks/pkg/logger"
)

// Options defines the command-line flags. Empty values fall back to the
// environment configuration.
type Options struct {
	Source       string `goopt:"name:source;short:s;desc:Source string to check against --target"`
	Target       string `goopt:"name:target;short:t;desc:Translated string to check"`
	CatalogDir   string `goopt:"name:catalog-dir;short:d;desc:Directory of go-i18n catalog files (active.<locale>.toml)"`
	SourceLocale string `goopt:"name:source-locale;desc:Language of the source catalog"`
	Locale       string `goopt:"name:locale;short:L;desc:Only check this language of the catalog"`
	UILocale     string `goopt:"name:ui-locale;desc:Language of the messages"`
	Verbose      bool   `goopt:"name:verbose;short:v;desc:Show source and translation of each problem"`
	Help         bool   `goopt:"name:help;short:h;desc:Show this help message"`
}

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "❌ %v\n", err)
		return cli.ExitUsage
	}
	if err := logger.Init(cfg.Environment); err != nil {
		fmt.Fprintf(stderr, "❌ logger: %v\n", err)
		return cli.ExitUsage
	}
	defer func() { _ = logger.Sync() }()

	opts := &Options{}
	parser, err := goopt.NewParserFromStruct(opts)
	if err != nil {
		fmt.Fprintf(stderr, "❌ flags: %v\n", err)
		return cli.ExitUsage
	}
	ok := parser.Parse(args)
	if opts.Help {
		parser.PrintUsageWithGroups(stdout)
		return cli.ExitOK
	}
	if !ok {
		for _, parseErr := range parser.GetErrors() {
			fmt.Fprintf(stderr, " - %s\n", parseErr)
		}
		parser.PrintUsageWithGroups(stderr)
		return cli.ExitUsage
	}
	applyDefaults(opts, cfg)

	tr, err := i18n.NewTranslator(cfg.UILocale.String())
	if err != nil {
		fmt.Fprintf(stderr, "❌ %v\n", err)
		return cli.ExitUsage
	}
	printer := cli.NewPrinter(stdout, tr, opts.UILocale, opts.Verbose)

	// Pair mode whenever either flag is given, even with an empty value.
	if parser.HasFlag("source") || parser.HasFlag("target") {
		svc := application.NewCheckService(nil, tr)
		return printer.Pair(svc.CheckPair(opts.Source, opts.Target))
	}

	sourceTag, err := language.Parse(opts.SourceLocale)
	if err != nil {
		return printer.Error(fmt.Errorf("source locale: %w", err))
	}
	repo, err := catalog.NewRepository(opts.CatalogDir, sourceTag)
	if err != nil {
		return printer.Error(err)
	}
	svc := application.NewCheckService(repo, tr)

	logger.Debug("bracecheck: vérification du catalogue",
		zap.String("dir", opts.CatalogDir),
		zap.String("source", sourceTag.String()),
		zap.String("locale", opts.Locale),
	)
	if opts.Locale != "" {
		report, err := svc.CheckLocale(ctx, opts.Locale)
		if err != nil {
			return printer.Error(err)
		}
		return printer.Reports([]*entities.Report{report})
	}
	reports, err := svc.CheckCatalog(ctx)
	if err != nil {
		return printer.Error(err)
	}
	return printer.Reports(reports)
}

func applyDefaults(opts *Options, cfg *config.Config) {
	if opts.CatalogDir == "" {
		opts.CatalogDir = cfg.CatalogDir
	}
	if opts.SourceLocale == "" {
		opts.SourceLocale = cfg.SourceLocale.String()
	}
	if opts.UILocale == "" {
		opts.UILocale = cfg.UILocale.String()
	}
}
