package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"shopfront/internal/apis/shop"
	"shopfront/internal/bootstrap"
	"shopfront/internal/browse"
	"shopfront/internal/config"
	"shopfront/internal/detail"
	"shopfront/internal/logger"
	"shopfront/internal/render"
	"shopfront/internal/repository"
	jsonfile "shopfront/internal/repository/json"
)

const usage = `usage: shopfront [flags] <command>

commands:
  list                 show the full catalog
  search <query>       search the catalog
  show <id>            show one product with its reviews
  review <id> <text>   submit a review for a product
`

func main() {
	var (
		configPath = flag.String("config", "./config/config.yaml", "path to config.yaml")
		baseURL    = flag.String("base-url", "", "override backend base URL (optional)")
		outputFile = flag.String("out", "", "dump listing/search results to a JSON file (optional)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Error("load config failed", "err", err)
			os.Exit(1)
		}
		cfg = config.Default()
	}

	log := logger.New(logger.Options{
		Level:     cfg.Log.Level,
		Format:    cfg.Log.Format,
		AddSource: cfg.Log.AddSource,
	})
	slog.SetDefault(log)

	// overrides
	if *baseURL != "" {
		cfg.Shop.BaseURL = *baseURL
	}
	if *outputFile != "" {
		cfg.CLI.OutputFile = *outputFile
	}

	if flag.NArg() == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	transport, err := bootstrap.BuildTransport(cfg, log)
	if err != nil {
		log.Error("build transport failed", "err", err)
		os.Exit(1)
	}

	shopSvc := shop.New(transport, cfg.Shop.BaseURL, log)
	policy := render.NewPolicy(cfg.Render.UnsafeHTML)
	if cfg.Render.UnsafeHTML {
		log.Warn("insecure demo mode: review HTML is rendered unsanitized")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.TimeoutSeconds)*time.Second)
	defer cancel()

	switch cmd := flag.Arg(0); cmd {
	case "list":
		runBrowse(ctx, cfg, log, shopSvc, "")
	case "search":
		if flag.NArg() < 2 {
			log.Error("search needs a query argument")
			os.Exit(2)
		}
		runBrowse(ctx, cfg, log, shopSvc, strings.Join(flag.Args()[1:], " "))
	case "show":
		if flag.NArg() != 2 {
			log.Error("show needs exactly one id argument")
			os.Exit(2)
		}
		runShow(ctx, cfg, log, shopSvc, policy, flag.Arg(1))
	case "review":
		if flag.NArg() < 3 {
			log.Error("review needs an id and the review text")
			os.Exit(2)
		}
		runReview(ctx, cfg, log, shopSvc, policy, flag.Arg(1), strings.Join(flag.Args()[2:], " "))
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func runBrowse(ctx context.Context, cfg *config.Config, log *slog.Logger, svc shop.ShopService, query string) {
	listing := browse.NewListing(svc, log)
	search := browse.NewSearch(svc, log)

	if err := listing.Load(ctx); err != nil {
		log.Error("catalog load failed", "err", err)
		os.Exit(1)
	}

	if err := search.Run(ctx, query); err != nil {
		log.Error("search failed", "err", err)
		os.Exit(1)
	}

	recs, authority := browse.Display(listing, search)
	render.Records(os.Stdout, recs, authority, search.Query())

	if cfg.CLI.OutputFile != "" {
		repo := jsonfile.New(cfg.CLI.OutputFile, log)
		snap := repository.FeedSnapshot{
			FetchedAt: time.Now().UTC().Format(time.RFC3339),
			Authority: authority.String(),
			Query:     search.Query(),
			Records:   repository.ToSnapshotRecords(recs),
			Count:     len(recs),
		}
		if err := repo.Save(ctx, snap); err != nil {
			log.Error("save snapshot failed", "err", err)
			os.Exit(1)
		}
	}
}

func runShow(ctx context.Context, cfg *config.Config, log *slog.Logger, svc shop.ShopService, policy *render.Policy, id string) {
	view := detail.NewView(svc, cfg.Shop.SubmitterID, log)
	view.Load(ctx, id)

	if view.State() == detail.StateNotFound {
		fmt.Println("Product not found")
		os.Exit(1)
	}

	render.Record(os.Stdout, view.Record())
	render.Reviews(os.Stdout, policy, view.Reviews())
}

func runReview(ctx context.Context, cfg *config.Config, log *slog.Logger, svc shop.ShopService, policy *render.Policy, id, text string) {
	view := detail.NewView(svc, cfg.Shop.SubmitterID, log)
	view.Load(ctx, id)

	if view.State() == detail.StateNotFound {
		fmt.Println("Product not found")
		os.Exit(1)
	}

	if err := view.SubmitReview(ctx, text); err != nil {
		switch {
		case errors.Is(err, detail.ErrEmptyReview):
			log.Error("review text must not be empty")
		default:
			log.Error("review submission failed (text kept, retry later)", "err", err)
		}
		os.Exit(1)
	}

	log.Info("review posted", "product_id", id)
	render.Reviews(os.Stdout, policy, view.Reviews())
}
