package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/carlmjohnson/versioninfo"
	_ "github.com/joho/godotenv/autoload"
	slogGorm "github.com/orandin/slog-gorm"
	cli "github.com/urfave/cli/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/haven-social/scrubber/cachestore"
	"github.com/haven-social/scrubber/capability"
	"github.com/haven-social/scrubber/engine"
	"github.com/haven-social/scrubber/precheck"
	"github.com/haven-social/scrubber/sanitize"
	"github.com/haven-social/scrubber/trust"
)

func main() {
	if err := run(os.Args); err != nil {
		slog.Error("exiting", "err", err)
		os.Exit(-1)
	}
}

func run(args []string) error {

	app := cli.App{
		Name:    "scrubber",
		Usage:   "content moderation daemon (scrubs the feed)",
		Version: versioninfo.Short(),
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "redis-url",
			Usage:   "redis connection URL for the trust score cache (optional)",
			EnvVars: []string{"SCRUBBER_REDIS_URL", "REDIS_URL"},
		},
		&cli.StringFlag{
			Name:    "database-url",
			Usage:   "user record database (optional; sqlite://path)",
			EnvVars: []string{"DATABASE_URL"},
		},
	}

	app.Commands = []*cli.Command{
		runCmd,
		scanCmd,
		precheckCmd,
		sanitizeCmd,
	}

	return app.Run(args)
}

// newEngine wires an Engine from CLI flags: go-away profanity dictionary,
// libphonenumber validation, and a trust provider over whatever user store
// and cache the flags configure.
func newEngine(cctx *cli.Context, logger *slog.Logger) (*engine.Engine, error) {
	var users trust.UserStore = trust.NewMemUserStore()
	if dburl := cctx.String("database-url"); dburl != "" {
		path := strings.TrimPrefix(dburl, "sqlite://")
		db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
			SkipDefaultTransaction: true,
			Logger:                 slogGorm.New(),
		})
		if err != nil {
			return nil, fmt.Errorf("opening user database: %w", err)
		}
		store, err := trust.NewGormUserStore(db)
		if err != nil {
			return nil, err
		}
		users = store
	}

	var cache cachestore.CacheStore
	if redisURL := cctx.String("redis-url"); redisURL != "" {
		rc, err := cachestore.NewRedisCacheStore(redisURL, 30*time.Minute)
		if err != nil {
			return nil, fmt.Errorf("initializing redis trust cache: %w", err)
		}
		cache = rc
	} else {
		cache = cachestore.NewMemCacheStore(50_000, 30*time.Minute)
	}

	return &engine.Engine{
		Logger: logger,
		Trust: &trust.Provider{
			Users:  users,
			Cache:  cache,
			Logger: logger,
		},
		Profanity: capability.NewGoAwayDict(),
		Phones:    capability.LibPhoneChecker{},
	}, nil
}

var runCmd = &cli.Command{
	Name:  "run",
	Usage: "run the moderation API daemon",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "bind",
			Usage:   "IP or address, and port, to listen on for the moderation API",
			Value:   ":3899",
			EnvVars: []string{"SCRUBBER_BIND"},
		},
		&cli.StringFlag{
			Name:    "metrics-listen",
			Usage:   "IP or address, and port, to listen on for metrics",
			Value:   ":3898",
			EnvVars: []string{"SCRUBBER_METRICS_LISTEN"},
		},
	},
	Action: func(cctx *cli.Context) error {
		logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
		slog.SetDefault(logger)

		eng, err := newEngine(cctx, logger)
		if err != nil {
			return err
		}

		srv := NewServer(eng, logger)

		go func() {
			if err := srv.RunMetrics(cctx.String("metrics-listen")); err != nil {
				slog.Error("failed to start metrics endpoint", "error", err)
				panic(fmt.Errorf("failed to start metrics endpoint: %w", err))
			}
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-shutdown
			logger.Info("shutting down")
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("shutdown failed", "err", err)
			}
		}()

		return srv.RunAPI(cctx.String("bind"))
	},
}

// reads text from the trailing argument, or stdin when absent
func argOrStdin(cctx *cli.Context) (string, error) {
	if cctx.Args().Len() > 0 {
		return strings.Join(cctx.Args().Slice(), " "), nil
	}
	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

var scanCmd = &cli.Command{
	Name:      "scan",
	Usage:     "run one piece of text through the full moderation engine",
	ArgsUsage: "<text>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "user",
			Usage: "author user id, for trust scoring",
		},
	},
	Action: func(cctx *cli.Context) error {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		}))
		eng, err := newEngine(cctx, logger)
		if err != nil {
			return err
		}
		text, err := argOrStdin(cctx)
		if err != nil {
			return err
		}
		res := eng.Scan(cctx.Context, engine.ModerationInput{
			Text:   text,
			UserID: cctx.String("user"),
		})
		return printJSON(res)
	},
}

var precheckCmd = &cli.Command{
	Name:      "precheck",
	Usage:     "run the coarse pre-submission analyzer over text",
	ArgsUsage: "<text>",
	Action: func(cctx *cli.Context) error {
		text, err := argOrStdin(cctx)
		if err != nil {
			return err
		}
		analyzer := precheck.Analyzer{Dict: capability.NewGoAwayDict()}
		return printJSON(analyzer.Analyze(text))
	},
}

var sanitizeCmd = &cli.Command{
	Name:      "sanitize",
	Usage:     "strip markup from text the way the storage path does",
	ArgsUsage: "<text>",
	Action: func(cctx *cli.Context) error {
		text, err := argOrStdin(cctx)
		if err != nil {
			return err
		}
		fmt.Println(sanitize.Sanitize(text))
		return nil
	},
}
