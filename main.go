package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/sentencebank/internal/api"
	"github.com/example/sentencebank/internal/config"
	"github.com/example/sentencebank/internal/database"
	"github.com/example/sentencebank/internal/importer"
	"github.com/example/sentencebank/internal/seed"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	cmd := "serve"
	args := []string{}
	if len(os.Args) > 1 {
		cmd = os.Args[1]
		args = os.Args[2:]
	}

	switch cmd {
	case "serve":
		serve(cfg)
	case "import":
		runImport(cfg, args)
	case "seed":
		runSeed(cfg)
	case "retag":
		runRetag(cfg)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: sentencebank [command]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  serve               start the HTTP API (default)")
	fmt.Fprintln(os.Stderr, "  import <file.xlsx>  bulk-import sentences from a spreadsheet")
	fmt.Fprintln(os.Stderr, "  seed                load the built-in sentence sets into an empty store")
	fmt.Fprintln(os.Stderr, "  retag               one-time migration: repair tags, add missing sets")
}

func serve(cfg *config.Config) {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := database.Connect(cfg); err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: api.NewRouter(logger, cfg),
	}

	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("forced shutdown", zap.Error(err))
	}
	logger.Info("server exited")
}

func runImport(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	keepDuplicates := fs.Bool("keep-duplicates", false, "insert rows even when the (chinese, english) pair already exists")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: sentencebank import [flags] <file.xlsx>")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Spreadsheet layout: column 1 = chinese, column 2 = english,")
		fmt.Fprintln(os.Stderr, "column 3 = optional difficulty (cet4, cet6, ielts)")
		fs.PrintDefaults()
	}
	_ = fs.Parse(args)

	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(1)
	}
	path := fs.Arg(0)

	if err := database.Connect(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	fmt.Printf("importing from %s...\n", path)
	result, err := importer.ImportFile(importer.Options{
		FilePath:       path,
		SkipDuplicates: !*keepDuplicates,
		Progress: func(imported int) {
			fmt.Printf("imported %d sentences...\n", imported)
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "import failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("import finished")
	fmt.Printf("  total rows: %d\n", result.Total)
	fmt.Printf("  imported:   %d\n", result.Imported)
	fmt.Printf("  skipped:    %d (blank or duplicate)\n", result.Skipped)
	fmt.Printf("  errors:     %d\n", len(result.Errors))
	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "  %s\n", e)
	}
}

func runSeed(cfg *config.Config) {
	if err := database.Connect(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	result, err := seed.Seed()
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed failed: %v\n", err)
		os.Exit(1)
	}

	if result.Existing > 0 {
		fmt.Printf("store already has %d sentences, nothing seeded\n", result.Existing)
		return
	}
	total := 0
	for tier, count := range result.PerTier {
		fmt.Printf("  %s: %d sentences\n", tier, count)
		total += count
	}
	fmt.Printf("seeded %d sentences\n", total)
}

func runRetag(cfg *config.Config) {
	if err := database.Connect(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	result, err := seed.RetagAndAugment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "retag failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("retagged %d sentences to cet6\n", result.Retagged)
	for _, tier := range []string{"cet4", "cet6", "ielts"} {
		fmt.Printf("  %s: %d sentences\n", tier, result.PerTier[tier])
	}
}
