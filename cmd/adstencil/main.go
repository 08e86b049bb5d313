// AdStencil renders marketing creatives from a declarative scene.
//
// Usage:
//
//	adstencil [-scenes <path>] [-data <path>] [-out <dir>]
//	adstencil list [-scenes <path>]
//	adstencil init [-scenes <path>] [-data <path>]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/rafsoft/adstencil/internal/config"
	"github.com/rafsoft/adstencil/pkg/assets"
	"github.com/rafsoft/adstencil/pkg/scene"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := newLogger(cfg)

	args := os.Args[1:]
	cmd := ""
	if len(args) > 0 {
		cmd = args[0]
	}

	switch cmd {
	case "init":
		err = runInit(cfg, args[1:])
	case "list":
		err = runList(cfg, args[1:])
	case "help", "-h", "--help":
		printUsage()
	default:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		err = run(ctx, cfg, logger, args)
	}

	if err != nil {
		logger.Error("adstencil failed", "err", err)
		os.Exit(1)
	}
}

func newLogger(cfg config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("adstencil", flag.ExitOnError)
	fs.StringVar(&cfg.ScenePath, "scenes", cfg.ScenePath, "Scene JSON or .zip bundle")
	fs.StringVar(&cfg.DataPath, "data", cfg.DataPath, "Copy overrides JSON (optional)")
	fs.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "Output directory")
	fs.Usage = printUsage
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, cleanup, err := scene.Load(cfg.ScenePath)
	if err != nil {
		return fmt.Errorf("load scene: %w", err)
	}
	defer cleanup()
	if err := scene.Validate(s); err != nil {
		return fmt.Errorf("invalid scene %s: %w", cfg.ScenePath, err)
	}

	var data *scene.DataSpec
	if cfg.DataPath != "" {
		var warnings []string
		data, warnings, err = scene.LoadData(cfg.DataPath)
		if err != nil {
			return fmt.Errorf("load copy: %w", err)
		}
		warnings = append(warnings, scene.ValidateData(data, s)...)
		for _, w := range warnings {
			logger.Warn(w)
		}
	}

	store := assets.NewStore(logger)
	if err := store.LoadAll(s.Assets); err != nil {
		return err
	}

	composer, err := scene.NewComposer(scene.Options{
		Assets: store,
		Theme:  s.Theme,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("theme: %w", err)
	}

	logger.Info("rendering scene", "scene", s.Meta.Name, "variants", len(s.Variants),
		"out", cfg.OutputDir, "concurrency", cfg.MaxConcurrent)
	results := scene.RenderAll(ctx, composer, s.Variants, scene.BatchOptions{
		OutputDir:     cfg.OutputDir,
		MaxConcurrent: cfg.MaxConcurrent,
		Data:          data,
		Logger:        logger,
	})
	for _, r := range results {
		if r.Err == nil {
			fmt.Printf("Saved: %s\n", r.Path)
		}
	}
	return scene.Errors(results)
}

func runList(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	fs.StringVar(&cfg.ScenePath, "scenes", cfg.ScenePath, "Scene JSON or .zip bundle")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, cleanup, err := scene.Load(cfg.ScenePath)
	if err != nil {
		return err
	}
	defer cleanup()

	fmt.Print(scene.FormatVariants(s))
	return nil
}

func runInit(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	sceneOut := cfg.ScenePath
	dataOut := cfg.DataPath
	if dataOut == "" {
		dataOut = "data.json"
	}
	fs.StringVar(&sceneOut, "scenes", sceneOut, "Output path for the sample scene")
	fs.StringVar(&dataOut, "data", dataOut, "Output path for the sample copy file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	for _, p := range []string{sceneOut, dataOut} {
		if _, err := os.Stat(p); err == nil {
			return fmt.Errorf("%s already exists", p)
		} else if !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}

	sceneJSON, dataJSON := scene.ExampleJSON()
	if err := os.MkdirAll(filepath.Dir(sceneOut), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(sceneOut, []byte(sceneJSON), 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	if err := os.WriteFile(dataOut, []byte(dataJSON), 0644); err != nil {
		return fmt.Errorf("write copy: %w", err)
	}

	fmt.Printf("Created: %s, %s\n", sceneOut, dataOut)
	fmt.Println("Add assets/logo.png, assets/whatsapp_chat.png, assets/app_home.png")
	fmt.Println("and fonts/DejaVuSans.ttf (stars and check marks), then run:")
	fmt.Printf("    adstencil -scenes %s -data %s\n", sceneOut, dataOut)
	return nil
}

func printUsage() {
	fmt.Print(`AdStencil - Deterministic creative compositing

USAGE:
    adstencil [-scenes <path>] [-data <path>] [-out <dir>]
    adstencil list [-scenes <path>]
    adstencil init [-scenes <path>] [-data <path>]

RENDER:
    -scenes <path>    Scene JSON or .zip bundle   (env ADSTENCIL_SCENES, default scene.json)
    -data <path>      Copy overrides JSON         (env ADSTENCIL_DATA)
    -out <dir>        Output directory            (env ADSTENCIL_OUTPUT_DIR, default out)

    Every variant is written as <name>_<W>x<H>.png (or .jpg).
    ADSTENCIL_MAX_CONCURRENT renders that many variants at once.

ENVIRONMENT:
    LOG_LEVEL         debug, info, warn, error (default info)
    LOG_FORMAT        text or json (default text)
    A .env file in the working directory is loaded first.

EXAMPLES:
    adstencil init
    adstencil list
    adstencil -scenes creatives.zip -data copy_pt.json -out dist
`)
}
