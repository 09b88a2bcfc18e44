package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/BrandonKowalski/swipedeck/pkg/swipedeck"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

var logFile = flag.String("debug", "", "Write debug logs to file")

func main() {
	configPath := flag.String("config", "deck.toml", "TOML config file")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")
	stress := flag.Bool("stress", false, "Block the UI thread on a schedule to test animation smoothness")
	versionFlag := flag.Bool("version", false, "print version and exit")

	flag.Parse()

	if *versionFlag {
		fmt.Println("Version:", Version)
		os.Exit(0)
	}

	explicitConfig := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicitConfig = true
		}
	})

	cfg, err := LoadConfig(*configPath, explicitConfig)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if args := flag.Args(); len(args) > 0 {
		cfg.Items = args
	}
	if *logFile != "" {
		cfg.LogPath = *logFile
		cfg.LogLevel = "debug"
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *stress {
		cfg.Stress.Enabled = true
	}

	if err := run(cfg); err != nil {
		swipedeck.GetLogger().Error("swipedeck exited with error", "error", err)
		swipedeck.Close()
		os.Exit(1)
	}
	swipedeck.Close()
}

func run(cfg Config) error {
	if cfg.LogPath != "" {
		swipedeck.SetLogPath(cfg.LogPath)
	}
	swipedeck.SetRawLogLevel(cfg.LogLevel)

	logger := swipedeck.GetLogger()
	logger.Info("swipedeck: Started", "version", Version, "items", len(cfg.Items), "stress", cfg.Stress.Enabled)

	err := swipedeck.Init(swipedeck.Options{
		WindowTitle: cfg.Title,
		WindowOptions: swipedeck.WindowOptions{
			Width:      cfg.Window.Width,
			Height:     cfg.Window.Height,
			Borderless: cfg.Window.Borderless,
			Resizable:  !cfg.Window.Borderless,
		},
		FontPath:        cfg.FontPath,
		TouchDevicePath: cfg.TouchDevice,
		Language:        cfg.Language,
	})
	if err != nil {
		return err
	}

	return newApp(cfg).Run()
}
