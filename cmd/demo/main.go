package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"git.sr.ht/~rockorager/easel"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/lmittmann/tint"
)

// config is the demo configuration, merged from config files and flags.
// Flags win.
type config struct {
	Title      string `koanf:"title"`
	Width      int    `koanf:"width"`
	Height     int    `koanf:"height"`
	CardWidth  int    `koanf:"card_width"`
	CardHeight int    `koanf:"card_height"`
	Debug      bool   `koanf:"debug"`
}

func loadConfig() (*config, error) {
	k := koanf.New(".")

	for _, path := range configPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &config{
		Title:      "easel demo",
		Width:      800,
		Height:     600,
		CardWidth:  1000,
		CardHeight: 500,
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// configPaths lists config files in load order, last wins
func configPaths() []string {
	paths := []string{}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "easel", "config.toml"))
	}
	paths = append(paths, "easel.toml")

	return paths
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}

	flag.StringVar(&cfg.Title, "title", cfg.Title, "window title")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "requested window width")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "requested window height")
	flag.IntVar(&cfg.CardWidth, "card-width", cfg.CardWidth, "test card width")
	flag.IntVar(&cfg.CardHeight, "card-height", cfg.CardHeight, "test card height")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		AddSource:  cfg.Debug,
		Level:      level,
		TimeFormat: "15:04:05.000",
	}))

	img := testCard(cfg.CardWidth, cfg.CardHeight)
	err = easel.Show(img, easel.Options{
		Title:  cfg.Title,
		Width:  cfg.Width,
		Height: cfg.Height,
		Logger: log,
	})
	if err != nil {
		log.Error("couldn't display image", "error", err)
		os.Exit(1)
	}
}
