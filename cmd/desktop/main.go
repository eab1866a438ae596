package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"octcalc/pkg/config"
	"octcalc/pkg/logging"
	"octcalc/pkg/translator"
	"octcalc/pkg/utils"
)

const exampleSource = `Start
  Array 7.0 17 1.4,2.0
  AB123 = [7.0 + 1.0] * 2.0 ** 2.0
End
`

func main() {
	cfgFile := flag.String("config", "", "config file, .toml or .yaml")
	logLevel := flag.String("log-level", "", "log level (debug, info, warn, error)")
	flag.Parse()

	var (
		cfg *config.Config
		err error
	)
	if *cfgFile != "" {
		cfg, err = config.Load(*cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	bootLog := logging.New(os.Stderr, "desktop", "info", "console")
	if err != nil {
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	logger := logging.New(os.Stderr, "desktop", cfg.Log.Level, cfg.Log.Format)

	src := exampleSource
	if flag.NArg() > 0 {
		if src, _, err = utils.ReadSource(flag.Arg(0), os.Stdin); err != nil {
			logger.Fatal().Err(err).Msg("failed to read source file")
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Desktop.Width, cfg.Desktop.Height)
	ebiten.SetWindowTitle(cfg.Desktop.Title)

	game := NewGame(src, translator.New(logger), logger, cfg.Desktop.Width, cfg.Desktop.Height)
	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal().Err(err).Msg("window closed with error")
	}
}
