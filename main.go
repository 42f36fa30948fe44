package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/danmichaelo/statusindicator/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	log.Info().Str("version", version).Msg("status indicator starting")

	ui.RunApp(nil, ui.DefaultTotalFrames, log)
}
