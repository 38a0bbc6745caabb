package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/andyle182810/settingsprobe/fetcher"
	"github.com/andyle182810/settingsprobe/httpclient"
	"github.com/andyle182810/settingsprobe/internal/config"
	"github.com/andyle182810/settingsprobe/logutil"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(os.Stdout, os.Stderr); err != nil {
		log.Fatal().Err(err).Msg("Probe exited with an error")
	}
}

func run(stdout, stderr io.Writer) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	zerolog.SetGlobalLevel(logutil.ParseZerologLevel(cfg.LogLevel))

	logger := logutil.NewLogger(stderr, cfg.LogLevel)
	log.Logger = logger

	client := httpclient.New(httpclient.WithLogger(logger))
	probe := fetcher.New(client, stdout, fetcher.WithLogger(logger))

	outcome := probe.Run(context.Background())

	logger.Info().
		Str("url", probe.URL()).
		Stringer("outcome", outcome).
		Msg("Probe finished")

	return nil
}
