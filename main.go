package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/svera/shareport/internal/webserver"
	"github.com/svera/shareport/internal/webserver/infrastructure"
)

var version string = "unknown"

func main() {
	var cfg Config

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatal().Msg("Error retrieving user home dir")
	}
	if err = cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatal().Err(err).Msg("Error parsing configuration from environment variables")
	}
	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if cfg.DbPath == "" {
		cfg.DbPath = filepath.Join(homeDir, "shareport", "database.db")
	}
	if cfg.BlobPath == "" {
		cfg.BlobPath = filepath.Join(homeDir, "shareport", "blobs")
	}
	for _, dir := range []string{filepath.Dir(cfg.DbPath), cfg.BlobPath} {
		if err = os.MkdirAll(dir, os.ModePerm); err != nil {
			log.Fatal().Err(err).Msgf("Couldn't create %s, exiting", dir)
		}
	}

	run(cfg)
}

func run(cfg Config) {
	db := infrastructure.Connect(cfg.DbPath)

	blobFs := afero.NewBasePathFs(afero.NewOsFs(), cfg.BlobPath)
	blobs := infrastructure.NewBlobStore(blobFs, []byte(cfg.PresignSecret), cfg.BaseURL, cfg.PresignExpiry)

	var sender webserver.Sender = &infrastructure.NoEmail{}
	if cfg.SmtpServer != "" && cfg.SmtpUser != "" && cfg.SmtpPassword != "" {
		sender = &infrastructure.SMTP{
			Server:   cfg.SmtpServer,
			Port:     cfg.SmtpPort,
			User:     cfg.SmtpUser,
			Password: cfg.SmtpPassword,
		}
	}

	webserverConfig := webserver.Config{
		BaseURL:       cfg.BaseURL,
		JwtSecret:     []byte(cfg.JwtSecret),
		PresignExpiry: cfg.PresignExpiry,
	}

	controllers := webserver.SetupControllers(webserverConfig, db, blobs, sender)
	app := webserver.New(webserverConfig, controllers)

	fmt.Printf("Shareport version %s started listening on port %s\n\n", version, cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
