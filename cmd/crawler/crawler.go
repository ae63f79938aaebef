package main

import (
	"code/application"
	"code/core"
	"code/infrastructure/clients"
	"code/infrastructure/loggers"
	"code/infrastructure/scrapers"
	"code/infrastructure/settings"
	"code/infrastructure/stores"
	"code/infrastructure/watchers"
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
)

var (
	logger       core.Logger
	webClient    core.WebClient
	scraper      core.OhioCodeScraper
	outputStores []core.OutputStore
)

func main() {
	Crawl()
}

func Crawl() {
	mySettings, err := settings.GetSettings()
	if err != nil {
		log.Fatalf("error getting settings: %v\n", err)
	}
	multiLogger, err := loggers.InitializeMultiLogger(mySettings.DoLogToStdout, mySettings.LogLevel)
	if err != nil {
		log.Fatalf("error initializing logger: %v\n", err)
	}
	runID := uuid.NewString()
	logger = multiLogger.WithField("variant", mySettings.Variant).WithField("run", runID)

	interruptWatcher := watchers.InitializeInterruptWatcher()
	interruptWatcher.StartBackgroundWatcher()
	ctx, cancel := interruptWatcher.WithContext(context.Background())
	defer cancel()

	fileStore, err := stores.InitializeLocalFileStore(mySettings.OutputDir)
	if err != nil {
		logger.Fatal("error initializing output dir: %v", err)
	}
	outputStores = []core.OutputStore{fileStore}
	if mySettings.BucketName != "" {
		s3Helper, err := stores.InitializeS3Helper(ctx, mySettings.BucketName, mySettings.OutputPathPrefix, mySettings.ContextTimeout, mySettings.LocalEndpoint)
		if err != nil {
			logger.Fatal("error initializing s3: %v", err)
		}
		outputStores = append(outputStores, s3Helper)
	}

	if webClient, err = clients.InitializeHTTPClientHelper(mySettings.RequestTimeout, mySettings.RateLimit, logger); err != nil {
		logger.Fatal("error initializing client: %v", err)
	}
	if scraper, err = scrapers.InitializeScraper(mySettings.BaseURL); err != nil {
		logger.Fatal("error initializing scraper: %v", err)
	}

	cfg := application.TraversalConfig{
		RunID:        runID,
		BaseURL:      mySettings.BaseURL,
		RootPath:     mySettings.RootPath,
		FetchContent: mySettings.FetchContent,
	}
	logger.Info("starting scraper, fetch-content=%v rate-limit=%v", cfg.FetchContent, mySettings.RateLimit)
	titles, _, err := application.ScrapeOhioRevisedCode(ctx, cfg, webClient, scraper, interruptWatcher, logger)
	if errors.Is(err, application.ErrInterrupted) {
		logger.Fatal("interrupted, nothing written to '%s'", mySettings.OutputPath())
	}
	if err != nil {
		logger.Fatal("error on scrape: %v", err)
	}

	// the output must not be cut short by a late interrupt
	if err := application.WriteLegislation(context.WithoutCancel(ctx), titles, mySettings.OutputFile, outputStores, logger); err != nil {
		logger.Fatal("error on writing legislation: %v", err)
	}
	logger.Info("data saved to %s", mySettings.OutputPath())
}
