package main

import (
	"cmp"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/apm-labs/portfolio-service/internal/api"
	"github.com/apm-labs/portfolio-service/internal/config"
	"github.com/apm-labs/portfolio-service/internal/ledger"
	"github.com/apm-labs/portfolio-service/internal/logger"
	"github.com/apm-labs/portfolio-service/internal/portfolio"
	"github.com/apm-labs/portfolio-service/internal/postgres"
	"github.com/apm-labs/portfolio-service/internal/quotes"
	"github.com/apm-labs/portfolio-service/internal/server"
	"github.com/joho/godotenv"
	"github.com/russianinvestments/invest-api-go-sdk/investgo"
)

const (
	_serviceCfgFilePath = "./configs/config.yaml"
	_investCfgFilePath  = "./configs/invest.yaml"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("can't detect .env file")
	}

	cfgPath := cmp.Or(os.Getenv("CONFIG_PATH"), _serviceCfgFilePath)
	cfg, err := config.LoadServiceConfig(cfgPath)
	if err != nil {
		log.Fatalf("%s: can't load service cfg", err)
	}

	zapLogger, loggerSync, err := logger.NewZapLogger(cfg.LoggerLevel())
	if err != nil {
		log.Fatalf("%s: can't init logger", err)
	}
	defer loggerSync()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pgConfig := postgres.NewConfigFromEnv().Setup()
	zapLogger.Debugf("trying to connect to db with: %s", pgConfig)
	db, err := postgres.NewDB(pgConfig)
	if err != nil {
		zapLogger.Fatalf("%s: can't connect to db", err)
	}

	tradeLedger := ledger.NewPostgresLedger(db, zapLogger)
	if err := tradeLedger.Migrate(ctx); err != nil {
		zapLogger.Fatalf("%s: can't migrate trades schema", err)
	}

	quoteService, err := newQuoteService(ctx, cfg.Quotes, zapLogger)
	if err != nil {
		zapLogger.Fatalf("%s: can't create quote service", err)
	}

	portfolioService := portfolio.NewService(
		tradeLedger, quoteService, cfg.Portfolio.Currency, zapLogger, nil,
	)

	handler := api.NewRouter(portfolioService, zapLogger)
	srv := server.NewHTTPServer(ctx, cfg.Server.Port, handler)

	zapLogger.Infof("listening on :%s with %s quotes", cfg.Server.Port, cfg.Quotes.Provider)
	if err := srv.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zapLogger.Fatalf("%s: server failed", err)
	}

	zapLogger.Infoln("server stopped")
}

func newQuoteService(ctx context.Context, cfg config.QuotesConfig, zapLogger logger.Logger) (quotes.Service, error) {
	switch cfg.Provider {
	case config.TInvest:
		investCfg, err := config.LoadInvestConfig(_investCfgFilePath)
		if err != nil {
			return nil, err
		}
		investClient, err := investgo.NewClient(ctx, investCfg, zapLogger)
		if err != nil {
			return nil, err
		}
		return quotes.NewInvestService(investClient, zapLogger), nil
	case config.Static:
		return quotes.NewStaticService(), nil
	default:
		return quotes.NewMarketEngineService(cfg.MarketEngine, zapLogger), nil
	}
}
