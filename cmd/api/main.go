package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/khata/internal/cashbook"
	cashbookStore "github.com/MrJamesThe3rd/khata/internal/cashbook/store"
	"github.com/MrJamesThe3rd/khata/internal/config"
	"github.com/MrJamesThe3rd/khata/internal/database"
	"github.com/MrJamesThe3rd/khata/internal/document"
	docStore "github.com/MrJamesThe3rd/khata/internal/document/store"
	"github.com/MrJamesThe3rd/khata/internal/duty"
	dutyStore "github.com/MrJamesThe3rd/khata/internal/duty/store"
	khataHttp "github.com/MrJamesThe3rd/khata/internal/http"
	cashbookHandler "github.com/MrJamesThe3rd/khata/internal/http/cashbook"
	documentHandler "github.com/MrJamesThe3rd/khata/internal/http/document"
	dutyHandler "github.com/MrJamesThe3rd/khata/internal/http/duty"
	stockHandler "github.com/MrJamesThe3rd/khata/internal/http/stock"
	"github.com/MrJamesThe3rd/khata/internal/logging"
	"github.com/MrJamesThe3rd/khata/internal/party"
	partyStore "github.com/MrJamesThe3rd/khata/internal/party/store"
	"github.com/MrJamesThe3rd/khata/internal/stock"
	stockStore "github.com/MrJamesThe3rd/khata/internal/stock/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(logging.New(cfg, os.Stdout))

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	var (
		stockService    = stock.NewService(stockStore.New(db))
		dutyService     = duty.NewService(dutyStore.New(db))
		partyService    = party.NewService(partyStore.New(db))
		cashbookService = cashbook.NewService(cashbookStore.New(db))
		documentService = document.NewService(
			docStore.New(db),
			stockService,
			dutyService,
			partyService,
			cashbookService,
		)
	)

	var (
		documentH = documentHandler.NewHandler(documentService)
		dutyH     = dutyHandler.NewHandler(dutyService)
		stockH    = stockHandler.NewHandler(stockService)
		cashbookH = cashbookHandler.NewHandler(cashbookService)
	)

	router := khataHttp.New(khataHttp.Options{
		AllowedOrigins:     cfg.Server.CORSAllowedOrigins,
		RateLimitPerMinute: cfg.Server.RateLimitPerMinute,
	}, documentH, dutyH, stockH, cashbookH)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "app", cfg.App.Name, "addr", srv.Addr)

	if err := srv.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
