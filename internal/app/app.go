// sentiric-contact-service/internal/app/app.go
package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/sentiric/sentiric-contact-service/internal/channel"
	"github.com/sentiric/sentiric-contact-service/internal/config"
	"github.com/sentiric/sentiric-contact-service/internal/database"
	"github.com/sentiric/sentiric-contact-service/internal/fetch"
	"github.com/sentiric/sentiric-contact-service/internal/server"
	"github.com/sentiric/sentiric-contact-service/internal/service"
	"github.com/sentiric/sentiric-contact-service/internal/store/postgres"
)

type App struct {
	Cfg *config.Config
	Log zerolog.Logger
}

func NewApp(cfg *config.Config, log zerolog.Logger) *App {
	return &App{Cfg: cfg, Log: log}
}

func (a *App) Run() {
	// 1. Altyapı Bağlantısı
	db, err := database.Connect(a.Cfg.DatabaseURL, a.Cfg.MaxDBRetries, a.Log)
	if err != nil {
		a.Log.Fatal().Err(err).Msg("Veritabanı bağlantısı kurulamadı")
	}

	// 2. DI: Store -> Fetcher -> Service -> Channel
	contactStore := postgres.NewStore(db, a.Log)
	defer contactStore.Close()

	fetcher := fetch.NewFetcher(contactStore, a.Log)
	contactService := service.NewContactService(fetcher, contactStore, a.Cfg, a.Log)

	dispatcher := channel.NewDispatcher(a.Log)
	defer dispatcher.Close()
	handler := channel.NewHandler(contactService, dispatcher, a.Log)

	// 3. Sunucu Katmanı
	httpServer := server.NewHTTPServer(a.Cfg.HttpPort, handler, a.Log)
	go func() {
		a.Log.Info().Str("port", a.Cfg.HttpPort).Msg("HTTP sunucusu dinleniyor...")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.Log.Fatal().Err(err).Msg("HTTP sunucusu başlatılamadı")
		}
	}()

	// 4. Graceful Shutdown
	a.waitForShutdown(httpServer)
}

func (a *App) waitForShutdown(httpSrv *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.Log.Warn().Msg("Kapatma sinyali alındı, servisler durduruluyor...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		a.Log.Error().Err(err).Msg("HTTP sunucusu düzgün kapatılamadı.")
	} else {
		a.Log.Info().Msg("HTTP sunucusu durduruldu.")
	}

	a.Log.Info().Msg("Servis başarıyla durduruldu.")
}
