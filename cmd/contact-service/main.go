// sentiric-contact-service/cmd/contact-service/main.go
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/sentiric/sentiric-contact-service/internal/app"
	"github.com/sentiric/sentiric-contact-service/internal/config"
	"github.com/sentiric/sentiric-contact-service/internal/logger"
)

var (
	ServiceVersion string
	GitCommit      string
	BuildDate      string
)

const serviceName = "contact-service"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Kritik Hata: Konfigürasyon yüklenemedi: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(serviceName, cfg.Env, cfg.LogLevel)

	log.Info().
		Str("event", logger.EventSystemStartup).
		Dict("attributes", zerolog.Dict().
			Str("version", ServiceVersion).
			Str("commit", GitCommit).
			Str("build_date", BuildDate).
			Str("profile", cfg.Env)).
		Msg("🚀 Sentiric Contact Service başlatılıyor (SUTS v4.0)...")

	application := app.NewApp(cfg, log)
	application.Run()
}
