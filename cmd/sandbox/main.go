// sandbox runs a local send server for verifying the SendGrid adapter
// end to end. It registers the adapter with an in-memory backend and a
// pass-through renderer, then accepts one-off send requests over HTTP.
//
// Usage:
//
//	SENDGRID_API_KEY=... FROM_EMAIL=no-reply@myapp.com go run ./cmd/sandbox
//
//	curl -X POST localhost:8080/v1/sendgrid/send \
//	  -d '{"to":"you@example.com","subject":"Hello","html":"<p>Hi</p>"}'
package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"

	"github.com/gsarma/mailgate/internal/api"
	"github.com/gsarma/mailgate/notification"
	"github.com/gsarma/mailgate/sendgrid"
)

type config struct {
	APIKey    string `envconfig:"SENDGRID_API_KEY" required:"true"`
	FromEmail string `envconfig:"FROM_EMAIL" required:"true"`
	FromName  string `envconfig:"FROM_NAME"`
	Port      string `envconfig:"PORT" default:"8080"`
	Debug     bool   `envconfig:"DEBUG"`
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var cfg config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatal().Err(err).Msg("invalid environment")
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		gin.SetMode(gin.ReleaseMode)
	}

	// Subject and body arrive with each request; the renderer just
	// lifts them out of the send data.
	renderer := notification.RendererFunc(func(_ context.Context, _ *notification.Notification, data map[string]any) (notification.RenderedTemplate, error) {
		subject, _ := data["subject"].(string)
		html, _ := data["html"].(string)
		return notification.RenderedTemplate{Subject: subject, HTML: html}, nil
	})

	adapter, err := sendgrid.New(sendgrid.Config{
		APIKey:    cfg.APIKey,
		FromEmail: cfg.FromEmail,
		FromName:  cfg.FromName,
	}, renderer, sendgrid.WithLogger(log))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build sendgrid adapter")
	}

	registry := notification.NewRegistry()
	if err := registry.Register(adapter); err != nil {
		log.Fatal().Err(err).Msg("failed to register adapter")
	}
	registry.AttachBackend(notification.NewMemoryBackend())

	router := gin.Default()
	api.RegisterRoutes(router, registry, log)

	log.Info().Str("port", cfg.Port).Msg("sandbox listening")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
