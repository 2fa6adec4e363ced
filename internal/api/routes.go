package api

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/gsarma/mailgate/notification"
)

func RegisterRoutes(r *gin.Engine, registry *notification.Registry, log zerolog.Logger) {
	h := &Handler{registry: registry, log: log}

	r.GET("/healthz", h.Health)
	r.POST("/v1/:adapter/send", h.Send)
}
