// Package api exposes the sandbox HTTP surface: a thin gin server
// that pushes hand-crafted one-off notifications through a registered
// delivery adapter. It exists for manual end-to-end verification
// against the real provider API and is not part of the library
// surface.
package api

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gsarma/mailgate/notification"
)

type Handler struct {
	registry *notification.Registry
	log      zerolog.Logger
}

type sendRequest struct {
	To          string              `json:"to" binding:"required"`
	Subject     string              `json:"subject" binding:"required"`
	HTML        string              `json:"html" binding:"required"`
	Attachments []attachmentRequest `json:"attachments"`
}

type attachmentRequest struct {
	Filename string `json:"filename" binding:"required"`
	Type     string `json:"type" binding:"required"`
	// Content is the base64-encoded file body.
	Content string `json:"content" binding:"required"`
}

// Send builds a one-off notification from the request body and
// delivers it through the adapter named in the path.
func (h *Handler) Send(c *gin.Context) {
	adapter, err := h.registry.Adapter(c.Param("adapter"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	var body sendRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	n := &notification.Notification{
		ID:           uuid.NewString(),
		EmailOrPhone: &body.To,
	}
	for i, att := range body.Attachments {
		raw, err := base64.StdEncoding.DecodeString(att.Content)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("attachment %d: invalid base64: %v", i, err)})
			return
		}
		n.Attachments = append(n.Attachments, notification.StoredAttachment{
			Filename:    att.Filename,
			ContentType: att.Type,
			Size:        int64(len(raw)),
			File:        notification.NewBytesFile(raw),
		})
	}

	// The sandbox adapter is built with a pass-through renderer that
	// reads subject and html straight from this data map; template
	// rendering proper belongs to the framework.
	data := map[string]any{"subject": body.Subject, "html": body.HTML}

	if err := adapter.Send(c.Request.Context(), n, data); err != nil {
		h.log.Error().Err(err).Str("notification_id", n.ID).Msg("send failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	h.log.Info().Str("notification_id", n.ID).Str("to", body.To).Msg("sent")
	c.JSON(http.StatusOK, gin.H{"notification_id": n.ID, "status": "sent"})
}

// Health reports liveness and the registered adapter keys.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "adapters": h.registry.Keys()})
}
