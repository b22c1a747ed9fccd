package handler

import (
	"marketing-portal/internal/core/ports"
	"marketing-portal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// VoiceHandler proxies voice-agent web call creation so the third-party API
// key never reaches the browser.
type VoiceHandler struct {
	voiceSvc ports.VoiceService
	log      zerolog.Logger
}

func NewVoiceHandler(voiceSvc ports.VoiceService, log zerolog.Logger) *VoiceHandler {
	return &VoiceHandler{voiceSvc: voiceSvc, log: log}
}

// CreateWebCall creates a short-lived web call session.
//
//	POST /api/voice/web-call
func (h *VoiceHandler) CreateWebCall(c *gin.Context) {
	// The access token expires seconds after creation; nothing here may be
	// cached.
	c.Header("Cache-Control", "no-store")

	session, err := h.voiceSvc.CreateWebCall(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, session)
}
