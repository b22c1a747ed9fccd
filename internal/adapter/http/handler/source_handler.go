package handler

import (
	"marketing-portal/internal/core/ports"
	"marketing-portal/pkg/apperror"
	"marketing-portal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// SourceHandler serves the configured lead sources.
type SourceHandler struct {
	sourceRepo ports.SourceRepository
	log        zerolog.Logger
}

func NewSourceHandler(sourceRepo ports.SourceRepository, log zerolog.Logger) *SourceHandler {
	return &SourceHandler{sourceRepo: sourceRepo, log: log}
}

// List returns all known lead sources.
//
//	GET /api/sources
func (h *SourceHandler) List(c *gin.Context) {
	sources, err := h.sourceRepo.List(c.Request.Context())
	if err != nil {
		response.Error(c, apperror.ErrStorage(err))
		return
	}
	response.OK(c, sources)
}
