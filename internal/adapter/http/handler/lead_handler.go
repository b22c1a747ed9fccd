package handler

import (
	"marketing-portal/internal/adapter/http/dto"
	"marketing-portal/internal/core/ports"
	"marketing-portal/pkg/apperror"
	"marketing-portal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// LeadHandler serves dashboard lead operations.
type LeadHandler struct {
	leadSvc ports.LeadService
	log     zerolog.Logger
}

func NewLeadHandler(leadSvc ports.LeadService, log zerolog.Logger) *LeadHandler {
	return &LeadHandler{leadSvc: leadSvc, log: log}
}

// List returns all leads, newest first.
//
//	GET /api/leads
func (h *LeadHandler) List(c *gin.Context) {
	leads, err := h.leadSvc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, leads)
}

// Create inserts a manually entered lead.
//
//	POST /api/leads
func (h *LeadHandler) Create(c *gin.Context) {
	var req dto.ManualLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidBody(err))
		return
	}

	_, err := h.leadSvc.CreateManual(c.Request.Context(), ports.ManualLeadInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c)
}
