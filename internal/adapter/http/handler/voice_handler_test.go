package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketing-portal/internal/core/ports"
	"marketing-portal/internal/core/ports/mocks"
	"marketing-portal/pkg/apperror"
	"marketing-portal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newVoiceTestRouter(t *testing.T) (*gin.Engine, *mocks.MockVoiceService) {
	ctrl := gomock.NewController(t)
	voiceSvc := mocks.NewMockVoiceService(ctrl)
	h := NewVoiceHandler(voiceSvc, logger.NewWithWriter("debug", io.Discard))

	router := gin.New()
	router.POST("/api/voice/web-call", h.CreateWebCall)
	return router, voiceSvc
}

func TestVoiceHandler_CreateWebCall(t *testing.T) {
	router, voiceSvc := newVoiceTestRouter(t)

	voiceSvc.EXPECT().CreateWebCall(gomock.Any()).Return(&ports.WebCallSession{
		AccessToken: "tok_abc",
		CallID:      "call_123",
		AgentName:   "Intake Agent",
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/voice/web-call", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.JSONEq(t, `{"access_token":"tok_abc","call_id":"call_123","agent_name":"Intake Agent"}`, w.Body.String())
}

func TestVoiceHandler_CreateWebCall_NotConfigured(t *testing.T) {
	router, voiceSvc := newVoiceTestRouter(t)

	voiceSvc.EXPECT().CreateWebCall(gomock.Any()).Return(nil, apperror.ErrVoiceNotConfigured())

	req := httptest.NewRequest(http.MethodPost, "/api/voice/web-call", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.JSONEq(t, `{"error":"Voice agent is not configured"}`, w.Body.String())
}
