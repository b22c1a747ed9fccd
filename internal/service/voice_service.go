package service

import (
	"context"

	"marketing-portal/internal/adapter/voice/retell"
	"marketing-portal/internal/core/ports"
	"marketing-portal/pkg/apperror"

	"github.com/rs/zerolog"
)

// WebCallCreator is the slice of the voice client this service uses.
type WebCallCreator interface {
	CreateWebCall(ctx context.Context, agentID string) (*retell.WebCall, error)
}

// VoiceServiceImpl implements ports.VoiceService. It is a pass-through to the
// voice API: a configuration-presence check, one upstream call, error mapping.
type VoiceServiceImpl struct {
	client  WebCallCreator // nil = voice not configured
	agentID string
	log     zerolog.Logger
}

// NewVoiceService creates a new VoiceServiceImpl. Pass a nil client to
// disable the proxy (requests then fail with a configuration error).
func NewVoiceService(client WebCallCreator, agentID string, log zerolog.Logger) *VoiceServiceImpl {
	return &VoiceServiceImpl{client: client, agentID: agentID, log: log}
}

// CreateWebCall creates a voice session for the configured agent.
func (s *VoiceServiceImpl) CreateWebCall(ctx context.Context) (*ports.WebCallSession, error) {
	if s.client == nil || s.agentID == "" {
		return nil, apperror.ErrVoiceNotConfigured()
	}

	call, err := s.client.CreateWebCall(ctx, s.agentID)
	if err != nil {
		s.log.Error().Err(err).Msg("voice: create web call failed")
		return nil, apperror.ErrVoiceCallFailed(err)
	}

	return &ports.WebCallSession{
		AccessToken: call.AccessToken,
		CallID:      call.CallID,
		AgentName:   call.AgentName,
	}, nil
}
