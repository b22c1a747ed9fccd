package service

import (
	"context"
	"errors"
	"testing"

	"marketing-portal/internal/adapter/voice/retell"
	"marketing-portal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWebCallCreator struct {
	call        *retell.WebCall
	err         error
	gotAgentID  string
	invocations int
}

func (f *fakeWebCallCreator) CreateWebCall(_ context.Context, agentID string) (*retell.WebCall, error) {
	f.invocations++
	f.gotAgentID = agentID
	return f.call, f.err
}

func TestVoiceService_CreateWebCall(t *testing.T) {
	creator := &fakeWebCallCreator{
		call: &retell.WebCall{
			AccessToken: "tok_abc",
			CallID:      "call_123",
			AgentName:   "Intake Agent",
		},
	}
	svc := NewVoiceService(creator, "agent_1", testLogger())

	session, err := svc.CreateWebCall(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok_abc", session.AccessToken)
	assert.Equal(t, "call_123", session.CallID)
	assert.Equal(t, "Intake Agent", session.AgentName)
	assert.Equal(t, "agent_1", creator.gotAgentID)
	assert.Equal(t, 1, creator.invocations)
}

func TestVoiceService_CreateWebCall_NotConfigured(t *testing.T) {
	svc := NewVoiceService(nil, "", testLogger())

	session, err := svc.CreateWebCall(context.Background())
	require.Error(t, err)
	assert.Nil(t, session)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Voice agent is not configured", appErr.Message)
}

func TestVoiceService_CreateWebCall_UpstreamError(t *testing.T) {
	creator := &fakeWebCallCreator{err: errors.New("upstream 500")}
	svc := NewVoiceService(creator, "agent_1", testLogger())

	session, err := svc.CreateWebCall(context.Background())
	require.Error(t, err)
	assert.Nil(t, session)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Failed to create web call", appErr.Message)
	assert.Equal(t, 500, appErr.HTTPStatus)
}
