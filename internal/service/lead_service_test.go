package service

import (
	"context"
	"errors"
	"testing"

	"marketing-portal/internal/core/domain"
	"marketing-portal/internal/core/ports"
	"marketing-portal/internal/core/ports/mocks"
	"marketing-portal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLeadService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockLeadRepository(ctrl)
	svc := NewLeadService(repo)

	expected := []domain.Lead{{FirstName: "Jane", Email: "jane@example.com"}}
	repo.EXPECT().List(gomock.Any()).Return(expected, nil)

	leads, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expected, leads)
}

func TestLeadService_List_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockLeadRepository(ctrl)
	svc := NewLeadService(repo)

	repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("query failed"))

	leads, err := svc.List(context.Background())
	require.Error(t, err)
	assert.Nil(t, leads)
}

func TestLeadService_CreateManual(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockLeadRepository(ctrl)
	svc := NewLeadService(repo)

	repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, lead *domain.Lead) error {
			assert.Equal(t, "Jane", lead.FirstName)
			assert.Equal(t, "Public", lead.LastName)
			assert.Equal(t, "jane@example.com", lead.Email)
			assert.Equal(t, domain.WebhookPathManual, lead.WebhookPath)
			return nil
		})

	lead, err := svc.CreateManual(context.Background(), ports.ManualLeadInput{
		FirstName: " Jane ",
		LastName:  "Public",
		Email:     "jane@example.com",
	})
	require.NoError(t, err)
	require.NotNil(t, lead)
	assert.Equal(t, domain.WebhookPathManual, lead.WebhookPath)
}

func TestLeadService_CreateManual_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockLeadRepository(ctrl)
	svc := NewLeadService(repo)

	tests := []struct {
		name  string
		input ports.ManualLeadInput
	}{
		{"missing first name", ports.ManualLeadInput{LastName: "Public", Email: "j@e.com"}},
		{"missing last name", ports.ManualLeadInput{FirstName: "Jane", Email: "j@e.com"}},
		{"missing email", ports.ManualLeadInput{FirstName: "Jane", LastName: "Public"}},
		{"whitespace only", ports.ManualLeadInput{FirstName: "  ", LastName: "Public", Email: "j@e.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lead, err := svc.CreateManual(context.Background(), tt.input)
			require.Error(t, err)
			assert.Nil(t, lead)

			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, 400, appErr.HTTPStatus)
		})
	}
}
