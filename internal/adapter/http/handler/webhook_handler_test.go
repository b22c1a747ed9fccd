package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketing-portal/config"
	"marketing-portal/internal/core/domain"
	"marketing-portal/internal/core/ports/mocks"
	"marketing-portal/pkg/apperror"
	"marketing-portal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testSecret = "shhh"

var testSource = config.WebhookSource{
	Path:   "website/main-contact-form",
	Secret: testSecret,
}

type webhookTestEnv struct {
	router    *gin.Engine
	ingestSvc *mocks.MockIngestService
	logSvc    *mocks.MockWebhookLogService
}

func newWebhookTestEnv(t *testing.T, source config.WebhookSource) *webhookTestEnv {
	ctrl := gomock.NewController(t)
	ingestSvc := mocks.NewMockIngestService(ctrl)
	logSvc := mocks.NewMockWebhookLogService(ctrl)

	h := NewWebhookHandler(ingestSvc, logSvc, source, logger.NewWithWriter("debug", io.Discard))
	router := gin.New()
	router.POST("/api/webhooks/"+source.Path, h.Handle)

	return &webhookTestEnv{router: router, ingestSvc: ingestSvc, logSvc: logSvc}
}

func (e *webhookTestEnv) do(method, contentType, secret, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/api/webhooks/website/main-contact-form", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if secret != "" {
		req.Header.Set(HeaderWebhookSecret, secret)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestWebhookHandler_MissingSecret(t *testing.T) {
	env := newWebhookTestEnv(t, testSource)

	env.logSvc.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, entry *domain.WebhookLog) {
			assert.Equal(t, "website/main-contact-form", entry.WebhookPath)
			assert.Equal(t, http.MethodPost, entry.Method)
			assert.Equal(t, http.StatusUnauthorized, entry.StatusCode)
			require.NotNil(t, entry.ErrorMessage)
			assert.Equal(t, "Invalid or missing x-webhook-secret", *entry.ErrorMessage)
			assert.Empty(t, entry.RequestBody)
			assert.Nil(t, entry.LeadID)
		})

	w := env.do(http.MethodPost, "application/json", "", `{"email":"a@b.com"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
}

func TestWebhookHandler_WrongSecret(t *testing.T) {
	env := newWebhookTestEnv(t, testSource)

	env.logSvc.EXPECT().Record(gomock.Any(), gomock.Any())

	w := env.do(http.MethodPost, "application/json", "wrong", `{"email":"a@b.com"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
}

func TestWebhookHandler_JSONSuccess(t *testing.T) {
	env := newWebhookTestEnv(t, testSource)

	leadID := uuid.New()
	env.ingestSvc.EXPECT().
		IngestLead(gomock.Any(), "website/main-contact-form", domain.WebhookLeadInput{
			FirstName: "Jane",
			LastName:  "Public",
			Email:     "jane@example.com",
		}).
		Return(&domain.Lead{ID: leadID, FirstName: "Jane", Email: "jane@example.com"}, nil)

	env.logSvc.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, entry *domain.WebhookLog) {
			assert.Equal(t, http.StatusCreated, entry.StatusCode)
			assert.Nil(t, entry.ErrorMessage)
			require.NotNil(t, entry.LeadID)
			assert.Equal(t, leadID, *entry.LeadID)
			assert.Equal(t, "Jane", entry.RequestBody["first_name"])
			assert.Equal(t, true, entry.ResponseBody["success"])
		})

	w := env.do(http.MethodPost, "application/json", testSecret,
		`{"first_name":"Jane","last_name":"Public","email":"jane@example.com"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
}

func TestWebhookHandler_FormSuccessWithAliases(t *testing.T) {
	env := newWebhookTestEnv(t, testSource)

	env.ingestSvc.EXPECT().
		IngestLead(gomock.Any(), "website/main-contact-form", domain.WebhookLeadInput{
			FirstName: "Jane",
			Email:     "jane@example.com",
			Phone:     "555-0101",
		}).
		Return(&domain.Lead{ID: uuid.New()}, nil)

	env.logSvc.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, entry *domain.WebhookLog) {
			assert.Equal(t, http.StatusCreated, entry.StatusCode)
			assert.Equal(t, "Jane", entry.RequestBody["first-name"])
			assert.Equal(t, "jane@example.com", entry.RequestBody["your-email"])
		})

	w := env.do(http.MethodPost, "application/x-www-form-urlencoded", testSecret,
		"first-name=Jane&your-email=jane%40example.com&Phone=555-0101")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
}

func TestWebhookHandler_UnsupportedMediaType(t *testing.T) {
	env := newWebhookTestEnv(t, testSource)

	env.logSvc.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, entry *domain.WebhookLog) {
			assert.Equal(t, http.StatusUnsupportedMediaType, entry.StatusCode)
			assert.Empty(t, entry.RequestBody)
		})

	w := env.do(http.MethodPost, "text/plain", testSecret, "hello")
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	assert.JSONEq(t, `{"error":"Content-Type must be application/json or application/x-www-form-urlencoded"}`, w.Body.String())
}

func TestWebhookHandler_ContentTypeWithCharset(t *testing.T) {
	env := newWebhookTestEnv(t, testSource)

	env.ingestSvc.EXPECT().
		IngestLead(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.Lead{ID: uuid.New()}, nil)
	env.logSvc.EXPECT().Record(gomock.Any(), gomock.Any())

	w := env.do(http.MethodPost, "application/json; charset=utf-8", testSecret, `{"email":"a@b.com"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestWebhookHandler_InvalidJSON(t *testing.T) {
	env := newWebhookTestEnv(t, testSource)

	env.logSvc.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, entry *domain.WebhookLog) {
			assert.Equal(t, http.StatusBadRequest, entry.StatusCode)
			require.NotNil(t, entry.ErrorMessage)
		})

	w := env.do(http.MethodPost, "application/json", testSecret, `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid request body"}`, w.Body.String())
}

func TestWebhookHandler_NonStringJSONValue(t *testing.T) {
	env := newWebhookTestEnv(t, testSource)

	env.logSvc.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, entry *domain.WebhookLog) {
			assert.Equal(t, http.StatusBadRequest, entry.StatusCode)
			// The decoded payload is still audited.
			assert.Equal(t, float64(42), entry.RequestBody["first_name"])
		})

	w := env.do(http.MethodPost, "application/json", testSecret, `{"first_name":42,"email":"a@b.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid request body"}`, w.Body.String())
}

func TestWebhookHandler_NullJSONValueIgnored(t *testing.T) {
	env := newWebhookTestEnv(t, testSource)

	env.ingestSvc.EXPECT().
		IngestLead(gomock.Any(), "website/main-contact-form", domain.WebhookLeadInput{
			Email: "a@b.com",
		}).
		Return(&domain.Lead{ID: uuid.New()}, nil)
	env.logSvc.EXPECT().Record(gomock.Any(), gomock.Any())

	w := env.do(http.MethodPost, "application/json", testSecret, `{"phone":null,"email":"a@b.com"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestWebhookHandler_EmailRequired(t *testing.T) {
	env := newWebhookTestEnv(t, testSource)

	env.ingestSvc.EXPECT().
		IngestLead(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrEmailRequired())

	env.logSvc.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, entry *domain.WebhookLog) {
			assert.Equal(t, http.StatusBadRequest, entry.StatusCode)
			require.NotNil(t, entry.ErrorMessage)
			assert.Equal(t, "Email is required.", *entry.ErrorMessage)
			assert.Nil(t, entry.LeadID)
		})

	w := env.do(http.MethodPost, "application/json", testSecret, `{"first_name":"Jane"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Email is required."}`, w.Body.String())
}

func TestWebhookHandler_StorageError(t *testing.T) {
	env := newWebhookTestEnv(t, testSource)

	env.ingestSvc.EXPECT().
		IngestLead(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrStorage(errors.New("connection refused")))

	env.logSvc.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, entry *domain.WebhookLog) {
			assert.Equal(t, http.StatusInternalServerError, entry.StatusCode)
			require.NotNil(t, entry.ErrorMessage)
			assert.Equal(t, "connection refused", *entry.ErrorMessage)
		})

	w := env.do(http.MethodPost, "application/json", testSecret, `{"email":"a@b.com"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"connection refused"}`, w.Body.String())
}

func TestWebhookHandler_NoSecretConfigured(t *testing.T) {
	env := newWebhookTestEnv(t, config.WebhookSource{Path: "website/main-contact-form"})

	env.ingestSvc.EXPECT().
		IngestLead(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.Lead{ID: uuid.New()}, nil)
	env.logSvc.EXPECT().Record(gomock.Any(), gomock.Any())

	w := env.do(http.MethodPost, "application/json", "", `{"email":"a@b.com"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}
