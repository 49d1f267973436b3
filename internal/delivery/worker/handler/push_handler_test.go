package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "giftshop/internal/delivery/context"
	domainerrors "giftshop/internal/domain/errors"
	"giftshop/internal/domain/service"
	"giftshop/internal/usecase"
	mockUsecase "giftshop/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(uc usecase.NotificationUsecase) *PushHandler {
	return &PushHandler{
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		notificationUC: uc,
		validateToken:  idtoken.Validate,
	}
}

func pushBody(t *testing.T, event service.OrderEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/local/subscriptions/order-events"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(t *testing.T, h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := service.OrderEvent{
		EventID: "evt-1",
		Type:    service.OrderEventPlaced,
		OrderID: "5f0c1e0e-8a4e-4a3b-9d61-1b7a8c6c2d10",
		UserID:  "1c1d1f3e-3f5b-4b0e-8f0a-2c6f5a9e7d11",
		Status:  "pending",
	}

	tests := []struct {
		name       string
		body       func(t *testing.T) string
		setupMock  func(m *mockUsecase.MockNotificationUsecase)
		wantStatus int
	}{
		{
			name: "delivers event to the usecase",
			body: func(t *testing.T) string { return pushBody(t, event, map[string]string{"request_id": "req-42"}) },
			setupMock: func(m *mockUsecase.MockNotificationUsecase) {
				m.EXPECT().
					NotifyOrderEvent(mock.MatchedBy(func(ctx context.Context) bool {
						return deliverycontext.GetRequestIDFromContext(ctx) == "req-42"
					}), mock.MatchedBy(func(e *service.OrderEvent) bool {
						return e.EventID == "evt-1" && e.OrderID == event.OrderID
					})).
					Return(&usecase.NotificationResult{Devices: 2, Sent: 2}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "storage failure asks for redelivery",
			body: func(t *testing.T) string { return pushBody(t, event, nil) },
			setupMock: func(m *mockUsecase.MockNotificationUsecase) {
				m.EXPECT().
					NotifyOrderEvent(mock.Anything, mock.Anything).
					Return(nil, errors.New("connection refused")).
					Once()
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name: "application error is acknowledged",
			body: func(t *testing.T) string { return pushBody(t, event, nil) },
			setupMock: func(m *mockUsecase.MockNotificationUsecase) {
				m.EXPECT().
					NotifyOrderEvent(mock.Anything, mock.Anything).
					Return(nil, domainerrors.ErrValidationFailed.WrapMessage("invalid user id")).
					Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "undecodable data is rejected",
			body:       func(t *testing.T) string { return `{"message":{"data":"not base64!"}}` },
			setupMock:  func(m *mockUsecase.MockNotificationUsecase) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "malformed event is rejected",
			body: func(t *testing.T) string {
				return `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("{not json")) + `"}}`
			},
			setupMock:  func(m *mockUsecase.MockNotificationUsecase) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUsecase.NewMockNotificationUsecase(t)
			tt.setupMock(uc)

			rec := servePush(t, newTestPushHandler(uc), tt.body(t), nil)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_VerifyPushAuth(t *testing.T) {
	event := service.OrderEvent{EventID: "evt-2", Type: service.OrderEventCanceled, UserID: "u"}

	t.Run("missing token is unauthorized", func(t *testing.T) {
		uc := mockUsecase.NewMockNotificationUsecase(t)
		h := newTestPushHandler(uc)
		h.verifyPushAuth = true

		rec := servePush(t, h, pushBody(t, event, nil), nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("foreign issuer is unauthorized", func(t *testing.T) {
		uc := mockUsecase.NewMockNotificationUsecase(t)
		h := newTestPushHandler(uc)
		h.verifyPushAuth = true
		h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "signed", token)
			assert.Equal(t, "http://example.com/push", audience)

			return &idtoken.Payload{Issuer: "https://evil.example"}, nil
		}

		header := http.Header{"Authorization": []string{"Bearer signed"}}
		rec := servePush(t, h, pushBody(t, event, nil), header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("google token passes", func(t *testing.T) {
		uc := mockUsecase.NewMockNotificationUsecase(t)
		uc.EXPECT().
			NotifyOrderEvent(mock.Anything, mock.Anything).
			Return(&usecase.NotificationResult{}, nil).
			Once()

		h := newTestPushHandler(uc)
		h.verifyPushAuth = true
		h.validateToken = func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{
				Issuer: "https://accounts.google.com",
				Claims: map[string]any{"email_verified": true},
			}, nil
		}

		header := http.Header{"Authorization": []string{"Bearer signed"}}
		rec := servePush(t, h, pushBody(t, event, nil), header)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestExtractRequestID(t *testing.T) {
	var msg PubSubMessage
	msg.Message.Attributes = map[string]string{"request_id": "from-attr"}

	assert.Equal(t, "from-attr", extractRequestID(context.Background(), &msg, &service.OrderEvent{RequestID: "from-event"}))

	msg.Message.Attributes = nil
	assert.Equal(t, "from-event", extractRequestID(context.Background(), &msg, &service.OrderEvent{RequestID: "from-event"}))

	ctx := deliverycontext.WithRequestID(context.Background(), "from-ctx")
	assert.Equal(t, "from-ctx", extractRequestID(ctx, &msg, &service.OrderEvent{}))

	assert.NotEmpty(t, extractRequestID(context.Background(), &msg, &service.OrderEvent{}))
}
