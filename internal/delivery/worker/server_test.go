package worker

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"giftshop/config"
	"giftshop/internal/delivery"
	deliverycontext "giftshop/internal/delivery/context"
	"giftshop/internal/delivery/worker/handler"
	"giftshop/internal/domain/service"
	mockUsecase "giftshop/internal/mocks/usecase"
	"giftshop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestWorkerServer_RoutesPushToUsecase(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.Env.Env = "develop"

	uc := mockUsecase.NewMockNotificationUsecase(t)
	uc.EXPECT().
		NotifyOrderEvent(mock.Anything, mock.MatchedBy(func(e *service.OrderEvent) bool {
			return e.Type == service.OrderEventCanceled
		})).
		Return(&usecase.NotificationResult{Devices: 1, Sent: 1}, nil).
		Once()

	srv, err := NewServer(ServerParams{
		Lc:     fxtest.NewLifecycle(t),
		Cfg:    cfg,
		Logger: logger,
		PushHandler: handler.NewPushHandler(handler.PushHandlerParams{
			Config:         cfg,
			Logger:         logger,
			NotificationUC: uc,
		}),
	})
	require.NoError(t, err)
	e := srv.(*delivery.EchoServer).Echo

	data, err := json.Marshal(service.OrderEvent{EventID: "evt-1", Type: service.OrderEventCanceled, UserID: "u"})
	require.NoError(t, err)
	body := `{"message":{"data":"` + base64.StdEncoding.EncodeToString(data) + `","messageId":"1"}}`

	req := httptest.NewRequest(http.MethodPost, PushPath, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-from-publisher")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-from-publisher", rec.Header().Get(deliverycontext.HeaderXRequestID))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
