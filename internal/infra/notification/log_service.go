package notification

import (
	"context"
	"log/slog"

	"giftshop/internal/domain/service"
)

// logService stands in for FCM when no Firebase credentials are configured:
// every push is logged and reported as delivered.
type logService struct {
	logger *slog.Logger
}

func NewLogService(logger *slog.Logger) service.NotificationService {
	return &logService{logger: logger}
}

func (s *logService) SendBatch(ctx context.Context, tokens []string, msg service.PushMessage) (service.BatchResult, error) {
	if err := checkBatchSize(tokens); err != nil {
		return service.BatchResult{}, err
	}

	s.logger.InfoContext(ctx, "Push notification (log only)",
		slog.String("title", msg.Title),
		slog.String("collapse_key", msg.CollapseKey),
		slog.Int("tokens", len(tokens)),
		slog.Any("data", msg.Data),
	)

	return service.BatchResult{Sent: len(tokens)}, nil
}
