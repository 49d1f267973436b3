// Package notification delivers push notifications to customer devices.
package notification

import (
	"context"
	"log/slog"

	"giftshop/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

const androidPriorityHigh = "high"

type firebaseService struct {
	client *messaging.Client
	logger *slog.Logger
}

// NewFirebaseService authenticates with the service account file at credentialsPath.
// An empty projectID lets the SDK read it from the credentials.
func NewFirebaseService(ctx context.Context, projectID, credentialsPath string, logger *slog.Logger) (service.NotificationService, error) {
	var appConfig *firebase.Config
	if projectID != "" {
		appConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client, logger: logger}, nil
}

func (s *firebaseService) SendBatch(ctx context.Context, tokens []string, msg service.PushMessage) (service.BatchResult, error) {
	if len(tokens) == 0 {
		return service.BatchResult{}, nil
	}
	if err := checkBatchSize(tokens); err != nil {
		return service.BatchResult{}, err
	}

	resp, err := s.client.SendEachForMulticast(ctx, multicast(tokens, msg))
	if err != nil {
		return service.BatchResult{}, errors.Wrap(err, "failed to send multicast notification")
	}

	result := service.BatchResult{Sent: resp.SuccessCount, Failed: resp.FailureCount}
	for i, sent := range resp.Responses {
		switch {
		case sent.Error == nil:
		case messaging.IsUnregistered(sent.Error), messaging.IsInvalidArgument(sent.Error):
			result.InvalidTokens = append(result.InvalidTokens, tokens[i])
		default:
			s.logger.WarnContext(ctx, "Push delivery failed", slog.Int("token_index", i), slog.Any("error", sent.Error))
		}
	}

	return result, nil
}

func multicast(tokens []string, msg service.PushMessage) *messaging.MulticastMessage {
	m := &messaging.MulticastMessage{
		Tokens:       tokens,
		Notification: &messaging.Notification{Title: msg.Title, Body: msg.Body},
		Data:         msg.Data,
		Android:      &messaging.AndroidConfig{Priority: androidPriorityHigh, CollapseKey: msg.CollapseKey},
	}
	if msg.CollapseKey != "" {
		m.APNS = &messaging.APNSConfig{Headers: map[string]string{"apns-collapse-id": msg.CollapseKey}}
		m.Webpush = &messaging.WebpushConfig{Headers: map[string]string{"Topic": msg.CollapseKey}}
	}

	return m
}

func checkBatchSize(tokens []string) error {
	if len(tokens) > service.MaxBatchTokens {
		return errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), service.MaxBatchTokens)
	}

	return nil
}
