package service

import "context"

// MaxBatchTokens is the largest token batch a single multicast push accepts.
const MaxBatchTokens = 500

// PushMessage is one notification fanned out to a batch of device tokens.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
	// CollapseKey lets a newer push replace an undelivered older one with the same key.
	CollapseKey string
}

// BatchResult reports per-token outcomes of a batch. InvalidTokens lists the
// tokens the provider no longer accepts; their devices should be removed.
type BatchResult struct {
	Sent          int
	Failed        int
	InvalidTokens []string
}

type NotificationService interface {
	// SendBatch pushes msg to at most MaxBatchTokens tokens. An error means nothing was sent.
	SendBatch(ctx context.Context, tokens []string, msg PushMessage) (BatchResult, error)
}
