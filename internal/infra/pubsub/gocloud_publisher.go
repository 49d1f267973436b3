package pubsub

import (
	"context"
	"log/slog"

	"giftshop/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/pubsub"
	// Registers the mem:// scheme used in development and tests.
	_ "gocloud.dev/pubsub/mempubsub"
)

// goCloudPublisher implements EventPublisher on a portable Go CDK topic.
type goCloudPublisher struct {
	topic  *pubsub.Topic
	logger *slog.Logger
}

// NewGoCloudPublisher opens the topic at topicURL, e.g. "mem://order-events".
func NewGoCloudPublisher(ctx context.Context, topicURL string, logger *slog.Logger) (service.EventPublisher, error) {
	topic, err := pubsub.OpenTopic(ctx, topicURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open topic %s", topicURL)
	}

	logger.Info("Go CDK publisher initialized", slog.String("topic_url", topicURL))

	return &goCloudPublisher{topic: topic, logger: logger}, nil
}

// PublishOrderEvent sends the event with its attributes as message metadata.
func (p *goCloudPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	data, attributes, err := encodeEvent(event)
	if err != nil {
		return err
	}

	if err := p.topic.Send(ctx, &pubsub.Message{Body: data, Metadata: attributes}); err != nil {
		return errors.Wrapf(err, "failed to send %s for order %s", event.Type, event.OrderID)
	}

	p.logger.Debug("[GoCloudPubSub] Order event sent",
		slog.String("event_type", event.Type),
		slog.String("order_id", event.OrderID),
	)

	return nil
}

// Close flushes pending sends and releases the topic.
func (p *goCloudPublisher) Close() error {
	return errors.WithStack(p.topic.Shutdown(context.Background()))
}
