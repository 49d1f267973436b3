package config

import (
	"strconv"
	"strings"

	"giftshop/internal/domain/constants"

	"github.com/pkg/errors"
)

const (
	minBcryptCost = 4
	maxBcryptCost = 31
)

// Validate reports every inconsistent setting at once so a bad deployment fails on startup.
func (c *Config) Validate() error {
	var problems []string

	switch c.Storage.Driver {
	case constants.StorageDriverMemory:
	case constants.StorageDriverPostgres:
		if c.Postgres == nil {
			problems = append(problems, "storage.driver is postgres but the postgres section is missing")
		}
	default:
		problems = append(problems, "storage.driver must be postgres or memory, got "+strconv.Quote(c.Storage.Driver))
	}

	if c.SecretKey.Access == "" || c.SecretKey.Refresh == "" {
		problems = append(problems, "secretKey.access and secretKey.refresh are required")
	} else if c.SecretKey.Access == c.SecretKey.Refresh {
		problems = append(problems, "secretKey.access and secretKey.refresh must differ")
	}

	if c.Auth != nil && c.Auth.BcryptCost != 0 &&
		(c.Auth.BcryptCost < minBcryptCost || c.Auth.BcryptCost > maxBcryptCost) {
		problems = append(problems, "auth.bcryptCost must be between 4 and 31")
	}

	if c.Orders != nil && c.Orders.DefaultDeliveryWindow < 0 {
		problems = append(problems, "orders.defaultDeliveryWindow must not be negative")
	}

	problems = append(problems, c.PubSub.problems()...)

	if len(problems) > 0 {
		return errors.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}

	return nil
}

// problems checks the fields the selected provider needs. A nil section disables publishing.
func (p *PubSubConfig) problems() []string {
	if p == nil || p.Provider == "" {
		return nil
	}

	switch p.Provider {
	case constants.PubSubProviderLocal:
		if p.LocalEndpoint == "" {
			return []string{"pubsub.localEndpoint is required for the local provider"}
		}
	case constants.PubSubProviderGoogle:
		if p.ProjectID == "" || p.TopicID == "" {
			return []string{"pubsub.projectId and pubsub.topicId are required for the google provider"}
		}
	case constants.PubSubProviderGoCloud:
		if p.TopicURL == "" {
			return []string{"pubsub.topicUrl is required for the gocloud provider"}
		}
	default:
		return []string{"pubsub.provider must be local, google or gocloud, got " + strconv.Quote(p.Provider)}
	}

	return nil
}
