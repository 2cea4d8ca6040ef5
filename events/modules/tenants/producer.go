// Package tenant handles Kafka event production for tenant lifecycle events.
package tenant

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/orgstack/tenant-backend/model"
)

// TenantProducer handles sending tenant lifecycle events to Kafka
type TenantProducer struct {
	Writer *kafka.Writer
}

// NewTenantProducer initializes a new Kafka writer for tenant events
func NewTenantProducer(brokers []string, topic string) *TenantProducer {
	return &TenantProducer{
		Writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *TenantProducer) publish(ctx context.Context, event TenantLifecycleEvent) error {
	event.EventID = uuid.New().String()
	event.EventTime = time.Now().UTC()
	event.SchemaVersion = "v1"

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.TenantName),
		Value: payload,
	})
}

// PublishTenantCreated sends a tenant.created event to the Kafka topic
func (p *TenantProducer) PublishTenantCreated(ctx context.Context, meta model.TenantMetadata) error {
	return p.publish(ctx, TenantLifecycleEvent{
		EventType:      "tenant.created",
		TenantName:     meta.Name,
		CollectionName: meta.CollectionName,
		AdminUserKey:   meta.AdminUserKey,
	})
}

// PublishTenantRenamed sends a tenant.renamed event to the Kafka topic
func (p *TenantProducer) PublishTenantRenamed(ctx context.Context, previousName string, meta model.TenantMetadata) error {
	return p.publish(ctx, TenantLifecycleEvent{
		EventType:      "tenant.renamed",
		TenantName:     meta.Name,
		PreviousName:   previousName,
		CollectionName: meta.CollectionName,
		AdminUserKey:   meta.AdminUserKey,
	})
}

// PublishTenantDeleted sends a tenant.deleted event to the Kafka topic
func (p *TenantProducer) PublishTenantDeleted(ctx context.Context, tenantName, collectionName string) error {
	return p.publish(ctx, TenantLifecycleEvent{
		EventType:      "tenant.deleted",
		TenantName:     tenantName,
		CollectionName: collectionName,
	})
}

// Close cleans up the Kafka writer
func (p *TenantProducer) Close() error {
	return p.Writer.Close()
}
