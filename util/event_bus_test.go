package util

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dev-mohitbeniwal/hazard/api/model"
)

func TestEventBusDelivers(t *testing.T) {
	bus := NewEventBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	bus.Start(ctx)

	var (
		mu       sync.Mutex
		received []string
	)
	record := func(_ context.Context, e Event) error {
		mu.Lock()
		defer mu.Unlock()
		received = append(received, e.Payload.(model.Rule).ID)
		return nil
	}

	id := bus.Subscribe(EventRuleUpdated, record)
	bus.Publish(ctx, EventRuleUpdated, model.Rule{ID: "r1"})
	bus.Publish(ctx, EventRuleDeleted, model.Rule{ID: "ignored"})
	bus.Wait()

	bus.Unsubscribe(EventRuleUpdated, id)
	bus.Publish(ctx, EventRuleUpdated, model.Rule{ID: "r2"})
	bus.Wait()

	assert.Equal(t, []string{"r1"}, received)
}

func TestNilEventBusPublishIsNoop(t *testing.T) {
	var bus *EventBus
	assert.NotPanics(t, func() {
		bus.Publish(context.Background(), EventRuleCreated, model.Rule{})
	})
}

func TestNotificationServiceRejectsUnknownEvents(t *testing.T) {
	n := NewNotificationService()
	ctx := context.Background()

	assert.NoError(t, n.NotifyRuleChange(ctx, EventRuleCreated, model.Rule{ID: "r1"}))
	assert.Error(t, n.NotifyRuleChange(ctx, "rule.renamed", model.Rule{ID: "r1"}))
	assert.NoError(t, n.NotifyVulnerabilityChange(ctx, EventVulnerabilityRemoved, model.Vulnerability{ID: "v1"}))

	err := n.handleRuleEvent(ctx, Event{Type: EventRuleCreated, Payload: "not a rule"})
	assert.Error(t, err)
}
