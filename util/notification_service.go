// api/util/notification_service.go

package util

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/hazard/api/logging"
	"github.com/dev-mohitbeniwal/hazard/api/model"
)

// NotificationService turns bus events into operator notifications. Delivery
// is a structured log line.
type NotificationService struct{}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// Register subscribes the service to every rule and vulnerability event on bus
func (n *NotificationService) Register(bus *EventBus) {
	for _, eventType := range []string{EventRuleCreated, EventRuleUpdated, EventRuleDeleted} {
		bus.Subscribe(eventType, n.handleRuleEvent)
	}
	for _, eventType := range []string{EventVulnerabilityDetected, EventVulnerabilityUpdated, EventVulnerabilityRemoved} {
		bus.Subscribe(eventType, n.handleVulnerabilityEvent)
	}
}

func (n *NotificationService) handleRuleEvent(ctx context.Context, event Event) error {
	rule, ok := event.Payload.(model.Rule)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", event.Payload, event.Type)
	}
	return n.NotifyRuleChange(ctx, event.Type, rule)
}

func (n *NotificationService) handleVulnerabilityEvent(ctx context.Context, event Event) error {
	vulnerability, ok := event.Payload.(model.Vulnerability)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", event.Payload, event.Type)
	}
	return n.NotifyVulnerabilityChange(ctx, event.Type, vulnerability)
}

func (n *NotificationService) NotifyRuleChange(ctx context.Context, eventType string, rule model.Rule) error {
	switch eventType {
	case EventRuleCreated:
		logger.Info("NOTIFICATION: New rule created",
			zap.String("ruleID", rule.ID),
			zap.String("ruleName", rule.Name))
	case EventRuleUpdated:
		logger.Info("NOTIFICATION: Rule updated",
			zap.String("ruleID", rule.ID),
			zap.Int("version", rule.Version))
	case EventRuleDeleted:
		logger.Info("NOTIFICATION: Rule deleted",
			zap.String("ruleID", rule.ID))
	default:
		return fmt.Errorf("unknown rule event: %s", eventType)
	}
	return nil
}

func (n *NotificationService) NotifyVulnerabilityChange(ctx context.Context, eventType string, vulnerability model.Vulnerability) error {
	fields := []zap.Field{
		zap.String("vulnerabilityID", vulnerability.ID),
		zap.String("ruleID", vulnerability.RuleID),
		zap.String("propertyID", vulnerability.PropertyID),
	}
	switch eventType {
	case EventVulnerabilityDetected:
		logger.Info("NOTIFICATION: Vulnerability detected", fields...)
	case EventVulnerabilityUpdated:
		logger.Info("NOTIFICATION: Vulnerability updated", append(fields, zap.String("status", string(vulnerability.Status)))...)
	case EventVulnerabilityRemoved:
		logger.Info("NOTIFICATION: Vulnerability removed", fields...)
	default:
		return fmt.Errorf("unknown vulnerability event: %s", eventType)
	}
	return nil
}
