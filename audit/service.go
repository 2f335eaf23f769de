// api/audit/service.go
package audit

import (
	"context"

	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/hazard/api/logging"
)

type Service interface {
	Record(ctx context.Context, log AuditLog) error
	Query(ctx context.Context, q Query) ([]AuditLog, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Record(ctx context.Context, log AuditLog) error {
	if err := s.repo.Record(ctx, log); err != nil {
		logger.Error("Failed to record audit entry",
			zap.Error(err),
			zap.String("action", log.Action),
			zap.String("entityID", log.EntityID))
		return err
	}
	return nil
}

func (s *service) Query(ctx context.Context, q Query) ([]AuditLog, error) {
	return s.repo.Query(ctx, q)
}
