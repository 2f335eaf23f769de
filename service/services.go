// api/service/services.go
package service

import (
	"github.com/dev-mohitbeniwal/hazard/api/audit"
	"github.com/dev-mohitbeniwal/hazard/api/dao"
	"github.com/dev-mohitbeniwal/hazard/api/util"
)

type Services struct {
	Rule          IRuleService
	Vulnerability IVulnerabilityService
	Assessment    IAssessmentService
	Catalog       ICatalogService
}

// InitializeServices wires the services over one store. A nil locker falls
// back to an in-process lock; a nil cache, audit service or event bus
// disables that concern.
func InitializeServices(
	store dao.Store,
	auditService audit.Service,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	locker util.Locker,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
	opts Options,
) (*Services, error) {
	if validationUtil == nil {
		validationUtil = util.NewValidationUtil()
	}
	if locker == nil {
		locker = util.NewLocalLocker(defaultLockWait)
	}
	if notificationSvc != nil && eventBus != nil {
		notificationSvc.Register(eventBus)
	}

	vulnerabilityService := NewVulnerabilityService(store, auditService, eventBus, opts)

	services := &Services{
		Rule:          NewRuleService(store, validationUtil, cacheService, locker, auditService, eventBus, opts),
		Vulnerability: vulnerabilityService,
		Assessment:    NewAssessmentService(store, vulnerabilityService, validationUtil, locker, auditService, eventBus, opts),
		Catalog:       NewCatalogService(store, validationUtil, auditService),
	}

	return services, nil
}
