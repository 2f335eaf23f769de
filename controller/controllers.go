// api/controller/controllers.go
package controller

import (
	"github.com/dev-mohitbeniwal/hazard/api/audit"
	"github.com/dev-mohitbeniwal/hazard/api/service"
)

type Controllers struct {
	Rule          *RuleController
	Vulnerability *VulnerabilityController
	Assessment    *AssessmentController
	Catalog       *CatalogController
	Audit         *AuditController
}

func InitializeControllers(services *service.Services, auditService audit.Service) *Controllers {
	return &Controllers{
		Rule:          NewRuleController(services.Rule),
		Vulnerability: NewVulnerabilityController(services.Vulnerability),
		Assessment:    NewAssessmentController(services.Assessment),
		Catalog:       NewCatalogController(services.Catalog),
		Audit:         NewAuditController(auditService),
	}
}
