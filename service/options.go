// api/service/options.go
package service

import (
	"time"

	"github.com/dev-mohitbeniwal/hazard/api/config"
)

const (
	// DeletePolicyOrphan deletes a rule and leaves its vulnerabilities in place.
	DeletePolicyOrphan = "orphan"
	// DeletePolicyBlock refuses to delete a rule that unresolved vulnerabilities reference.
	DeletePolicyBlock = "block"
)

const defaultLockWait = 10 * time.Second

// Options are the engine policies shared by the services.
type Options struct {
	DedupeOpenVulnerabilities bool
	EnforceStatusTransitions  bool
	RuleDeletePolicy          string
	BatchConcurrency          int
}

func DefaultOptions() Options {
	return Options{
		DedupeOpenVulnerabilities: true,
		EnforceStatusTransitions:  true,
		RuleDeletePolicy:          DeletePolicyOrphan,
		BatchConcurrency:          10,
	}
}

func OptionsFromConfig(cfg config.EngineConfiguration) Options {
	opts := Options{
		DedupeOpenVulnerabilities: cfg.DedupeOpenVulnerabilities,
		EnforceStatusTransitions:  cfg.EnforceStatusTransitions,
		RuleDeletePolicy:          cfg.RuleDeletePolicy,
		BatchConcurrency:          cfg.BatchConcurrency,
	}
	if opts.RuleDeletePolicy != DeletePolicyBlock {
		opts.RuleDeletePolicy = DeletePolicyOrphan
	}
	if opts.BatchConcurrency < 1 {
		opts.BatchConcurrency = 1
	}
	return opts
}
