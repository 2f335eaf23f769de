// api/engine/rule_evaluator.go
package engine

import (
	"time"

	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/hazard/api/logging"
	"github.com/dev-mohitbeniwal/hazard/api/model"
)

// RuleEvaluation is the outcome of running one rule against an observation set.
type RuleEvaluation struct {
	RuleID    string
	Version   int
	Triggered bool
	Reason    string
}

// RuleEvaluator runs a batch of rules against one assessment's observations.
type RuleEvaluator struct{}

func NewRuleEvaluator() *RuleEvaluator {
	return &RuleEvaluator{}
}

// EvaluateRules evaluates every rule and returns one result per rule in input order.
func (re *RuleEvaluator) EvaluateRules(rules []model.Rule, observations []model.Observation) []RuleEvaluation {
	start := time.Now()
	results := make([]RuleEvaluation, 0, len(rules))
	triggered := 0

	for _, rule := range rules {
		result := re.evaluateRule(rule, observations)
		if result.Triggered {
			triggered++
		}
		results = append(results, result)
	}

	logger.Debug("Rules evaluated",
		zap.Int("rules", len(rules)),
		zap.Int("observations", len(observations)),
		zap.Int("triggered", triggered),
		zap.Duration("duration", time.Since(start)))
	return results
}

func (re *RuleEvaluator) evaluateRule(rule model.Rule, observations []model.Observation) RuleEvaluation {
	result := RuleEvaluation{RuleID: rule.ID, Version: rule.Version}

	if len(rule.FunctionalRule.Conditions) == 0 {
		result.Reason = "Rule has no conditions"
		return result
	}

	result.Triggered = Evaluate(rule.FunctionalRule, observations)
	if !result.Triggered {
		result.Reason = "Conditions did not match"
	}
	return result
}
