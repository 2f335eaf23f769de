package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	hazard_errors "github.com/dev-mohitbeniwal/hazard/api/errors"
)

func TestValidationError(t *testing.T) {
	verr := hazard_errors.NewValidationError(hazard_errors.ErrInvalidRuleData)
	assert.NoError(t, verr.ErrOrNil())

	verr.Add("unknown observation type %q", "t1")
	verr.Add("unknown observation value %q", "v1")

	err := fmt.Errorf("failed to create rule: %w", verr.ErrOrNil())
	assert.ErrorIs(t, err, hazard_errors.ErrInvalidRuleData)
	assert.NotErrorIs(t, err, hazard_errors.ErrInvalidVulnerabilityData)
	assert.Equal(t, `invalid rule data: unknown observation type "t1"; unknown observation value "v1"`, verr.Error())

	var target *hazard_errors.ValidationError
	assert.True(t, errors.As(err, &target))
	assert.Len(t, target.Problems, 2)
}

func TestPersistenceError(t *testing.T) {
	cause := errors.New("connection reset")
	err := fmt.Errorf("failed to delete vulnerability: %w", hazard_errors.NewPersistenceError("delete vulnerability", cause))

	assert.ErrorIs(t, err, hazard_errors.ErrDatabaseOperation)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "delete vulnerability: connection reset")
}
