package appErrors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	appErrors "github.com/unclebandit/influencer-portal/internal/errors"
)

func TestNotFoundMessage(t *testing.T) {
	err := appErrors.NewNotFound("User", 7)
	assert.Equal(t, "User with id 7 does not exist", err.Error())
	assert.True(t, appErrors.IsNotFound(err))
	assert.True(t, appErrors.IsNotFound(fmt.Errorf("lookup: %w", err)))
	assert.False(t, appErrors.IsNotFound(fmt.Errorf("boom")))
}

func TestValidationMessage(t *testing.T) {
	assert.Equal(t, "email: must be a valid email", appErrors.NewValidation("email", "must be a valid email").Error())
	assert.Equal(t, "bad input", appErrors.NewValidation("", "bad input").Error())
}

func TestConstraintAndConflict(t *testing.T) {
	assert.Equal(t, "Start date must be before end date", appErrors.NewConstraint("Start date must be before end date").Error())
	assert.Equal(t, "email a@b.co is already taken", appErrors.NewConflict("email %s is already taken", "a@b.co").Error())
}
