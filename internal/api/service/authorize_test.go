package service

import (
	"testing"

	"filmhub/internal/api/apperrors"
	"filmhub/internal/api/models"

	"github.com/stretchr/testify/assert"
)

func TestRequireAdmin(t *testing.T) {
	policy := NewAccessPolicy(nil)

	assert.NoError(t, policy.RequireAdmin(Actor{ID: "u1", Role: models.RoleAdmin}))
	assert.ErrorIs(t, policy.RequireAdmin(Actor{ID: "u2", Role: models.RoleUser}), apperrors.ErrForbidden)
	assert.ErrorIs(t, policy.RequireAdmin(Actor{}), apperrors.ErrForbidden)
}

func TestRequireOwner(t *testing.T) {
	policy := NewAccessPolicy(nil)

	assert.NoError(t, policy.RequireOwner(Actor{ID: "u1"}, "u1"))
	assert.ErrorIs(t, policy.RequireOwner(Actor{ID: "u1"}, "u2"), apperrors.ErrForbidden)

	// an admin role does not bypass an ownership check
	assert.ErrorIs(t, policy.RequireOwner(Actor{ID: "admin", Role: models.RoleAdmin}, "u2"), apperrors.ErrForbidden)
}
