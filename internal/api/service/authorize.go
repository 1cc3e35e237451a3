package service

import (
	"log/slog"

	"filmhub/internal/api/apperrors"
	"filmhub/internal/api/models"
)

// Actor is the authenticated identity of a request, as supplied by the auth
// middleware. The services trust the tuple verbatim.
type Actor struct {
	ID   string
	Role string
}

// AccessPolicy centralizes the two capability checks that gate mutations:
// role (admin-only operations) and ownership (mutating someone's review,
// reaction or watch-list entry). Both failures surface as ErrForbidden; the
// log line tells them apart.
type AccessPolicy struct {
	logger *slog.Logger
}

func NewAccessPolicy(logger *slog.Logger) *AccessPolicy {
	if logger == nil {
		logger = slog.Default()
	}
	return &AccessPolicy{logger: logger}
}

func (p *AccessPolicy) RequireAdmin(actor Actor) error {
	if actor.Role != models.RoleAdmin {
		p.logger.Warn("access denied", "reason", "role", "actor", actor.ID, "role", actor.Role)
		return apperrors.ErrForbidden
	}
	return nil
}

// RequireOwner compares stable identities; derived fields never enter the
// decision.
func (p *AccessPolicy) RequireOwner(actor Actor, ownerID string) error {
	if actor.ID != ownerID {
		p.logger.Warn("access denied", "reason", "ownership", "actor", actor.ID, "owner", ownerID)
		return apperrors.ErrForbidden
	}
	return nil
}
