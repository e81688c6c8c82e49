package contract

import (
	"context"

	"ai-counsellor-be/internal/entity"

	"github.com/google/uuid"
)

type ActionAuditRepository interface {
	CreateBatch(ctx context.Context, audits []*entity.ActionAudit) error
	// FindRecentByUser returns newest first.
	FindRecentByUser(ctx context.Context, userId uuid.UUID, limit int) ([]*entity.ActionAudit, error)
}
