package memory

import (
	"context"

	"ai-counsellor-be/internal/entity"

	"github.com/google/uuid"
)

type actionAuditRepository struct {
	db access
}

func (r *actionAuditRepository) CreateBatch(ctx context.Context, audits []*entity.ActionAudit) error {
	if len(audits) == 0 {
		return nil
	}
	return r.db.write(ctx, func(d *dataset) error {
		for _, a := range audits {
			if a.Id == uuid.Nil {
				a.Id = uuid.New()
			}
			if a.CreatedAt.IsZero() {
				a.CreatedAt = r.db.now()
			}
			d.audits = append(d.audits, *a)
		}
		return nil
	})
}

// FindRecentByUser walks batches newest first while keeping the action order inside a turn.
func (r *actionAuditRepository) FindRecentByUser(ctx context.Context, userId uuid.UUID, limit int) ([]*entity.ActionAudit, error) {
	var mine []entity.ActionAudit
	r.db.read(func(d *dataset) {
		for _, a := range d.audits {
			if a.UserId == userId {
				mine = append(mine, a)
			}
		}
	})

	result := []*entity.ActionAudit{}
	end := len(mine)
	for end > 0 {
		start := end - 1
		for start > 0 && mine[start-1].TurnId == mine[end-1].TurnId {
			start--
		}
		for i := start; i < end; i++ {
			a := mine[i]
			result = append(result, &a)
			if limit > 0 && len(result) == limit {
				return result, nil
			}
		}
		end = start
	}
	return result, nil
}
