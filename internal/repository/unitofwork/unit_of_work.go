package unitofwork

import (
	"context"

	"ai-counsellor-be/internal/repository/contract"
)

// UnitOfWork scopes repositories to one transaction. Repositories obtained before Begin
// run outside of it.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ProfileRepository() contract.ProfileRepository
	UniversityRepository() contract.UniversityRepository
	ShortlistRepository() contract.ShortlistRepository
	TaskRepository() contract.TaskRepository
	ConversationRepository() contract.ConversationRepository
	ActionAuditRepository() contract.ActionAuditRepository
}
