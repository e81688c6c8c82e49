package memory

import (
	"context"
	"fmt"

	"ai-counsellor-be/internal/repository/contract"
	"ai-counsellor-be/internal/repository/unitofwork"
)

type unitOfWork struct {
	store *Store
	tx    *dataset
}

type repositoryFactory struct {
	store *Store
}

func NewRepositoryFactory(store *Store) unitofwork.RepositoryFactory {
	return &repositoryFactory{store: store}
}

func (f *repositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &unitOfWork{store: f.store}
}

// Begin blocks until every other transaction of the store has ended, which gives the
// same per-student serialization the row lock gives on Postgres.
func (u *unitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	if err := u.store.acquire(ctx); err != nil {
		return err
	}
	u.store.mu.RLock()
	u.tx = u.store.data.clone()
	u.store.mu.RUnlock()
	return nil
}

func (u *unitOfWork) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	u.store.mu.Lock()
	u.store.data = u.tx
	u.store.mu.Unlock()
	u.tx = nil
	u.store.release()
	return nil
}

func (u *unitOfWork) Rollback() error {
	if u.tx == nil {
		return nil
	}
	u.tx = nil
	u.store.release()
	return nil
}

func (u *unitOfWork) view() access {
	if u.tx != nil {
		return pending{store: u.store, data: u.tx}
	}
	return committed{store: u.store}
}

func (u *unitOfWork) ProfileRepository() contract.ProfileRepository {
	return &profileRepository{db: u.view()}
}

func (u *unitOfWork) UniversityRepository() contract.UniversityRepository {
	return &universityRepository{db: u.view()}
}

func (u *unitOfWork) ShortlistRepository() contract.ShortlistRepository {
	return &shortlistRepository{db: u.view()}
}

func (u *unitOfWork) TaskRepository() contract.TaskRepository {
	return &taskRepository{db: u.view()}
}

func (u *unitOfWork) ConversationRepository() contract.ConversationRepository {
	return &conversationRepository{db: u.view()}
}

func (u *unitOfWork) ActionAuditRepository() contract.ActionAuditRepository {
	return &actionAuditRepository{db: u.view()}
}
