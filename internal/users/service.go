package users

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ServiceConfig carries optional service dependencies. The zero value
// picks UUID identifiers and the wall clock; tests inject deterministic
// replacements.
type ServiceConfig struct {
	IDGenerator func() string
	Clock       func() time.Time
}

// Service owns the record lifecycle: it validates submitted fields,
// assigns identifiers and timestamps, and drives the store.
type Service struct {
	repo      RepositoryPort
	validator *validator.Validate
	newID     func() string
	now       func() time.Time
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort, cfg ServiceConfig) *Service {
	newID := cfg.IDGenerator
	if newID == nil {
		newID = uuid.NewString
	}
	now := cfg.Clock
	if now == nil {
		now = time.Now
	}
	return &Service{
		repo:      repo,
		validator: newValidator(),
		newID:     newID,
		now:       now,
	}
}

// List returns all records.
func (s *Service) List(ctx context.Context) []User {
	return s.repo.List()
}

// Get looks up a single record by identifier.
func (s *Service) Get(ctx context.Context, id string) (User, error) {
	return s.repo.Get(id)
}

// Count returns the number of stored records.
func (s *Service) Count(ctx context.Context) int {
	return s.repo.Count()
}

// Create validates the submitted fields and stores a new record with a
// fresh identifier. Both timestamps come from a single clock read so
// UpdatedAt can never precede CreatedAt.
func (s *Service) Create(ctx context.Context, form *UserForm) (User, error) {
	if err := s.validate(form); err != nil {
		return User{}, err
	}
	stamp := s.now()
	user := User{
		ID:        s.newID(),
		Name:      form.Name,
		Email:     form.Email,
		Age:       form.Age,
		Phone:     form.Phone,
		CreatedAt: stamp,
		UpdatedAt: stamp,
	}
	if err := s.repo.Insert(user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Update replaces the mutable fields of an existing record. A missing
// identifier is reported before any validation error; the store
// re-checks existence and email uniqueness under its own lock.
func (s *Service) Update(ctx context.Context, id string, form *UserForm) (User, error) {
	if _, err := s.repo.Get(id); err != nil {
		return User{}, err
	}
	if err := s.validate(form); err != nil {
		return User{}, err
	}
	return s.repo.Replace(id, User{
		Name:      form.Name,
		Email:     form.Email,
		Age:       form.Age,
		Phone:     form.Phone,
		UpdatedAt: s.now(),
	})
}

// Delete removes a record and returns its final state.
func (s *Service) Delete(ctx context.Context, id string) (User, error) {
	return s.repo.Delete(id)
}
