package users

import "sync"

// RepositoryPort defines data access methods for user records.
type RepositoryPort interface {
	List() []User
	Get(id string) (User, error)
	EmailExists(email, excludeID string) bool
	Insert(user User) error
	Replace(id string, user User) (User, error)
	Delete(id string) (User, error)
	Count() int
}

// MemoryRepository is the process-local record store. A single RWMutex
// keeps the email-uniqueness check and the following mutation atomic, so
// two concurrent creates with the same email cannot both pass the check.
type MemoryRepository struct {
	mu    sync.RWMutex
	byID  map[string]User
	order []string
}

// NewMemoryRepository constructs an empty store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[string]User)}
}

// List returns copies of all records in insertion order. The order is not
// stable across deletes.
func (r *MemoryRepository) List() []User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]User, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].clone())
	}
	return out
}

// Get returns a copy of the record with the given identifier.
func (r *MemoryRepository) Get(id string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u.clone(), nil
}

// EmailExists reports whether any record other than excludeID holds
// exactly this email. Matching is case-sensitive.
func (r *MemoryRepository) EmailExists(email, excludeID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.emailTakenLocked(email, excludeID)
}

func (r *MemoryRepository) emailTakenLocked(email, excludeID string) bool {
	for id, u := range r.byID {
		if id != excludeID && u.Email == email {
			return true
		}
	}
	return false
}

// Insert stores a new record. The uniqueness check and the insert run in
// one critical section.
func (r *MemoryRepository) Insert(user User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.emailTakenLocked(user.Email, "") {
		return ErrEmailExists
	}
	r.byID[user.ID] = user.clone()
	r.order = append(r.order, user.ID)
	return nil
}

// Replace swaps the mutable fields of an existing record, preserving ID
// and CreatedAt, and returns the updated copy.
func (r *MemoryRepository) Replace(id string, user User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	if r.emailTakenLocked(user.Email, id) {
		return User{}, ErrEmailExists
	}
	existing.Name = user.Name
	existing.Email = user.Email
	existing.Age = user.Age
	existing.Phone = user.Phone
	existing.UpdatedAt = user.UpdatedAt
	r.byID[id] = existing.clone()
	return existing.clone(), nil
}

// Delete removes and returns the record with the given identifier.
func (r *MemoryRepository) Delete(id string) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	delete(r.byID, id)
	for i, stored := range r.order {
		if stored == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return u, nil
}

// Count returns the number of stored records.
func (r *MemoryRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}
