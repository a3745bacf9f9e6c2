package core

import (
	"strings"
	"sync"
)

// ConnID is an opaque connection identifier minted by the transport layer.
// The core never parses or inspects it.
type ConnID string

// DefaultColor is the display color assigned to newly named users.
const DefaultColor = "#dcddde"

// User is one named chat participant as seen by the core layer.
type User struct {
	ID      ConnID
	Name    string
	IsAdmin bool
	Color   string
	Coins   int
	Muted   bool
}

// FoldName normalizes a display name to its case-insensitive comparison key.
func FoldName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Registry is the authoritative map from connection identifier to user state.
// It carries its own lock because the economy sweep runs concurrently with the
// hub's command lane.
type Registry struct {
	mu    sync.Mutex
	users map[ConnID]*User
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{users: make(map[ConnID]*User)}
}

// Put inserts or replaces the entry for u.ID.
func (r *Registry) Put(u User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := u
	r.users[u.ID] = &stored
}

// Get returns a copy of the user for id, if registered.
func (r *Registry) Get(id ConnID) (User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return User{}, false
	}
	return *u, true
}

// Remove deletes the entry for id. Returns true if an entry existed.
func (r *Registry) Remove(id ConnID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return false
	}
	delete(r.users, id)
	return true
}

// Len reports the number of registered users.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

// IDs returns a copy-on-read snapshot of all registered connection ids.
func (r *Registry) IDs() []ConnID {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]ConnID, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	return ids
}

// Snapshot returns copies of every registered user.
func (r *Registry) Snapshot() []User {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, *u)
	}
	return users
}

// NameTaken reports whether any non-admin user other than self already holds
// exactly name.
func (r *Registry) NameTaken(name string, self ConnID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, u := range r.users {
		if id == self || u.IsAdmin {
			continue
		}
		if u.Name == name {
			return true
		}
	}
	return false
}

// MatchFolded returns the ids of all users whose folded display name equals
// folded.
func (r *Registry) MatchFolded(folded string) []ConnID {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []ConnID
	for id, u := range r.users {
		if FoldName(u.Name) == folded {
			ids = append(ids, id)
		}
	}
	return ids
}

// SetMuted updates the mute flag for id and returns the updated user.
func (r *Registry) SetMuted(id ConnID, muted bool) (User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return User{}, false
	}
	u.Muted = muted
	return *u, true
}

// SetColor updates the display color for id and returns the updated user.
func (r *Registry) SetColor(id ConnID, color string) (User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return User{}, false
	}
	u.Color = color
	return *u, true
}

// AddCoins credits n coins to id and returns the updated user. Used by the
// economy sweep; returns false if id was removed since the sweep snapshot.
func (r *Registry) AddCoins(id ConnID, n int) (User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return User{}, false
	}
	u.Coins += n
	return *u, true
}

// Purchase debits cost from id's balance and applies the item effect inside a
// single critical section, so no debited-but-not-applied state is ever
// observable. Returns ErrNotFound or ErrInsufficientFunds without mutating
// anything on failure.
func (r *Registry) Purchase(id ConnID, cost int, apply func(*User)) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	if u.Coins < cost {
		return *u, ErrInsufficientFunds
	}
	u.Coins -= cost
	if apply != nil {
		apply(u)
	}
	return *u, nil
}
