package core

import "sync"

// BanList is the set of case-folded display names that may not be claimed.
// It is independent of any user and lives for the process lifetime.
type BanList struct {
	mu    sync.Mutex
	names map[string]struct{}
}

// NewBanList constructs an empty ban list.
func NewBanList() *BanList {
	return &BanList{names: make(map[string]struct{})}
}

// Ban adds the folded form of name to the set. Returns true if it was not
// already banned.
func (b *BanList) Ban(name string) bool {
	folded := FoldName(name)
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.names[folded]; ok {
		return false
	}
	b.names[folded] = struct{}{}
	return true
}

// Unban removes the folded form of name from the set. Returns true if it was
// banned.
func (b *BanList) Unban(name string) bool {
	folded := FoldName(name)
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.names[folded]; !ok {
		return false
	}
	delete(b.names, folded)
	return true
}

// IsBanned reports whether name folds to a banned name.
func (b *BanList) IsBanned(name string) bool {
	folded := FoldName(name)
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.names[folded]
	return ok
}
