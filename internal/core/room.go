package core

import "sync"

// GeneralRoom is the room every named user joins. It always exists
// conceptually; membership may be empty.
const GeneralRoom = "general"

// Directory tracks room membership sets keyed by room identifier. Private
// rooms are created lazily on first join and evicted when their last member
// leaves.
type Directory struct {
	mu    sync.Mutex
	rooms map[string]map[ConnID]struct{}
}

// NewDirectory constructs an empty room directory.
func NewDirectory() *Directory {
	return &Directory{rooms: make(map[string]map[ConnID]struct{})}
}

// Join adds id to room, creating the room on first use. Returns true if the
// membership was newly added; joining twice is a no-op.
func (d *Directory) Join(room string, id ConnID) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	members, ok := d.rooms[room]
	if !ok {
		members = make(map[ConnID]struct{})
		d.rooms[room] = members
	}
	if _, exists := members[id]; exists {
		return false
	}
	members[id] = struct{}{}
	return true
}

// Leave removes id from room. Returns true if id was a member. An emptied
// room is dropped from the directory.
func (d *Directory) Leave(room string, id ConnID) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.leaveLocked(room, id)
}

func (d *Directory) leaveLocked(room string, id ConnID) bool {
	members, ok := d.rooms[room]
	if !ok {
		return false
	}
	if _, exists := members[id]; !exists {
		return false
	}
	delete(members, id)
	if len(members) == 0 {
		delete(d.rooms, room)
	}
	return true
}

// LeaveAll removes id from every room it belongs to and returns the rooms it
// left.
func (d *Directory) LeaveAll(id ConnID) []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	var left []string
	for room, members := range d.rooms {
		if _, ok := members[id]; ok {
			left = append(left, room)
		}
	}
	for _, room := range left {
		d.leaveLocked(room, id)
	}
	return left
}

// Members returns a snapshot of the current membership of room.
func (d *Directory) Members(room string) []ConnID {
	d.mu.Lock()
	defer d.mu.Unlock()
	members, ok := d.rooms[room]
	if !ok {
		return nil
	}
	ids := make([]ConnID, 0, len(members))
	for id := range members {
		ids = append(ids, id)
	}
	return ids
}

// Contains reports whether id is a member of room.
func (d *Directory) Contains(room string, id ConnID) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.rooms[room][id]
	return ok
}
