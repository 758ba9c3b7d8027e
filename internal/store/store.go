package store

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jask/packrat/internal/gear"
)

// Listener receives a snapshot of the full item sequence after every
// mutation. The snapshot is a copy; mutating it never changes the store.
type Listener func(items []gear.Item)

// Store owns the single ordered sequence of gear items and broadcasts every
// change to its listeners. One Store is built at startup and handed to
// whoever needs it; nothing else may hold item state.
//
// A Store is not safe for concurrent use. It belongs to the program's event
// goroutine, and every call must run there.
type Store struct {
	items     []gear.Item
	listeners []Listener
	log       *logrus.Entry
}

// New returns an empty store.
func New(log *logrus.Entry) *Store {
	return &Store{log: log}
}

// Create assigns a fresh id, appends a new item in the default group, and
// notifies listeners. Field constraints are enforced upstream by the form;
// the store records whatever it is given.
func (s *Store) Create(name, description string, grams float64) gear.Item {
	item := gear.Item{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Grams:       grams,
		Group:       gear.GroupUncategorized,
	}
	s.items = append(s.items, item)

	s.log.WithFields(logrus.Fields{"id": item.ID, "name": item.Name}).Debug("created item")
	s.notify()
	return item
}

// Reassign moves the item with the given id into group and notifies
// listeners. Unknown ids are tolerated as quiet no-ops, reassigning an item
// to the group it is already in fires no notification, and groups outside
// the known set are refused. All three cases are logged, never surfaced.
func (s *Store) Reassign(id string, group gear.Group) {
	if !group.Valid() {
		s.log.WithFields(logrus.Fields{"id": id, "group": group}).Warn("reassign to unknown group ignored")
		return
	}

	idx := -1
	for i := range s.items {
		if s.items[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.log.WithField("id", id).Warn("reassign of unknown item ignored")
		return
	}
	if s.items[idx].Group == group {
		s.log.WithFields(logrus.Fields{"id": id, "group": group}).Debug("item already in group")
		return
	}
	from := s.items[idx].Group
	s.items[idx].Group = group

	s.log.WithFields(logrus.Fields{"id": id, "from": from, "to": group}).Info("reassigned item")
	s.notify()
}

// Subscribe registers fn for every future notification. Current state is not
// replayed: a listener subscribing after items exist hears nothing about them
// until the next mutation. Listeners are invoked synchronously in
// registration order and are never unregistered.
func (s *Store) Subscribe(fn Listener) {
	s.listeners = append(s.listeners, fn)
}

// Items returns a copy of the current sequence in insertion order.
func (s *Store) Items() []gear.Item {
	return s.snapshot()
}

// notify delivers one shared snapshot to every listener in registration
// order.
func (s *Store) notify() {
	snapshot := s.snapshot()
	for _, fn := range s.listeners {
		fn(snapshot)
	}
}

func (s *Store) snapshot() []gear.Item {
	out := make([]gear.Item, len(s.items))
	copy(out, s.items)
	return out
}
