package http

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/fretboard-keeper/internal/config"
	"github.com/MKhiriev/fretboard-keeper/internal/store"
	"github.com/MKhiriev/fretboard-keeper/models"
)

// memStore is an in-process stand-in for the PostgreSQL repositories. It
// follows the same error contract, so the router and the real services can
// be exercised together without a database.
type memStore struct {
	mu     sync.Mutex
	limits config.Limits

	users  map[string]models.User
	dirs   map[string][]models.Directory
	states map[string][]models.State
}

func newMemStore(limits config.Limits) *memStore {
	return &memStore{
		limits: limits,
		users:  map[string]models.User{},
		dirs:   map[string][]models.Directory{},
		states: map[string][]models.State{},
	}
}

func (s *memStore) storages() *store.Storages {
	return &store.Storages{
		UserRepository:      s,
		DirectoryRepository: s,
		StateRepository:     s,
		SyncRepository:      s,
	}
}

func (s *memStore) Login(_ context.Context, username, tokenHash string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if u, ok := s.users[username]; ok {
		u.TokenHash = tokenHash
		u.LastLogin = now
		s.users[username] = u
		return false, nil
	}
	if len(s.users) >= s.limits.MaxUsers {
		return false, store.ErrUserLimitReached
	}
	s.users[username] = models.User{Username: username, TokenHash: tokenHash, CreatedAt: now, LastLogin: now}
	return true, nil
}

func (s *memStore) FindUserByToken(_ context.Context, tokenHash string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.TokenHash == tokenHash {
			return u, nil
		}
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (s *memStore) dirIndex(username, id string) int {
	return slices.IndexFunc(s.dirs[username], func(d models.Directory) bool { return d.ID == id })
}

func (s *memStore) stateIndex(username, id string) int {
	return slices.IndexFunc(s.states[username], func(st models.State) bool { return st.ID == id })
}

func (s *memStore) statesIn(username, directoryID string) int {
	n := 0
	for _, st := range s.states[username] {
		if st.DirectoryID == directoryID {
			n++
		}
	}
	return n
}

func (s *memStore) CreateDirectory(_ context.Context, username string, dir models.Directory) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dirIndex(username, dir.ID) >= 0 {
		return store.ErrDirectoryAlreadyExists
	}
	if len(s.dirs[username]) >= s.limits.MaxDirectoriesPerUser {
		return store.ErrDirectoryLimitReached
	}
	s.dirs[username] = append(s.dirs[username], dir)
	return nil
}

func (s *memStore) ListDirectories(_ context.Context, username string) ([]models.Directory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.dirs[username]), nil
}

func (s *memStore) UpdateDirectory(_ context.Context, username, directoryID string, patch models.DirectoryPatch) (models.Directory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.dirIndex(username, directoryID)
	if i < 0 {
		return models.Directory{}, store.ErrDirectoryNotFound
	}
	d := &s.dirs[username][i]
	if patch.Name != nil {
		d.Name = *patch.Name
	}
	if patch.IsDefault != nil {
		d.IsDefault = *patch.IsDefault
	}
	return *d, nil
}

func (s *memStore) DeleteDirectory(_ context.Context, username, directoryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.dirIndex(username, directoryID)
	if i < 0 {
		return store.ErrDirectoryNotFound
	}
	s.dirs[username] = slices.Delete(s.dirs[username], i, i+1)
	s.states[username] = slices.DeleteFunc(s.states[username], func(st models.State) bool {
		return st.DirectoryID == directoryID
	})
	return nil
}

func (s *memStore) CreateState(_ context.Context, username string, state models.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stateIndex(username, state.ID) >= 0 {
		return store.ErrStateAlreadyExists
	}
	if s.dirIndex(username, state.DirectoryID) < 0 {
		return store.ErrDirectoryNotFound
	}
	if s.statesIn(username, state.DirectoryID) >= s.limits.MaxStatesPerDirectory {
		return store.ErrStateLimitReached
	}
	s.states[username] = append(s.states[username], state)
	return nil
}

func (s *memStore) GetState(_ context.Context, username, stateID string) (models.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.stateIndex(username, stateID)
	if i < 0 {
		return models.State{}, store.ErrStateNotFound
	}
	return s.states[username][i], nil
}

func (s *memStore) ListStates(_ context.Context, username, directoryID string) ([]models.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.State
	for _, st := range s.states[username] {
		if directoryID == "" || st.DirectoryID == directoryID {
			out = append(out, st)
		}
	}
	return out, nil
}

func (s *memStore) UpdateState(_ context.Context, username, stateID string, patch models.StatePatch) (models.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.stateIndex(username, stateID)
	if i < 0 {
		return models.State{}, store.ErrStateNotFound
	}
	st := s.states[username][i]

	if patch.DirectoryID != nil && *patch.DirectoryID != st.DirectoryID {
		if s.dirIndex(username, *patch.DirectoryID) < 0 {
			return models.State{}, store.ErrDirectoryNotFound
		}
		if s.statesIn(username, *patch.DirectoryID) >= s.limits.MaxStatesPerDirectory {
			return models.State{}, store.ErrStateLimitReached
		}
		st.DirectoryID = *patch.DirectoryID
	}
	if patch.Name != nil {
		st.Name = *patch.Name
	}
	if patch.Timestamp != nil {
		st.Timestamp = *patch.Timestamp
	}
	if patch.Thumbnail != nil {
		st.Thumbnail = patch.Thumbnail
	}
	if len(patch.Payload) > 0 {
		st.Payload = patch.Payload
	}

	s.states[username][i] = st
	return st, nil
}

func (s *memStore) DeleteState(_ context.Context, username, stateID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.stateIndex(username, stateID)
	if i < 0 {
		return store.ErrStateNotFound
	}
	s.states[username] = slices.Delete(s.states[username], i, i+1)
	return nil
}

func (s *memStore) ReplaceAll(_ context.Context, username string, dirs []models.Directory, states []models.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dirs[username] = slices.Clone(dirs)
	s.states[username] = slices.Clone(states)
	return nil
}

func (s *memStore) LoadAll(_ context.Context, username string) (models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return models.Snapshot{
		Directories: slices.Clone(s.dirs[username]),
		States:      slices.Clone(s.states[username]),
	}, nil
}
