// internals/features/catalog/repository/catalog_repository.go
package repository

import (
	"context"
	"errors"
	"sync"

	catalogModel "modulku_backend/internals/features/catalog/model"
	helper "modulku_backend/internals/helpers"
)

var (
	ErrModuleNotFound     = errors.New("module not found")
	ErrModuleNameTaken    = errors.New("module name already exists")
	ErrSubmoduleNotFound  = errors.New("submodule not found")
	ErrSubmoduleNameTaken = errors.New("submodule name already exists")
)

// Store is the catalog persistence boundary. Handlers only see this
// interface; the in-memory implementation below is the only one today.
type Store interface {
	Snapshot(ctx context.Context) ([]catalogModel.ModuleModel, []catalogModel.SubmoduleModel, error)
	ModulesByStatus(ctx context.Context, status int) ([]catalogModel.ModuleModel, error)
	Counts(ctx context.Context) (modules int, submodules int, err error)

	CreateModule(ctx context.Context, name string) (catalogModel.ModuleModel, error)
	UpdateModule(ctx context.Context, id int, patch catalogModel.ModulePatch) (catalogModel.ModuleModel, error)

	CreateSubmodule(ctx context.Context, moduleID int, name string, status int) (catalogModel.SubmoduleModel, error)
	UpdateSubmodule(ctx context.Context, id int, patch catalogModel.SubmodulePatch) (catalogModel.SubmoduleModel, error)

	Load(ctx context.Context, modules []catalogModel.ModuleModel, submodules []catalogModel.SubmoduleModel) error
}

// MemoryStore keeps both collections in insertion order behind one RWMutex,
// so a create's duplicate check and append are a single atomic step.
type MemoryStore struct {
	mu         sync.RWMutex
	modules    []catalogModel.ModuleModel
	submodules []catalogModel.SubmoduleModel
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

/* ====================== READ ====================== */

func (s *MemoryStore) Snapshot(ctx context.Context) ([]catalogModel.ModuleModel, []catalogModel.SubmoduleModel, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	mods := append([]catalogModel.ModuleModel(nil), s.modules...)
	subs := append([]catalogModel.SubmoduleModel(nil), s.submodules...)
	return mods, subs, nil
}

func (s *MemoryStore) ModulesByStatus(ctx context.Context, status int) ([]catalogModel.ModuleModel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]catalogModel.ModuleModel, 0)
	for _, m := range s.modules {
		if m.ModuleStatus == status {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *MemoryStore) Counts(ctx context.Context) (int, int, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.modules), len(s.submodules), nil
}

/* ====================== MODULE ====================== */

func (s *MemoryStore) CreateModule(ctx context.Context, name string) (catalogModel.ModuleModel, error) {
	if err := ctx.Err(); err != nil {
		return catalogModel.ModuleModel{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.modules {
		if helper.SameName(m.ModuleName, name) {
			return catalogModel.ModuleModel{}, ErrModuleNameTaken
		}
	}

	mod := catalogModel.ModuleModel{
		ModuleID:     nextID(len(s.modules)),
		ModuleName:   helper.FoldName(name),
		ModuleStatus: catalogModel.StatusActive,
	}
	s.modules = append(s.modules, mod)
	return mod, nil
}

// UpdateModule does not re-check name uniqueness; renames may collide. An
// empty patch only reads, under the read lock.
func (s *MemoryStore) UpdateModule(ctx context.Context, id int, patch catalogModel.ModulePatch) (catalogModel.ModuleModel, error) {
	if err := ctx.Err(); err != nil {
		return catalogModel.ModuleModel{}, err
	}
	if patch.IsEmpty() {
		s.mu.RLock()
		defer s.mu.RUnlock()
	} else {
		s.mu.Lock()
		defer s.mu.Unlock()
	}

	i := s.moduleIndex(id)
	if i < 0 {
		return catalogModel.ModuleModel{}, ErrModuleNotFound
	}
	if patch.Name != nil {
		s.modules[i].ModuleName = helper.FoldName(*patch.Name)
	}
	if patch.Status != nil {
		s.modules[i].ModuleStatus = *patch.Status
	}
	return s.modules[i], nil
}

func (s *MemoryStore) moduleIndex(id int) int {
	for i, m := range s.modules {
		if m.ModuleID == id {
			return i
		}
	}
	return -1
}

/* ====================== SUBMODULE ====================== */

func (s *MemoryStore) CreateSubmodule(ctx context.Context, moduleID int, name string, status int) (catalogModel.SubmoduleModel, error) {
	if err := ctx.Err(); err != nil {
		return catalogModel.SubmoduleModel{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sm := range s.submodules {
		if helper.SameName(sm.SubmoduleName, name) {
			return catalogModel.SubmoduleModel{}, ErrSubmoduleNameTaken
		}
	}

	sub := catalogModel.SubmoduleModel{
		SubmoduleID:       nextID(len(s.submodules)),
		SubmoduleModuleID: moduleID,
		SubmoduleName:     helper.FoldName(name),
		SubmoduleStatus:   status,
	}
	s.submodules = append(s.submodules, sub)
	return sub, nil
}

func (s *MemoryStore) UpdateSubmodule(ctx context.Context, id int, patch catalogModel.SubmodulePatch) (catalogModel.SubmoduleModel, error) {
	if err := ctx.Err(); err != nil {
		return catalogModel.SubmoduleModel{}, err
	}
	if patch.IsEmpty() {
		s.mu.RLock()
		defer s.mu.RUnlock()
	} else {
		s.mu.Lock()
		defer s.mu.Unlock()
	}

	i := -1
	for j, sm := range s.submodules {
		if sm.SubmoduleID == id {
			i = j
			break
		}
	}
	if i < 0 {
		return catalogModel.SubmoduleModel{}, ErrSubmoduleNotFound
	}

	if patch.ModuleID != nil {
		s.submodules[i].SubmoduleModuleID = *patch.ModuleID
	}
	if patch.Name != nil {
		s.submodules[i].SubmoduleName = helper.FoldName(*patch.Name)
	}
	if patch.Status != nil {
		s.submodules[i].SubmoduleStatus = *patch.Status
	}
	return s.submodules[i], nil
}

/* ====================== SEED ====================== */

// Load replaces both collections. Names are folded on the way in.
func (s *MemoryStore) Load(ctx context.Context, modules []catalogModel.ModuleModel, submodules []catalogModel.SubmoduleModel) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	mods := make([]catalogModel.ModuleModel, len(modules))
	for i, m := range modules {
		m.ModuleName = helper.FoldName(m.ModuleName)
		mods[i] = m
	}
	subs := make([]catalogModel.SubmoduleModel, len(submodules))
	for i, sm := range submodules {
		sm.SubmoduleName = helper.FoldName(sm.SubmoduleName)
		subs[i] = sm
	}

	s.mu.Lock()
	s.modules, s.submodules = mods, subs
	s.mu.Unlock()
	return nil
}

// ids are count+1; nothing is ever deleted so they stay unique
func nextID(count int) int {
	if id := count + 1; id > 0 {
		return id
	}
	return 1
}
