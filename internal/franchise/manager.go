package franchise

import (
	"errors"

	"tremolo/internal/shop"
	"tremolo/pkg/dto"
	"tremolo/pkg/storage"
)

var (
	ErrStoreNotFound = errors.New("no store registered at this location")
	ErrLocationTaken = errors.New("a store is already registered at this location")
)

// Manager keeps track of all stores of the franchise.
type Manager interface {
	// ListStores returns all registered stores in registration order.
	ListStores() []*shop.Store

	// GetStore returns the store at the requested location.
	// Iff no store is registered there, ok is false.
	GetStore(location string) (s *shop.Store, ok bool)

	// AddStore registers the store under its location.
	// Returns ErrLocationTaken if another store is already registered there.
	AddStore(s *shop.Store) error

	// DeleteStore removes the store at the given location from the franchise.
	// It does nothing if no store is registered there.
	DeleteStore(location string)

	// Statistics returns statistical data for each registered store.
	Statistics() map[string]*dto.StoreStatistics
}

// memoryManager stores the franchise in the local application memory.
// Lookups scan the store list; the franchise stays small enough that no
// index is needed.
type memoryManager struct {
	stores storage.Storage[*shop.Store]
}

// NewMemoryManager responds with a Manager implementation backed by local
// application memory.
func NewMemoryManager() *memoryManager {
	return &memoryManager{
		stores: storage.NewLocalStorage[*shop.Store](),
	}
}

func (m *memoryManager) ListStores() []*shop.Store {
	return m.stores.List()
}

func (m *memoryManager) GetStore(location string) (*shop.Store, bool) {
	for _, s := range m.stores.List() {
		if s.Location() == location {
			return s, true
		}
	}
	return nil, false
}

func (m *memoryManager) AddStore(s *shop.Store) error {
	if _, ok := m.GetStore(s.Location()); ok {
		return ErrLocationTaken
	}
	m.stores.Add(s)
	return nil
}

func (m *memoryManager) DeleteStore(location string) {
	if s, ok := m.GetStore(location); ok {
		_ = m.stores.Remove(s)
	}
}

func (m *memoryManager) Statistics() map[string]*dto.StoreStatistics {
	statistics := make(map[string]*dto.StoreStatistics)
	for _, s := range m.stores.List() {
		instrumentCounts := make(map[string]uint)
		for kind, count := range s.CountInstrumentsByKind() {
			instrumentCounts[string(kind)] = count
		}
		statistics[s.Location()] = &dto.StoreStatistics{
			Location:         s.Location(),
			EmployeeCount:    uint(len(s.Employees())),
			InventorySize:    uint(len(s.Inventory())),
			InstrumentCounts: instrumentCounts,
		}
	}
	return statistics
}
