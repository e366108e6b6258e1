package shop

import (
	"errors"
	"fmt"

	"tremolo/pkg/logging"
	"tremolo/pkg/storage"
)

var (
	log = logging.GetLogger("shop")

	ErrEmployeeNotFound   = errors.New("employee does not work at this store")
	ErrInstrumentNotFound = errors.New("instrument is not stocked by this store")
)

// RoleTally is the number of employees of one store sharing a role.
type RoleTally struct {
	Role  string
	Count uint
}

// Store is one location of the franchise.
// A store owns its instrument inventory, references its employees and may
// reference the nearest other store. Nearest-store references can form cycles
// (A -> B -> C -> A), so they are plain references and must never be followed
// by copying the referenced store.
type Store struct {
	location     string
	employees    storage.Storage[*Employee]
	inventory    storage.Storage[Instrument]
	nearestStore *Store
}

// NewStore creates an empty store at the given location.
func NewStore(location string) *Store {
	return &Store{
		location:  location,
		employees: storage.NewLocalStorage[*Employee](),
		inventory: storage.NewLocalStorage[Instrument](),
	}
}

func (s *Store) Location() string {
	return s.location
}

// NearestStore returns the closest other store of the franchise.
// Iff no nearest store is set, ok is false.
func (s *Store) NearestStore() (nearest *Store, ok bool) {
	return s.nearestStore, s.nearestStore != nil
}

// SetNearestStore sets the closest other store of the franchise.
func (s *Store) SetNearestStore(nearest *Store) {
	s.nearestStore = nearest
}

// Employees returns the store's employees in hiring order.
func (s *Store) Employees() []*Employee {
	return s.employees.List()
}

// Inventory returns the store's instruments in stocking order.
func (s *Store) Inventory() []Instrument {
	return s.inventory.List()
}

// AddEmployee adds the employee to the store and updates its back-reference.
// Membership is not checked; adding an employee a second time stores it twice.
func (s *Store) AddEmployee(employee *Employee) {
	s.employees.Add(employee)
	employee.currentStore = s
	log.WithField("store", s.location).WithField("employee", employee.FullName()).Debug("Added employee")
}

// RemoveEmployee removes the first occurrence of the employee from the store
// and clears its back-reference.
// Returns ErrEmployeeNotFound if the employee does not work at this store.
func (s *Store) RemoveEmployee(employee *Employee) error {
	if err := s.employees.Remove(employee); err != nil {
		return fmt.Errorf("%w: %s", ErrEmployeeNotFound, employee.FullName())
	}
	employee.currentStore = nil
	log.WithField("store", s.location).WithField("employee", employee.FullName()).Debug("Removed employee")
	return nil
}

// AddInstrument stocks the instrument in the store's inventory.
// Ownership is not checked; callers must not stock one instrument in two stores.
func (s *Store) AddInstrument(instrument Instrument) {
	s.inventory.Add(instrument)
	log.WithField("store", s.location).WithField("instrument", instrument.ID()).Debug("Stocked instrument")
}

// RemoveInstrument removes the first occurrence of the instrument from the
// store's inventory.
// Returns ErrInstrumentNotFound if the instrument is not stocked here.
func (s *Store) RemoveInstrument(instrument Instrument) error {
	if err := s.inventory.Remove(instrument); err != nil {
		return fmt.Errorf("%w: %s", ErrInstrumentNotFound, instrument.ID())
	}
	log.WithField("store", s.location).WithField("instrument", instrument.ID()).Debug("Removed instrument")
	return nil
}

// CountInstrumentsByKind returns the number of stocked instruments per kind.
// Every kind is part of the result, even if no matching instrument is stocked.
func (s *Store) CountInstrumentsByKind() map[Kind]uint {
	counts := make(map[Kind]uint, len(Kinds))
	for _, kind := range Kinds {
		counts[kind] = 0
	}
	for _, instrument := range s.inventory.List() {
		counts[instrument.Kind()]++
	}
	return counts
}

// CountEmployeesByRole returns one tally per role present among the store's
// employees, ordered by the first appearance of each role. Roles without
// employees do not appear.
func (s *Store) CountEmployeesByRole() []RoleTally {
	var tallies []RoleTally
	indexes := make(map[string]int)
	for _, employee := range s.employees.List() {
		if i, ok := indexes[employee.Role()]; ok {
			tallies[i].Count++
		} else {
			indexes[employee.Role()] = len(tallies)
			tallies = append(tallies, RoleTally{Role: employee.Role(), Count: 1})
		}
	}
	return tallies
}
