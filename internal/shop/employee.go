package shop

import "fmt"

// Employee is a person working for the franchise.
// Stores reference their employees but do not own them; the back-reference to
// the current store always matches the store whose collection contains the
// employee.
type Employee struct {
	fullName     string
	taxID        string
	salary       float64
	role         string
	currentStore *Store
}

// NewEmployee creates a new employee that does not work at any store yet.
func NewEmployee(fullName, taxID string, salary float64, role string) *Employee {
	return &Employee{
		fullName: fullName,
		taxID:    taxID,
		salary:   salary,
		role:     role,
	}
}

func (e *Employee) FullName() string {
	return e.fullName
}

func (e *Employee) TaxID() string {
	return e.taxID
}

func (e *Employee) Salary() float64 {
	return e.salary
}

func (e *Employee) Role() string {
	return e.role
}

// CurrentStore returns the store the employee currently works at.
// Iff the employee does not work at any store, ok is false.
func (e *Employee) CurrentStore() (s *Store, ok bool) {
	return e.currentStore, e.currentStore != nil
}

// TransferTo moves the employee to the given store.
// The employee is detached from its current store (if any) before it is
// attached to the new one, so it is never part of two stores at once and both
// back-references stay consistent.
func (e *Employee) TransferTo(newStore *Store) error {
	if e.currentStore != nil {
		if err := e.currentStore.RemoveEmployee(e); err != nil {
			return fmt.Errorf("cannot detach employee from current store: %w", err)
		}
	}
	newStore.AddEmployee(e)
	return nil
}
