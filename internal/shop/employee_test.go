package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransferAttachesEmployeeWithoutStore(t *testing.T) {
	store := NewStore("São Paulo")
	employee := NewEmployee("Pinho", "123.456.789-00", 2500.0, "Vendedor")

	err := employee.TransferTo(store)

	require.NoError(t, err)
	currentStore, ok := employee.CurrentStore()
	assert.True(t, ok)
	assert.Same(t, store, currentStore)
	assert.Contains(t, store.Employees(), employee)
}

func TestTransferMovesEmployeeBetweenStores(t *testing.T) {
	oldStore := NewStore("São Paulo")
	newStore := NewStore("Rio de Janeiro")
	employee := NewEmployee("Padre Kelmon", "987.654.321-00", 3000.0, "Gerente")
	oldStore.AddEmployee(employee)

	err := employee.TransferTo(newStore)

	require.NoError(t, err)
	currentStore, ok := employee.CurrentStore()
	assert.True(t, ok)
	assert.Same(t, newStore, currentStore)
	assert.NotContains(t, oldStore.Employees(), employee)
	assert.Contains(t, newStore.Employees(), employee)
}

func TestTransferFailsWhenBackReferenceIsBroken(t *testing.T) {
	brokenStore := NewStore("São Paulo")
	newStore := NewStore("Rio de Janeiro")
	employee := NewEmployee("Tokar", "456.789.123-00", 2000.0, "Caixa")
	// Simulate an externally corrupted back-reference: the employee points at a
	// store whose collection does not contain it.
	employee.currentStore = brokenStore

	err := employee.TransferTo(newStore)

	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}
