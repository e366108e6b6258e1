package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tremolo/internal/shop"
)

func TestFindEmployeeByRoleScansInHiringOrder(t *testing.T) {
	store := shop.NewStore("São Paulo")
	first := shop.NewEmployee("Pinho", "123.456.789-00", 2500.0, "Vendedor")
	second := shop.NewEmployee("Outro", "111.111.111-11", 2400.0, "Vendedor")
	store.AddEmployee(first)
	store.AddEmployee(second)

	employee, ok := findEmployeeByRole(store, "Vendedor")
	assert.True(t, ok)
	assert.Same(t, first, employee)

	_, ok = findEmployeeByRole(store, "Gerente")
	assert.False(t, ok)
}

func TestFindInstrumentByKindScansInStockingOrder(t *testing.T) {
	store := shop.NewStore("São Paulo")
	bass := shop.NewBass("Fender", "Jazz Bass", 5000.0, 4, false)
	store.AddInstrument(shop.NewGuitar("Gibson", "Les Paul", 7000.0, 6, "Humbucker"))
	store.AddInstrument(bass)

	instrument, ok := findInstrumentByKind(store, shop.KindBass)
	assert.True(t, ok)
	assert.Same(t, bass, instrument)

	_, ok = findInstrumentByKind(store, shop.KindAcousticGuitar)
	assert.False(t, ok)
}
