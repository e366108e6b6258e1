package main

import (
	"fmt"

	"tremolo/internal/config"
	"tremolo/internal/franchise"
	"tremolo/internal/shop"
	"tremolo/pkg/logging"
)

const (
	firstStoreLocation  = "São Paulo"
	secondStoreLocation = "Rio de Janeiro"
	transferredRole     = "Gerente"
)

var log = logging.GetLogger("main")

func initFranchise() (franchise.Manager, error) {
	manager := franchise.NewMemoryManager()
	if path := config.Config.Franchise.BootstrapFile; path != "" {
		log.WithField("path", path).Info("Loading franchise bootstrap file")
		return manager, franchise.Load(path, manager)
	}
	return manager, franchise.LoadDefault(manager)
}

// printStoreReport prints the per-kind instrument counts and the per-role
// employee counts of the store to standard output.
func printStoreReport(s *shop.Store) {
	fmt.Printf("Instruments available in store %s:\n", s.Location())
	instrumentCounts := s.CountInstrumentsByKind()
	for _, kind := range shop.Kinds {
		fmt.Printf("%s: %d\n", kind, instrumentCounts[kind])
	}

	fmt.Printf("\nEmployees in store %s by role:\n", s.Location())
	for _, tally := range s.CountEmployeesByRole() {
		fmt.Printf("%s: %d\n", tally.Role, tally.Count)
	}
}

func findEmployeeByRole(s *shop.Store, role string) (*shop.Employee, bool) {
	for _, employee := range s.Employees() {
		if employee.Role() == role {
			return employee, true
		}
	}
	return nil, false
}

func findInstrumentByKind(s *shop.Store, kind shop.Kind) (shop.Instrument, bool) {
	for _, instrument := range s.Inventory() {
		if instrument.Kind() == kind {
			return instrument, true
		}
	}
	return nil, false
}

func main() {
	if err := config.InitConfig(); err != nil {
		log.WithError(err).Warn("Could not initialize configuration")
	}
	logging.InitializeLogging(config.Config.Logger.Level, config.Config.Logger.Formatter)

	manager, err := initFranchise()
	if err != nil {
		log.WithError(err).Fatal("Could not build the franchise")
	}

	firstStore, ok := manager.GetStore(firstStoreLocation)
	if !ok {
		log.WithField("location", firstStoreLocation).Fatal("Bootstrap data does not contain the first store")
	}
	secondStore, ok := manager.GetStore(secondStoreLocation)
	if !ok {
		log.WithField("location", secondStoreLocation).Fatal("Bootstrap data does not contain the second store")
	}

	printStoreReport(firstStore)

	// Transfer the store manager to the second store and sell the bass.
	if employee, ok := findEmployeeByRole(firstStore, transferredRole); ok {
		if err := employee.TransferTo(secondStore); err != nil {
			log.WithError(err).Fatal("Could not transfer employee")
		}
	}
	if instrument, ok := findInstrumentByKind(firstStore, shop.KindBass); ok {
		if err := firstStore.RemoveInstrument(instrument); err != nil {
			log.WithError(err).Fatal("Could not remove instrument")
		}
	}

	fmt.Println("\nAfter changes:")
	printStoreReport(firstStore)
}
