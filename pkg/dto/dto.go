// Package dto provides data transfer objects shared between the packages of Tremolo.
package dto

// Formatter mirrors the available Formatters of logrus for configuration purposes.
type Formatter string

const (
	FormatterText = "TextFormatter"
	FormatterJSON = "JSONFormatter"
)

// StoreStatistics contains statistical data for one franchise store.
type StoreStatistics struct {
	Location         string          `json:"location"`
	EmployeeCount    uint            `json:"employeeCount"`
	InventorySize    uint            `json:"inventorySize"`
	InstrumentCounts map[string]uint `json:"instrumentCounts"`
}
