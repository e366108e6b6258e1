package franchise

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"tremolo/internal/shop"
	"tremolo/pkg/logging"
)

var (
	log = logging.GetLogger("franchise")

	ErrUnknownInstrumentKind = errors.New("unknown instrument kind")
	ErrUnknownLocation       = errors.New("bootstrap data references an unknown store location")
)

// fixture is the file layout of a franchise bootstrap description.
// Instrument entries stay generic maps because their fields depend on the
// instrument kind; they are decoded in a second step.
type fixture struct {
	Stores      []storeFixture    `yaml:"stores"`
	Employees   []employeeFixture `yaml:"employees"`
	Instruments []map[string]any  `yaml:"instruments"`
}

type storeFixture struct {
	Location     string `yaml:"location"`
	NearestStore string `yaml:"nearestStore"`
}

type employeeFixture struct {
	FullName string  `yaml:"fullName"`
	TaxID    string  `yaml:"taxId"`
	Salary   float64 `yaml:"salary"`
	Role     string  `yaml:"role"`
	Store    string  `yaml:"store"`
}

// instrumentFixture contains the attributes shared by all instrument entries.
type instrumentFixture struct {
	Kind        string
	Brand       string
	Model       string
	Price       float64
	StringCount uint
	Store       string
}

type bassFixture struct {
	instrumentFixture `mapstructure:",squash"`
	Fretless          bool
}

type guitarFixture struct {
	instrumentFixture `mapstructure:",squash"`
	PickupType        string
}

type acousticGuitarFixture struct {
	instrumentFixture `mapstructure:",squash"`
	BodyType          string
}

// defaultFixture is the sample franchise built when no bootstrap file is configured.
const defaultFixture = `
stores:
  - location: "São Paulo"
    nearestStore: "Rio de Janeiro"
  - location: "Rio de Janeiro"
    nearestStore: "Xique-Xique"
  - location: "Xique-Xique"
    nearestStore: "São Paulo"
employees:
  - fullName: "Pinho"
    taxId: "123.456.789-00"
    salary: 2500.0
    role: "Vendedor"
    store: "São Paulo"
  - fullName: "Padre Kelmon"
    taxId: "987.654.321-00"
    salary: 3000.0
    role: "Gerente"
    store: "São Paulo"
  - fullName: "Tokar"
    taxId: "456.789.123-00"
    salary: 2000.0
    role: "Caixa"
    store: "Rio de Janeiro"
instruments:
  - kind: "Bass"
    brand: "Fender"
    model: "Jazz Bass"
    price: 5000.0
    stringCount: 4
    fretless: false
    store: "São Paulo"
  - kind: "Guitar"
    brand: "Gibson"
    model: "Les Paul"
    price: 7000.0
    stringCount: 6
    pickupType: "Humbucker"
    store: "São Paulo"
  - kind: "AcousticGuitar"
    brand: "Yamaha"
    model: "C40"
    price: 800.0
    stringCount: 6
    bodyType: "Classical"
    store: "Rio de Janeiro"
`

// Load reads a bootstrap description from the given YAML file and registers
// the object graph it describes with the manager.
func Load(path string, manager Manager) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read bootstrap file: %w", err)
	}
	return load(content, manager)
}

// LoadDefault builds the built-in sample franchise.
func LoadDefault(manager Manager) error {
	return load([]byte(defaultFixture), manager)
}

func load(content []byte, manager Manager) error {
	parsed := fixture{}
	if err := yaml.Unmarshal(content, &parsed); err != nil {
		return fmt.Errorf("cannot parse bootstrap data: %w", err)
	}
	if err := buildStores(parsed.Stores, manager); err != nil {
		return err
	}
	if err := buildEmployees(parsed.Employees, manager); err != nil {
		return err
	}
	if err := buildInstruments(parsed.Instruments, manager); err != nil {
		return err
	}
	log.WithField("stores", len(parsed.Stores)).
		WithField("employees", len(parsed.Employees)).
		WithField("instruments", len(parsed.Instruments)).
		Info("Built franchise from bootstrap data")
	return nil
}

func buildStores(fixtures []storeFixture, manager Manager) error {
	for _, f := range fixtures {
		if err := manager.AddStore(shop.NewStore(f.Location)); err != nil {
			return fmt.Errorf("cannot register store %q: %w", f.Location, err)
		}
	}
	// Nearest-store references may point forward or form cycles, so they are
	// resolved only after every store exists.
	for _, f := range fixtures {
		if f.NearestStore == "" {
			continue
		}
		s, _ := manager.GetStore(f.Location)
		nearest, ok := manager.GetStore(f.NearestStore)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownLocation, f.NearestStore)
		}
		s.SetNearestStore(nearest)
	}
	return nil
}

func buildEmployees(fixtures []employeeFixture, manager Manager) error {
	for _, f := range fixtures {
		s, ok := manager.GetStore(f.Store)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownLocation, f.Store)
		}
		s.AddEmployee(shop.NewEmployee(f.FullName, f.TaxID, f.Salary, f.Role))
	}
	return nil
}

func buildInstruments(entries []map[string]any, manager Manager) error {
	for _, entry := range entries {
		instrument, location, err := decodeInstrument(entry)
		if err != nil {
			return err
		}
		s, ok := manager.GetStore(location)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownLocation, location)
		}
		s.AddInstrument(instrument)
	}
	return nil
}

// decodeInstrument decodes one generic instrument entry into the concrete
// variant selected by its kind discriminant.
func decodeInstrument(entry map[string]any) (shop.Instrument, string, error) {
	base := instrumentFixture{}
	if err := mapstructure.Decode(entry, &base); err != nil {
		return nil, "", fmt.Errorf("cannot decode instrument entry: %w", err)
	}
	switch shop.Kind(base.Kind) {
	case shop.KindBass:
		f := bassFixture{}
		if err := mapstructure.Decode(entry, &f); err != nil {
			return nil, "", fmt.Errorf("cannot decode bass entry: %w", err)
		}
		return shop.NewBass(f.Brand, f.Model, f.Price, f.StringCount, f.Fretless), f.Store, nil
	case shop.KindGuitar:
		f := guitarFixture{}
		if err := mapstructure.Decode(entry, &f); err != nil {
			return nil, "", fmt.Errorf("cannot decode guitar entry: %w", err)
		}
		return shop.NewGuitar(f.Brand, f.Model, f.Price, f.StringCount, f.PickupType), f.Store, nil
	case shop.KindAcousticGuitar:
		f := acousticGuitarFixture{}
		if err := mapstructure.Decode(entry, &f); err != nil {
			return nil, "", fmt.Errorf("cannot decode acoustic guitar entry: %w", err)
		}
		return shop.NewAcousticGuitar(f.Brand, f.Model, f.Price, f.StringCount, f.BodyType), f.Store, nil
	default:
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownInstrumentKind, base.Kind)
	}
}
