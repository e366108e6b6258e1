package shop

import (
	"fmt"

	"github.com/google/uuid"
)

// Kind is the discriminant of the closed set of instrument variants.
type Kind string

const (
	KindBass           Kind = "Bass"
	KindGuitar         Kind = "Guitar"
	KindAcousticGuitar Kind = "AcousticGuitar"
)

// Kinds lists all instrument kinds in their fixed presentation order.
var Kinds = []Kind{KindBass, KindGuitar, KindAcousticGuitar}

// Instrument is a product stocked by a store.
// All attributes are fixed at construction.
type Instrument interface {
	// ID returns the inventory identity of the instrument.
	ID() string

	// Kind returns the variant discriminant of the instrument.
	Kind() Kind

	// Brand returns the manufacturer of the instrument.
	Brand() string

	// Model returns the product name of the instrument.
	Model() string

	// Price returns the retail price of the instrument.
	Price() float64

	// StringCount returns the number of strings of the instrument.
	StringCount() uint

	// Describe returns a human-readable description of the instrument.
	Describe() string
}

// properties contains the attributes shared by all instrument variants.
type properties struct {
	id          string
	brand       string
	model       string
	price       float64
	stringCount uint
}

func newProperties(brand, model string, price float64, stringCount uint) properties {
	return properties{
		id:          uuid.NewString(),
		brand:       brand,
		model:       model,
		price:       price,
		stringCount: stringCount,
	}
}

func (p *properties) ID() string {
	return p.id
}

func (p *properties) Brand() string {
	return p.brand
}

func (p *properties) Model() string {
	return p.model
}

func (p *properties) Price() float64 {
	return p.price
}

func (p *properties) StringCount() uint {
	return p.stringCount
}

// Bass is an electric bass. Its description distinguishes fretless from
// fretted necks.
type Bass struct {
	properties
	fretless bool
}

// NewBass creates a new bass with the provided attributes.
func NewBass(brand, model string, price float64, stringCount uint, fretless bool) *Bass {
	return &Bass{
		properties: newProperties(brand, model, price, stringCount),
		fretless:   fretless,
	}
}

func (b *Bass) Kind() Kind {
	return KindBass
}

func (b *Bass) Fretless() bool {
	return b.fretless
}

func (b *Bass) Describe() string {
	neck := "fretted"
	if b.fretless {
		neck = "fretless"
	}
	return fmt.Sprintf("Bass %s %s, %d strings, %s", b.brand, b.model, b.stringCount, neck)
}

// Guitar is an electric guitar with a configurable pickup type.
type Guitar struct {
	properties
	pickupType string
}

// NewGuitar creates a new guitar with the provided attributes.
func NewGuitar(brand, model string, price float64, stringCount uint, pickupType string) *Guitar {
	return &Guitar{
		properties: newProperties(brand, model, price, stringCount),
		pickupType: pickupType,
	}
}

func (g *Guitar) Kind() Kind {
	return KindGuitar
}

func (g *Guitar) PickupType() string {
	return g.pickupType
}

func (g *Guitar) Describe() string {
	return fmt.Sprintf("Guitar %s %s, %d strings, %s pickup", g.brand, g.model, g.stringCount, g.pickupType)
}

// AcousticGuitar is an acoustic guitar with a specific body type.
type AcousticGuitar struct {
	properties
	bodyType string
}

// NewAcousticGuitar creates a new acoustic guitar with the provided attributes.
func NewAcousticGuitar(brand, model string, price float64, stringCount uint, bodyType string) *AcousticGuitar {
	return &AcousticGuitar{
		properties: newProperties(brand, model, price, stringCount),
		bodyType:   bodyType,
	}
}

func (a *AcousticGuitar) Kind() Kind {
	return KindAcousticGuitar
}

func (a *AcousticGuitar) BodyType() string {
	return a.bodyType
}

func (a *AcousticGuitar) Describe() string {
	return fmt.Sprintf("Acoustic guitar %s %s, %d strings, %s body", a.brand, a.model, a.stringCount, a.bodyType)
}
