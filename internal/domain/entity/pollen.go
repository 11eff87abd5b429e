package entity

import (
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/index"
)

// PollenTaxon identifies one of the tracked pollen taxa.
type PollenTaxon string

const (
	PollenAlder   PollenTaxon = "ALDER"
	PollenBirch   PollenTaxon = "BIRCH"
	PollenGrass   PollenTaxon = "GRASS"
	PollenMugwort PollenTaxon = "MUGWORT"
	PollenOlive   PollenTaxon = "OLIVE"
	PollenRagweed PollenTaxon = "RAGWEED"
)

// AllPollenTaxa returns every tracked taxon in a stable order.
func AllPollenTaxa() []PollenTaxon {
	return []PollenTaxon{PollenAlder, PollenBirch, PollenGrass, PollenMugwort, PollenOlive, PollenRagweed}
}

// Pollen holds per-taxon concentrations in grains/m³. A nil concentration
// means the taxon was not measured. Converters for providers that report a
// literal 0 for unmeasured taxa must map those to nil before building this
// value; a stored zero always means "measured and zero".
type Pollen struct {
	Alder   *float64 `json:"alder,omitempty"`
	Birch   *float64 `json:"birch,omitempty"`
	Grass   *float64 `json:"grass,omitempty"`
	Mugwort *float64 `json:"mugwort,omitempty"`
	Olive   *float64 `json:"olive,omitempty"`
	Ragweed *float64 `json:"ragweed,omitempty"`
}

// Concentration returns the stored concentration for the taxon.
func (p Pollen) Concentration(taxon PollenTaxon) *float64 {
	switch taxon {
	case PollenAlder:
		return p.Alder
	case PollenBirch:
		return p.Birch
	case PollenGrass:
		return p.Grass
	case PollenMugwort:
		return p.Mugwort
	case PollenOlive:
		return p.Olive
	case PollenRagweed:
		return p.Ragweed
	}
	return nil
}

// Index classifies the taxon concentration on the pollen bands, nil when the
// taxon was not measured.
func (p Pollen) Index(taxon PollenTaxon) *int {
	return index.PollenScale.Index(p.Concentration(taxon))
}

// GlobalIndex is the maximum of the per-taxon indices, nil when no taxon was
// measured.
func (p Pollen) GlobalIndex() *int {
	var global *int
	for _, taxon := range AllPollenTaxa() {
		idx := p.Index(taxon)
		if idx == nil {
			continue
		}
		if global == nil || *idx > *global {
			global = idx
		}
	}
	return global
}

// IsValid reports whether at least one taxon was measured.
func (p Pollen) IsValid() bool {
	for _, taxon := range AllPollenTaxa() {
		if p.Concentration(taxon) != nil {
			return true
		}
	}
	return false
}
