package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitOfMeasure_IsValid(t *testing.T) {
	for _, unit := range AllUnits() {
		assert.True(t, unit.IsValid(), "unit %s should be valid", unit)
	}
	assert.False(t, UnitOfMeasure("FURLONG").IsValid())
	assert.False(t, UnitOfMeasure("").IsValid())
}

func TestUnitOfMeasure_Abbreviation(t *testing.T) {
	tests := []struct {
		unit     UnitOfMeasure
		expected string
	}{
		{UnitEach, "ea"},
		{UnitBox, "box"},
		{UnitCase, "cs"},
		{UnitGallon, "gal"},
		{UnitLiter, "L"},
		{UnitPound, "lb"},
		{UnitKilogram, "kg"},
		{UnitDozen, "dz"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.unit.Abbreviation())
	}

	// Every unit has a distinct abbreviation
	seen := make(map[string]UnitOfMeasure)
	for _, unit := range AllUnits() {
		abbr := unit.Abbreviation()
		_, dup := seen[abbr]
		assert.False(t, dup, "duplicate abbreviation %q", abbr)
		seen[abbr] = unit
	}
}

func TestUnitOfMeasure_AllUnitsCount(t *testing.T) {
	assert.Len(t, AllUnits(), 16)
}
