package valueobject

// UnitOfMeasure represents the unit an item is counted in
type UnitOfMeasure string

const (
	UnitEach     UnitOfMeasure = "EACH"
	UnitBox      UnitOfMeasure = "BOX"
	UnitCase     UnitOfMeasure = "CASE"
	UnitPack     UnitOfMeasure = "PACK"
	UnitBottle   UnitOfMeasure = "BOTTLE"
	UnitBag      UnitOfMeasure = "BAG"
	UnitRoll     UnitOfMeasure = "ROLL"
	UnitGallon   UnitOfMeasure = "GALLON"
	UnitLiter    UnitOfMeasure = "LITER"
	UnitPound    UnitOfMeasure = "POUND"
	UnitOunce    UnitOfMeasure = "OUNCE"
	UnitGram     UnitOfMeasure = "GRAM"
	UnitKilogram UnitOfMeasure = "KILOGRAM"
	UnitDozen    UnitOfMeasure = "DOZEN"
	UnitPair     UnitOfMeasure = "PAIR"
	UnitSet      UnitOfMeasure = "SET"
)

// String returns the string representation of the unit
func (u UnitOfMeasure) String() string {
	return string(u)
}

// IsValid checks if the unit is a known value
func (u UnitOfMeasure) IsValid() bool {
	switch u {
	case UnitEach, UnitBox, UnitCase, UnitPack, UnitBottle, UnitBag,
		UnitRoll, UnitGallon, UnitLiter, UnitPound, UnitOunce, UnitGram,
		UnitKilogram, UnitDozen, UnitPair, UnitSet:
		return true
	}
	return false
}

// Abbreviation returns the display abbreviation for the unit
func (u UnitOfMeasure) Abbreviation() string {
	switch u {
	case UnitEach:
		return "ea"
	case UnitBox:
		return "box"
	case UnitCase:
		return "cs"
	case UnitPack:
		return "pk"
	case UnitBottle:
		return "btl"
	case UnitBag:
		return "bag"
	case UnitRoll:
		return "roll"
	case UnitGallon:
		return "gal"
	case UnitLiter:
		return "L"
	case UnitPound:
		return "lb"
	case UnitOunce:
		return "oz"
	case UnitGram:
		return "g"
	case UnitKilogram:
		return "kg"
	case UnitDozen:
		return "dz"
	case UnitPair:
		return "pr"
	case UnitSet:
		return "set"
	default:
		return string(u)
	}
}

// AllUnits returns all valid units of measure
func AllUnits() []UnitOfMeasure {
	return []UnitOfMeasure{
		UnitEach, UnitBox, UnitCase, UnitPack, UnitBottle, UnitBag,
		UnitRoll, UnitGallon, UnitLiter, UnitPound, UnitOunce, UnitGram,
		UnitKilogram, UnitDozen, UnitPair, UnitSet,
	}
}
