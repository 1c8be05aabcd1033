package monitor

// DefaultUnit is used when no unit, or an unknown one, is configured.
const DefaultUnit = "kB"

// unitFactors converts a byte count into the display unit.
// Lowercase b means bits, uppercase B means bytes.
var unitFactors = map[string]float64{
	"B":  1,
	"kB": 1.0 / 1024,
	"b":  8,
	"kb": 8.0 / 1024,
	"mb": 8.0 / (1024 * 1024),
	"mB": 1.0 / (1024 * 1024),
}

// Units lists the recognized display units in the order they are offered.
var Units = []string{"B", "kB", "mB", "b", "kb", "mb"}

// ResolveUnit returns the effective unit and its conversion factor.
// Units are case-sensitive; anything unrecognized falls back to kB.
func ResolveUnit(unit string) (string, float64) {
	if f, ok := unitFactors[unit]; ok {
		return unit, f
	}
	return DefaultUnit, unitFactors[DefaultUnit]
}

// IsKnownUnit reports whether unit is one of the recognized display units.
func IsKnownUnit(unit string) bool {
	_, ok := unitFactors[unit]
	return ok
}

// Scale converts a byte quantity into unit.
func Scale(bytes float64, unit string) float64 {
	_, f := ResolveUnit(unit)
	return bytes * f
}
