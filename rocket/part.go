package rocket

// === Part Categories ===

// Category classifies a part's role in the stack.
type Category string

const (
	// CategoryEngine is a liquid-fuel engine. Provides thrust; draws
	// propellant from the fuel tanks in its own stage.
	CategoryEngine Category = "engine"

	// CategorySolidBooster is a solid rocket motor. Provides thrust and
	// carries its own propellant, which no other part can draw from.
	CategorySolidBooster Category = "solid-booster"

	// CategoryFuelTank holds liquid propellant for the engines in its stage.
	CategoryFuelTank Category = "fuel-tank"

	// CategoryDecoupler separates the stage below it from the stack above.
	// A decoupler is jettisoned together with the stage it closes.
	CategoryDecoupler Category = "decoupler"

	// CategoryPod is a crewed command pod.
	CategoryPod Category = "pod"

	// CategoryParachute is a recovery parachute.
	CategoryParachute Category = "parachute"

	// CategoryOther is inert structure with no special behavior.
	CategoryOther Category = "other"
)

// ValidCategories is the set of recognized part categories. Shared by
// catalog validation and the YAML loader so error messages stay consistent.
var ValidCategories = map[Category]bool{
	CategoryEngine:       true,
	CategorySolidBooster: true,
	CategoryFuelTank:     true,
	CategoryDecoupler:    true,
	CategoryPod:          true,
	CategoryParachute:    true,
	CategoryOther:        true,
}

// === Part ===

// Part describes one catalog entry. Masses are in tonnes, thrust in
// kilonewtons, specific impulse in seconds. Thrust and ISP carry separate
// sea-level (ASL) and vacuum ratings; parts without thrust leave all four
// zero, parts without propellant leave FuelMass zero.
type Part struct {
	Name     string   `yaml:"name"`
	Category Category `yaml:"category"`

	DryMass  float64 `yaml:"dry_mass"`
	FuelMass float64 `yaml:"fuel_mass,omitempty"`

	ThrustASL float64 `yaml:"thrust_asl,omitempty"`
	ThrustVac float64 `yaml:"thrust_vac,omitempty"`
	ISPASL    float64 `yaml:"isp_asl,omitempty"`
	ISPVac    float64 `yaml:"isp_vac,omitempty"`
}

// WetMass returns the part's fully-fueled mass in tonnes.
func (p Part) WetMass() float64 {
	return p.DryMass + p.FuelMass
}

// Thrusts reports whether the part produces thrust.
func (p Part) Thrusts() bool {
	return p.ThrustVac > 0
}

// String returns the part name.
func (p Part) String() string {
	return p.Name
}

// === Sequence Helpers ===

// TotalDryMass sums the dry mass of parts, in tonnes.
func TotalDryMass(parts []Part) float64 {
	var total float64
	for _, p := range parts {
		total += p.DryMass
	}
	return total
}

// TotalFuelMass sums the propellant mass of parts, in tonnes.
func TotalFuelMass(parts []Part) float64 {
	var total float64
	for _, p := range parts {
		total += p.FuelMass
	}
	return total
}

// TotalWetMass sums the fully-fueled mass of parts, in tonnes.
func TotalWetMass(parts []Part) float64 {
	var total float64
	for _, p := range parts {
		total += p.WetMass()
	}
	return total
}

// HasThrust reports whether any part in the sequence produces thrust.
func HasThrust(parts []Part) bool {
	for _, p := range parts {
		if p.Thrusts() {
			return true
		}
	}
	return false
}

// ContainsCategory reports whether any part in the sequence has the given
// category.
func ContainsCategory(parts []Part, c Category) bool {
	for _, p := range parts {
		if p.Category == c {
			return true
		}
	}
	return false
}

// PartNames returns the part names in sequence order.
func PartNames(parts []Part) []string {
	names := make([]string, len(parts))
	for i, p := range parts {
		names[i] = p.Name
	}
	return names
}
