package rocket

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Catalog is an immutable, validated set of parts addressable by name.
type Catalog struct {
	parts  []Part
	byName map[string]int
}

// NewCatalog validates parts and builds a Catalog. Part names must be unique;
// masses, thrust ratings and categories must be mutually consistent (see
// validatePart).
func NewCatalog(parts []Part) (*Catalog, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("catalog has no parts")
	}
	byName := make(map[string]int, len(parts))
	for i, p := range parts {
		if err := validatePart(p); err != nil {
			return nil, fmt.Errorf("part %d (%s): %w", i, p.Name, err)
		}
		if _, dup := byName[p.Name]; dup {
			return nil, fmt.Errorf("duplicate part name %q", p.Name)
		}
		byName[p.Name] = i
	}
	return &Catalog{parts: append([]Part(nil), parts...), byName: byName}, nil
}

// validatePart checks one part's internal consistency.
func validatePart(p Part) error {
	if p.Name == "" {
		return fmt.Errorf("part name must not be empty")
	}
	if !ValidCategories[p.Category] {
		return fmt.Errorf("unknown category %q", p.Category)
	}
	if p.DryMass <= 0 {
		return fmt.Errorf("dry_mass must be positive, got %f", p.DryMass)
	}
	if p.FuelMass < 0 {
		return fmt.Errorf("fuel_mass must be non-negative, got %f", p.FuelMass)
	}
	if p.ThrustASL < 0 || p.ThrustVac < 0 || p.ISPASL < 0 || p.ISPVac < 0 {
		return fmt.Errorf("thrust and isp ratings must be non-negative")
	}
	// Thrust and ISP ratings come in pairs: either both environments are
	// rated or neither is.
	if (p.ThrustASL > 0) != (p.ThrustVac > 0) {
		return fmt.Errorf("thrust_asl and thrust_vac must both be set or both be zero")
	}
	if (p.ISPASL > 0) != (p.ISPVac > 0) {
		return fmt.Errorf("isp_asl and isp_vac must both be set or both be zero")
	}
	if (p.ThrustVac > 0) != (p.ISPVac > 0) {
		return fmt.Errorf("thrust requires isp and vice versa")
	}
	switch p.Category {
	case CategoryEngine:
		if p.ThrustVac <= 0 {
			return fmt.Errorf("engine must have thrust ratings")
		}
		if p.FuelMass != 0 {
			return fmt.Errorf("engine carries no propellant of its own (use a fuel tank)")
		}
	case CategorySolidBooster:
		if p.ThrustVac <= 0 {
			return fmt.Errorf("solid booster must have thrust ratings")
		}
		if p.FuelMass <= 0 {
			return fmt.Errorf("solid booster must carry propellant")
		}
	case CategoryFuelTank:
		if p.FuelMass <= 0 {
			return fmt.Errorf("fuel tank must carry propellant")
		}
		if p.ThrustVac != 0 {
			return fmt.Errorf("fuel tank must not have thrust ratings")
		}
	default:
		if p.FuelMass != 0 || p.ThrustVac != 0 {
			return fmt.Errorf("%s must not have propellant or thrust ratings", p.Category)
		}
	}
	return nil
}

// List returns the catalog's parts in catalog order. The returned slice is a
// copy and safe to modify.
func (c *Catalog) List() []Part {
	return append([]Part(nil), c.parts...)
}

// Len returns the number of parts in the catalog.
func (c *Catalog) Len() int {
	return len(c.parts)
}

// Lookup returns the part with the given name, or ErrPartNotFound.
func (c *Catalog) Lookup(name string) (Part, error) {
	i, ok := c.byName[name]
	if !ok {
		return Part{}, fmt.Errorf("%w: %q", ErrPartNotFound, name)
	}
	return c.parts[i], nil
}

// Parts resolves a list of names into parts, preserving order. Fails on the
// first unknown name.
func (c *Catalog) Parts(names ...string) ([]Part, error) {
	parts := make([]Part, 0, len(names))
	for _, name := range names {
		p, err := c.Lookup(name)
		if err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}
	return parts, nil
}

// Names returns all part names, sorted.
func (c *Catalog) Names() []string {
	names := PartNames(c.parts)
	sort.Strings(names)
	return names
}

// === Stock Catalog ===

// defaultParts is the stock part set. Fuel masses are stored in tonnes.
var defaultParts = []Part{
	{Name: "TD-12", Category: CategoryDecoupler, DryMass: 0.04},
	{Name: "RT-5", Category: CategorySolidBooster, DryMass: 0.45, FuelMass: 1.05, ThrustASL: 162.91, ThrustVac: 192.0, ISPASL: 140, ISPVac: 165},
	{Name: "RT-10", Category: CategorySolidBooster, DryMass: 0.75, FuelMass: 2.8125, ThrustASL: 197.90, ThrustVac: 227.0, ISPASL: 170, ISPVac: 195},
	{Name: "BACC", Category: CategorySolidBooster, DryMass: 1.5, FuelMass: 6.15, ThrustASL: 250.0, ThrustVac: 300.0, ISPASL: 175, ISPVac: 210},
	{Name: "LV-T30", Category: CategoryEngine, DryMass: 1.25, ThrustASL: 205.16, ThrustVac: 240.0, ISPASL: 265, ISPVac: 310},
	{Name: "LV-T45", Category: CategoryEngine, DryMass: 1.5, ThrustASL: 167.97, ThrustVac: 215.0, ISPASL: 250, ISPVac: 320},
	{Name: "FL-T100", Category: CategoryFuelTank, DryMass: 0.0625, FuelMass: 0.5},
	{Name: "FL-T200", Category: CategoryFuelTank, DryMass: 0.125, FuelMass: 1.0},
	{Name: "FL-T400", Category: CategoryFuelTank, DryMass: 0.25, FuelMass: 2.0},
	{Name: "Mk1 Command Pod", Category: CategoryPod, DryMass: 0.84},
	{Name: "Mk16 Parachute", Category: CategoryParachute, DryMass: 0.1},
}

// DefaultCatalog returns the built-in stock part catalog.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultParts)
	if err != nil {
		// The stock table is validated by tests; failing here means the
		// binary itself is broken.
		panic(err)
	}
	return c
}

// === YAML Loading ===

// CatalogSpec is the on-disk catalog format.
type CatalogSpec struct {
	Version string `yaml:"version"`
	Parts   []Part `yaml:"parts"`
}

// LoadCatalog reads a catalog from a YAML file. Parsing is strict: unknown
// fields are errors, so typos in part attributes fail loudly instead of
// silently zeroing a rating.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	var spec CatalogSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	c, err := NewCatalog(spec.Parts)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	return c, nil
}
