package rocket

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTempCatalog(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultCatalog_IsValidAndComplete(t *testing.T) {
	c := DefaultCatalog()
	if c.Len() != 11 {
		t.Errorf("stock catalog has %d parts, want 11", c.Len())
	}
	for _, name := range []string{
		"TD-12", "RT-5", "RT-10", "BACC", "LV-T30", "LV-T45",
		"FL-T100", "FL-T200", "FL-T400", "Mk1 Command Pod", "Mk16 Parachute",
	} {
		if _, err := c.Lookup(name); err != nil {
			t.Errorf("Lookup(%q): %v", name, err)
		}
	}
}

func TestCatalog_LookupUnknown(t *testing.T) {
	_, err := DefaultCatalog().Lookup("Mainsail")
	if !errors.Is(err, ErrPartNotFound) {
		t.Errorf("expected ErrPartNotFound, got %v", err)
	}
}

func TestCatalog_PartsPreservesOrderAndRepeats(t *testing.T) {
	parts, err := DefaultCatalog().Parts("FL-T100", "RT-5", "FL-T100")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := PartNames(parts)
	want := []string{"FL-T100", "RT-5", "FL-T100"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCatalog_PartsFailsOnFirstUnknown(t *testing.T) {
	_, err := DefaultCatalog().Parts("RT-5", "Skipper", "FL-T100")
	if !errors.Is(err, ErrPartNotFound) {
		t.Errorf("expected ErrPartNotFound, got %v", err)
	}
}

func TestCatalog_ListReturnsCopy(t *testing.T) {
	c := DefaultCatalog()
	list := c.List()
	list[0].Name = "mutated"
	if got := c.List()[0].Name; got != "TD-12" {
		t.Errorf("catalog changed through List() copy: first part is %q", got)
	}
}

func TestNewCatalog_RejectsInvalidParts(t *testing.T) {
	engine := Part{Name: "E", Category: CategoryEngine, DryMass: 1, ThrustASL: 100, ThrustVac: 120, ISPASL: 250, ISPVac: 300}
	tests := []struct {
		name  string
		parts []Part
	}{
		{"empty catalog", nil},
		{"empty name", []Part{{Category: CategoryPod, DryMass: 1}}},
		{"unknown category", []Part{{Name: "X", Category: "wing", DryMass: 1}}},
		{"zero dry mass", []Part{{Name: "X", Category: CategoryPod}}},
		{"negative fuel", []Part{{Name: "X", Category: CategoryFuelTank, DryMass: 1, FuelMass: -1}}},
		{"duplicate name", []Part{engine, engine}},
		{"engine without thrust", []Part{{Name: "X", Category: CategoryEngine, DryMass: 1}}},
		{"engine with fuel", []Part{{Name: "X", Category: CategoryEngine, DryMass: 1, FuelMass: 1, ThrustASL: 100, ThrustVac: 120, ISPASL: 250, ISPVac: 300}}},
		{"booster without fuel", []Part{{Name: "X", Category: CategorySolidBooster, DryMass: 1, ThrustASL: 100, ThrustVac: 120, ISPASL: 150, ISPVac: 170}}},
		{"tank with thrust", []Part{{Name: "X", Category: CategoryFuelTank, DryMass: 1, FuelMass: 1, ThrustASL: 100, ThrustVac: 120, ISPASL: 250, ISPVac: 300}}},
		{"tank without fuel", []Part{{Name: "X", Category: CategoryFuelTank, DryMass: 1}}},
		{"half-rated thrust", []Part{{Name: "X", Category: CategoryEngine, DryMass: 1, ThrustASL: 100, ISPASL: 250, ISPVac: 300}}},
		{"thrust without isp", []Part{{Name: "X", Category: CategoryEngine, DryMass: 1, ThrustASL: 100, ThrustVac: 120}}},
		{"decoupler with fuel", []Part{{Name: "X", Category: CategoryDecoupler, DryMass: 1, FuelMass: 0.5}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCatalog(tt.parts); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadCatalog_ValidYAML(t *testing.T) {
	yaml := `
version: "1"
parts:
  - name: Booster
    category: solid-booster
    dry_mass: 0.5
    fuel_mass: 1.0
    thrust_asl: 150.0
    thrust_vac: 180.0
    isp_asl: 140
    isp_vac: 165
  - name: Capsule
    category: pod
    dry_mass: 0.8
`
	c, err := LoadCatalog(writeTempCatalog(t, yaml))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("got %d parts, want 2", c.Len())
	}
	booster, err := c.Lookup("Booster")
	if err != nil {
		t.Fatal(err)
	}
	if booster.ThrustVac != 180.0 {
		t.Errorf("thrust_vac = %f, want 180.0", booster.ThrustVac)
	}
	if booster.Category != CategorySolidBooster {
		t.Errorf("category = %q, want %q", booster.Category, CategorySolidBooster)
	}
}

func TestLoadCatalog_UnknownFieldIsError(t *testing.T) {
	// Strict parsing: a typo like "trust_asl" must fail, not silently zero
	// the rating.
	yaml := `
version: "1"
parts:
  - name: Booster
    category: solid-booster
    dry_mass: 0.5
    fuel_mass: 1.0
    trust_asl: 150.0
    thrust_vac: 180.0
    isp_asl: 140
    isp_vac: 165
`
	if _, err := LoadCatalog(writeTempCatalog(t, yaml)); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestLoadCatalog_InvalidPartIsError(t *testing.T) {
	yaml := `
version: "1"
parts:
  - name: Ghost
    category: engine
    dry_mass: 1.0
`
	if _, err := LoadCatalog(writeTempCatalog(t, yaml)); err == nil {
		t.Fatal("expected validation error for engine without thrust")
	}
}

func TestLoadCatalog_NonexistentFile(t *testing.T) {
	if _, err := LoadCatalog("/nonexistent/catalog.yaml"); err == nil {
		t.Fatal("expected error for nonexistent file")
	}
}

func TestLoadCatalog_MalformedYAML(t *testing.T) {
	if _, err := LoadCatalog(writeTempCatalog(t, "{{invalid yaml")); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestCatalog_NamesSorted(t *testing.T) {
	names := DefaultCatalog().Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted: %q before %q", names[i-1], names[i])
		}
	}
}
