package rocket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLookup(t *testing.T, name string) Part {
	t.Helper()
	p, err := DefaultCatalog().Lookup(name)
	require.NoError(t, err)
	return p
}

func TestPart_WetMass(t *testing.T) {
	tank := mustLookup(t, "FL-T400")
	assert.InDelta(t, 2.25, tank.WetMass(), 1e-9)

	pod := mustLookup(t, "Mk1 Command Pod")
	assert.InDelta(t, 0.84, pod.WetMass(), 1e-9)
}

func TestPart_Thrusts(t *testing.T) {
	assert.True(t, mustLookup(t, "LV-T30").Thrusts())
	assert.True(t, mustLookup(t, "RT-10").Thrusts())
	assert.False(t, mustLookup(t, "FL-T400").Thrusts())
	assert.False(t, mustLookup(t, "TD-12").Thrusts())
}

func TestSequenceMassHelpers(t *testing.T) {
	// GIVEN a booster and a tank
	parts := []Part{mustLookup(t, "RT-5"), mustLookup(t, "FL-T100")}

	// THEN the sums cover dry, fuel and wet mass consistently
	assert.InDelta(t, 0.5125, TotalDryMass(parts), 1e-9)
	assert.InDelta(t, 1.55, TotalFuelMass(parts), 1e-9)
	assert.InDelta(t, TotalDryMass(parts)+TotalFuelMass(parts), TotalWetMass(parts), 1e-9)
}

func TestHasThrust(t *testing.T) {
	assert.False(t, HasThrust(nil))
	assert.False(t, HasThrust([]Part{mustLookup(t, "FL-T200"), mustLookup(t, "TD-12")}))
	assert.True(t, HasThrust([]Part{mustLookup(t, "FL-T200"), mustLookup(t, "LV-T45")}))
}

func TestContainsCategory(t *testing.T) {
	parts := []Part{mustLookup(t, "Mk1 Command Pod"), mustLookup(t, "Mk16 Parachute")}
	assert.True(t, ContainsCategory(parts, CategoryPod))
	assert.True(t, ContainsCategory(parts, CategoryParachute))
	assert.False(t, ContainsCategory(parts, CategoryEngine))
}

func TestPartNames_PreservesOrder(t *testing.T) {
	parts := []Part{mustLookup(t, "RT-10"), mustLookup(t, "TD-12"), mustLookup(t, "LV-T45")}
	assert.Equal(t, []string{"RT-10", "TD-12", "LV-T45"}, PartNames(parts))
}
