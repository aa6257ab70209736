package rocket_test

// Blank import triggers rocket/ascent's init(), which registers
// NewVerticalAscentFunc. This allows package rocket's internal test files to
// build vertical-model evaluators without directly importing rocket/ascent
// (which would create an import cycle).
import _ "github.com/rocket-sim/rocket-sim/rocket/ascent"
