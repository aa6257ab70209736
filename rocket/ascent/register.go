// register.go wires the vertical ascent model into the rocket package's
// registration variable (NewVerticalAscentFunc). This init() runs when any
// package imports rocket/ascent, breaking the import cycle between rocket/
// (interface owner) and rocket/ascent/ (implementation). Production code
// imports rocket/ascent directly; test code in package rocket uses
// ascent_import_test.go for the blank import.
package ascent

import "github.com/rocket-sim/rocket-sim/rocket"

func init() {
	rocket.NewVerticalAscentFunc = func() rocket.AscentModel {
		return NewVerticalAscent()
	}
}
