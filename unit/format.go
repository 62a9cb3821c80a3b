package unit

import "fmt"

// String renders the quantity as "<count><scale-prefix><symbol>", e.g.
// "2.5kW" or "500ms". Scales without a metric prefix render the raw ratio
// in brackets: "7[60]s" for a count of 7 at a 60× scale.
func (u Unit[D, R, S]) String() string {
	var d D
	return fmt.Sprintf("%v%s%s", u.v, prefixFor(factorOf[S]()), d.Symbol())
}
