package anchor

import (
	"math"

	"xdao.co/conloc/loc"
)

// Reanchor re-expresses target, previously relative to an old context, as
// seen from a new context, where inverted describes how the new context
// reaches the old one (an Inverter.Invert result).
//
// The composition walks inverted first and target second, collapsing each
// ascent hop of target against the deepest surviving junction of inverted —
// the same cancellation as `a/b/..` collapsing to `a` in a filesystem path.
// Ascent hops left over once inverted's junctions are exhausted add to the
// composed ascend-count. It returns loc.ErrOverflow when the composed
// interior would exceed loc.MaxJunctions or the composed ascend-count would
// exceed 255.
func Reanchor(target, inverted loc.Location) (loc.Location, error) {
	prefix := inverted.Interior()
	parents := int(inverted.Parents())
	for hop := uint8(0); hop < target.Parents(); hop++ {
		if _, ok := prefix.TakeLast(); !ok {
			parents++
		}
	}
	if parents > math.MaxUint8 {
		return loc.Location{}, loc.ErrOverflow
	}

	out := prefix
	rest := target.Interior()
	for {
		j, ok := rest.TakeFirst()
		if !ok {
			break
		}
		if err := out.PushBack(j); err != nil {
			return loc.Location{}, err
		}
	}
	return loc.New(uint8(parents), out), nil
}
