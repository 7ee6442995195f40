package systems

import (
	"github.com/automoto/fruitrang/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// overlaps reports whether object, shifted by (dx, dz), overlaps other.
// resolv's Check is cell based, so candidates are filtered by their bounds.
func overlaps(object *resolv.Object, dx, dz float64, other *resolv.Object) bool {
	x, z := object.X+dx, object.Y+dz
	return x < other.X+other.W && x+object.W > other.X &&
		z < other.Y+other.H && z+object.H > other.Y
}

// touching returns the objects carrying tag that object overlaps after
// moving by (dx, dz), along with the collision used to find them.
func touching(object *resolv.Object, dx, dz float64, tag string) (*resolv.Collision, []*resolv.Object) {
	check := object.Check(dx, dz, tag)
	if check == nil {
		return nil, nil
	}
	var hits []*resolv.Object
	for _, other := range check.ObjectsByTags(tag) {
		if other != object && overlaps(object, dx, dz, other) {
			hits = append(hits, other)
		}
	}
	return check, hits
}

// hitsSolid reports whether moving by (dx, dz) would put object inside a wall.
func hitsSolid(object *resolv.Object, dx, dz float64) bool {
	_, hits := touching(object, dx, dz, tags.ResolvSolid)
	return len(hits) > 0
}

// touchingEntries resolves the donburi entries behind touching objects.
func touchingEntries(object *resolv.Object, tag string) []*donburi.Entry {
	_, hits := touching(object, 0, 0, tag)
	var entries []*donburi.Entry
	for _, other := range hits {
		if e, ok := other.Data.(*donburi.Entry); ok && e != nil && e.Valid() {
			entries = append(entries, e)
		}
	}
	return entries
}

// moveAndCollide moves object by (dx, dz) one axis at a time, stopping flush
// against walls. It reports which axes were blocked.
func moveAndCollide(object *resolv.Object, dx, dz float64) (blockedX, blockedZ bool) {
	if dx != 0 {
		if check, solids := touching(object, dx, 0, tags.ResolvSolid); len(solids) > 0 {
			dx = closestContact(dx, solids, func(s *resolv.Object) float64 {
				return check.ContactWithObject(s).X()
			})
			blockedX = true
		}
		object.X += dx
	}
	if dz != 0 {
		if check, solids := touching(object, 0, dz, tags.ResolvSolid); len(solids) > 0 {
			dz = closestContact(dz, solids, func(s *resolv.Object) float64 {
				return check.ContactWithObject(s).Y()
			})
			blockedZ = true
		}
		object.Y += dz
	}
	object.Update()
	return blockedX, blockedZ
}

// closestContact returns the shortest step toward d that ends flush with a
// solid, or 0 when already touching.
func closestContact(d float64, solids []*resolv.Object, contact func(*resolv.Object) float64) float64 {
	step := d
	for _, s := range solids {
		c := contact(s)
		if (d > 0 && c < step) || (d < 0 && c > step) {
			step = c
		}
	}
	if (d > 0 && step < 0) || (d < 0 && step > 0) {
		return 0
	}
	return step
}
