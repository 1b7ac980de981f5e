package render

import (
	"math"
	"sort"

	"classroom-planner/internal/camera"
	"classroom-planner/internal/catalog"
	"classroom-planner/internal/scene"
)

// SortBackToFront returns a copy of objs ordered far-to-near along the
// camera's view axis, so the caller can paint them in slice order.
func SortBackToFront(objs []scene.Object, cam *camera.Camera) []scene.Object {
	out := append([]scene.Object(nil), objs...)
	_, _, forward, pos := cam.Basis()
	sort.SliceStable(out, func(i, j int) bool {
		di := out[i].Position.Sub(pos).Dot(forward)
		dj := out[j].Position.Sub(pos).Dot(forward)
		return di > dj
	})
	return out
}

// HitTest returns the ID of the object under the cursor, testing nearest
// objects first so an overlapping far object never shadows a near one. An
// object is hit when the cursor is within its catalog hit radius, scaled,
// of its projected center.
func HitTest(objs []scene.Object, cat catalog.Catalog, cam *camera.Camera, width, height int, mx, my float64) (uint64, bool) {
	if len(objs) == 0 {
		return 0, false
	}
	pos := cam.Position()
	order := make([]int, len(objs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		da := objs[order[a]].Position.Sub(pos)
		db := objs[order[b]].Position.Sub(pos)
		return da.Dot(da) < db.Dot(db)
	})
	for _, idx := range order {
		obj := objs[idx]
		sx, sy := cam.Project(obj.Position, width, height)
		d := math.Hypot(mx-float64(sx), my-float64(sy))
		if d <= cat.Get(obj.Kind).HitRadius*obj.Scale {
			return obj.ID, true
		}
	}
	return 0, false
}
