package geometry

// Objects is an ordered collection of shapes that is itself a Hit.
//
// Objects is not safe for concurrent mutation. Populate it once, then share it
// between any number of readers; FindRayHit never modifies the collection.
type Objects struct {
	objects []Hit
}

// NewObjects creates an empty collection
func NewObjects() *Objects {
	return &Objects{}
}

// Add appends a shape to the collection
func (o *Objects) Add(object Hit) {
	o.objects = append(o.objects, object)
}

// Clear removes every shape, keeping the allocated storage for reuse
func (o *Objects) Clear() {
	clear(o.objects)
	o.objects = o.objects[:0]
}

// Len returns the number of shapes in the collection
func (o *Objects) Len() int {
	return len(o.objects)
}

// Leaves returns the number of shapes, counting into nested collections
func (o *Objects) Leaves() int {
	count := 0
	for _, object := range o.objects {
		if group, ok := object.(*Objects); ok {
			count += group.Leaves()
		} else {
			count++
		}
	}
	return count
}

// FindRayHit returns the closest hit among all shapes. Each shape is queried
// with the upper bound narrowed to the closest hit found so far.
func (o *Objects) FindRayHit(ray Ray, minDist, maxDist float64) (RayHit, bool) {
	var closestHit RayHit
	hitAnything := false
	closestSoFar := maxDist

	for _, object := range o.objects {
		if hit, ok := object.FindRayHit(ray, minDist, closestSoFar); ok {
			hitAnything = true
			closestSoFar = hit.Dist()
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}
