package box2d

/// A shape is used for collision detection. The shape type is the only thing
/// the contact factory looks at; it selects the evaluation strategy.

var B2Shape_Type = struct {
	E_circle    uint8
	E_edge      uint8
	E_polygon   uint8
	E_typeCount uint8
}{
	E_circle:    0,
	E_edge:      1,
	E_polygon:   2,
	E_typeCount: 3,
}

type B2ShapeInterface interface {
	/// Get the type of this shape. You can use this to down cast to the concrete shape.
	/// @return the shape type.
	GetType() uint8

	/// Get the skin radius of this shape.
	GetRadius() float64

	/// Given a transform, compute the associated axis aligned bounding box.
	/// @param aabb returns the axis aligned box.
	/// @param xf the world transform of the shape.
	ComputeAABB(aabb *B2AABB, xf B2Transform)

	/// Write the convex core of the shape in world coordinates into vertices
	/// and return the vertex count. The full shape is the core inflated by
	/// GetRadius().
	ComputeCore(vertices *[B2_maxPolygonVertices]B2Vec2, xf B2Transform) int
}

type B2Shape struct {
	M_type uint8

	/// Radius of a shape. For polygonal shapes this must be b2_polygonRadius. There is no support for
	/// making rounded polygons.
	M_radius float64
}

func (shape B2Shape) GetType() uint8 {
	return shape.M_type
}

func (shape B2Shape) GetRadius() float64 {
	return shape.M_radius
}

func (shape *B2Shape) SetRadius(r float64) {
	shape.M_radius = r
}

/// An axis aligned bounding box.
type B2AABB struct {
	LowerBound B2Vec2 ///< the lower vertex
	UpperBound B2Vec2 ///< the upper vertex
}

/// Grow the box by margin on every side.
func (bb *B2AABB) Fatten(margin float64) {
	r := MakeB2Vec2(margin, margin)
	bb.LowerBound = bb.LowerBound.Sub(r)
	bb.UpperBound = bb.UpperBound.Add(r)
}

func B2TestOverlapBoundingBoxes(a, b B2AABB) bool {
	d1 := b.LowerBound.Sub(a.UpperBound)
	d2 := a.LowerBound.Sub(b.UpperBound)

	if d1[0] > 0.0 || d1[1] > 0.0 {
		return false
	}

	if d2[0] > 0.0 || d2[1] > 0.0 {
		return false
	}

	return true
}
