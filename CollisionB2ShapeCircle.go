package box2d

/// A circle shape.
type B2CircleShape struct {
	B2Shape
	/// Position
	M_p B2Vec2
}

func MakeB2CircleShape() B2CircleShape {
	return B2CircleShape{
		B2Shape: B2Shape{
			M_type:   B2Shape_Type.E_circle,
			M_radius: 0.0,
		},
	}
}

func NewB2CircleShape(radius float64) *B2CircleShape {
	res := MakeB2CircleShape()
	res.M_radius = radius
	return &res
}

func (shape B2CircleShape) ComputeAABB(aabb *B2AABB, transform B2Transform) {
	p := B2TransformVec2Mul(transform, shape.M_p)
	aabb.LowerBound = MakeB2Vec2(p[0]-shape.M_radius, p[1]-shape.M_radius)
	aabb.UpperBound = MakeB2Vec2(p[0]+shape.M_radius, p[1]+shape.M_radius)
}

func (shape B2CircleShape) ComputeCore(vertices *[B2_maxPolygonVertices]B2Vec2, transform B2Transform) int {
	vertices[0] = B2TransformVec2Mul(transform, shape.M_p)
	return 1
}
