package box2d

/// A line segment (edge) shape. Edges have no adjacency information here, so
/// collision against them is two-sided and does not smooth internal vertices.
type B2EdgeShape struct {
	B2Shape

	/// These are the edge vertices
	M_vertex1, M_vertex2 B2Vec2
}

func MakeB2EdgeShape() B2EdgeShape {
	return B2EdgeShape{
		B2Shape: B2Shape{
			M_type:   B2Shape_Type.E_edge,
			M_radius: B2_polygonRadius,
		},
	}
}

func NewB2EdgeShape(v1, v2 B2Vec2) *B2EdgeShape {
	res := MakeB2EdgeShape()
	res.Set(v1, v2)
	return &res
}

/// Set this as an isolated edge.
func (edge *B2EdgeShape) Set(v1 B2Vec2, v2 B2Vec2) {
	edge.M_vertex1 = v1
	edge.M_vertex2 = v2
}

func (edge B2EdgeShape) ComputeAABB(aabb *B2AABB, xf B2Transform) {
	v1 := B2TransformVec2Mul(xf, edge.M_vertex1)
	v2 := B2TransformVec2Mul(xf, edge.M_vertex2)

	r := MakeB2Vec2(edge.M_radius, edge.M_radius)
	aabb.LowerBound = B2Vec2Min(v1, v2).Sub(r)
	aabb.UpperBound = B2Vec2Max(v1, v2).Add(r)
}

func (edge B2EdgeShape) ComputeCore(vertices *[B2_maxPolygonVertices]B2Vec2, xf B2Transform) int {
	vertices[0] = B2TransformVec2Mul(xf, edge.M_vertex1)
	vertices[1] = B2TransformVec2Mul(xf, edge.M_vertex2)
	return 2
}
