package box2d

/// A convex polygon. It is assumed that the interior of the polygon is to
/// the left of each edge.
/// Polygons have a maximum number of vertices equal to b2_maxPolygonVertices.
/// In most cases you should not need many vertices for a convex polygon.
type B2PolygonShape struct {
	B2Shape

	M_centroid B2Vec2
	M_vertices [B2_maxPolygonVertices]B2Vec2
	M_normals  [B2_maxPolygonVertices]B2Vec2
	M_count    int
}

func MakeB2PolygonShape() B2PolygonShape {
	return B2PolygonShape{
		B2Shape: B2Shape{
			M_type:   B2Shape_Type.E_polygon,
			M_radius: B2_polygonRadius,
		},
	}
}

func NewB2PolygonShape() *B2PolygonShape {
	res := MakeB2PolygonShape()
	return &res
}

/// Build vertices to represent an axis-aligned box centered on the local origin.
/// @param hx the half-width.
/// @param hy the half-height.
func (poly *B2PolygonShape) SetAsBox(hx float64, hy float64) {
	poly.SetAsBoxFromCenterAndAngle(hx, hy, MakeB2Vec2(0, 0), 0.0)
}

/// Build vertices to represent an oriented box.
func (poly *B2PolygonShape) SetAsBoxFromCenterAndAngle(hx float64, hy float64, center B2Vec2, angle float64) {
	poly.M_count = 4
	poly.M_vertices[0] = MakeB2Vec2(-hx, -hy)
	poly.M_vertices[1] = MakeB2Vec2(hx, -hy)
	poly.M_vertices[2] = MakeB2Vec2(hx, hy)
	poly.M_vertices[3] = MakeB2Vec2(-hx, hy)
	poly.M_normals[0] = MakeB2Vec2(0.0, -1.0)
	poly.M_normals[1] = MakeB2Vec2(1.0, 0.0)
	poly.M_normals[2] = MakeB2Vec2(0.0, 1.0)
	poly.M_normals[3] = MakeB2Vec2(-1.0, 0.0)
	poly.M_centroid = center

	xf := MakeB2TransformFromAngle(center, angle)

	// Transform vertices and normals.
	for i := 0; i < poly.M_count; i++ {
		poly.M_vertices[i] = B2TransformVec2Mul(xf, poly.M_vertices[i])
		poly.M_normals[i] = B2RotVec2Mul(xf.Q, poly.M_normals[i])
	}
}

/// Create a convex polygon from counter-clockwise ordered vertices.
/// Unlike Box2D this does not compute a convex hull: the caller supplies one.
func (poly *B2PolygonShape) Set(vertices []B2Vec2) {
	count := len(vertices)
	B2Assert(3 <= count && count <= B2_maxPolygonVertices)

	poly.M_count = count
	copy(poly.M_vertices[:], vertices)

	// Compute normals. Ensure the edges have non-zero length.
	for i := 0; i < count; i++ {
		i2 := 0
		if i+1 < count {
			i2 = i + 1
		}

		edge := poly.M_vertices[i2].Sub(poly.M_vertices[i])
		B2Assert(edge.Dot(edge) > B2_epsilon*B2_epsilon)
		poly.M_normals[i] = B2Vec2CrossVectorScalar(edge, 1.0)
		B2Vec2Normalize(&poly.M_normals[i])
	}

	poly.M_centroid = ComputeCentroid(poly.M_vertices[:count])
}

func ComputeCentroid(vs []B2Vec2) B2Vec2 {
	count := len(vs)
	B2Assert(count >= 3)

	c := MakeB2Vec2(0, 0)
	area := 0.0

	// pRef is the reference point for forming triangles.
	// It's location doesn't change the result (except for rounding error).
	pRef := MakeB2Vec2(0.0, 0.0)
	for i := 0; i < count; i++ {
		pRef = pRef.Add(vs[i])
	}
	pRef = pRef.Mul(1.0 / float64(count))

	inv3 := 1.0 / 3.0

	for i := 0; i < count; i++ {
		// Triangle vertices.
		p1 := pRef
		p2 := vs[i]
		p3 := vs[0]
		if i+1 < count {
			p3 = vs[i+1]
		}

		D := B2Vec2Cross(p2.Sub(p1), p3.Sub(p1))

		triangleArea := 0.5 * D
		area += triangleArea

		// Area weighted centroid
		c = c.Add(p1.Add(p2).Add(p3).Mul(triangleArea * inv3))
	}

	// Centroid; a clockwise winding makes the area negative.
	B2Assert(area > B2_epsilon)
	return c.Mul(1.0 / area)
}

func (poly B2PolygonShape) ComputeAABB(aabb *B2AABB, xf B2Transform) {
	lower := B2TransformVec2Mul(xf, poly.M_vertices[0])
	upper := lower

	for i := 1; i < poly.M_count; i++ {
		v := B2TransformVec2Mul(xf, poly.M_vertices[i])
		lower = B2Vec2Min(lower, v)
		upper = B2Vec2Max(upper, v)
	}

	r := MakeB2Vec2(poly.M_radius, poly.M_radius)
	aabb.LowerBound = lower.Sub(r)
	aabb.UpperBound = upper.Add(r)
}

func (poly B2PolygonShape) ComputeCore(vertices *[B2_maxPolygonVertices]B2Vec2, xf B2Transform) int {
	for i := 0; i < poly.M_count; i++ {
		vertices[i] = B2TransformVec2Mul(xf, poly.M_vertices[i])
	}
	return poly.M_count
}
