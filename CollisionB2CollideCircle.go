package box2d

/// Compute the collision manifold between two circles.
func B2CollideCircles(manifold *B2Manifold, circleA *B2CircleShape, xfA B2Transform, circleB *B2CircleShape, xfB B2Transform) {
	manifold.PointCount = 0

	pA := B2TransformVec2Mul(xfA, circleA.M_p)
	pB := B2TransformVec2Mul(xfB, circleB.M_p)

	d := pB.Sub(pA)
	distSqr := d.Dot(d)
	radius := circleA.M_radius + circleB.M_radius
	if distSqr > radius*radius {
		return
	}

	manifold.Type = B2Manifold_Type.E_circles
	manifold.LocalPoint = circleA.M_p
	manifold.LocalNormal = B2Vec2{}
	manifold.PointCount = 1

	manifold.Points[0].LocalPoint = circleB.M_p
	manifold.Points[0].Id.SetKey(0)
}

/// Compute the collision manifold between a polygon and a circle.
func B2CollidePolygonAndCircle(manifold *B2Manifold, polygonA *B2PolygonShape, xfA B2Transform, circleB *B2CircleShape, xfB B2Transform) {
	manifold.PointCount = 0

	// Compute circle position in the frame of the polygon.
	c := B2TransformVec2Mul(xfB, circleB.M_p)
	cLocal := B2TransformVec2MulT(xfA, c)

	// Find the min separating edge.
	normalIndex := 0
	separation := -B2_maxFloat
	radius := polygonA.M_radius + circleB.M_radius
	vertexCount := polygonA.M_count
	vertices := &polygonA.M_vertices
	normals := &polygonA.M_normals

	for i := 0; i < vertexCount; i++ {
		s := normals[i].Dot(cLocal.Sub(vertices[i]))

		if s > radius {
			// Early out.
			return
		}

		if s > separation {
			separation = s
			normalIndex = i
		}
	}

	// Vertices that subtend the incident face.
	vertIndex1 := normalIndex
	vertIndex2 := 0
	if vertIndex1+1 < vertexCount {
		vertIndex2 = vertIndex1 + 1
	}

	v1 := vertices[vertIndex1]
	v2 := vertices[vertIndex2]

	manifold.Type = B2Manifold_Type.E_faceA
	manifold.Points[0].LocalPoint = circleB.M_p
	manifold.Points[0].Id.SetKey(0)

	// If the center is inside the polygon ...
	if separation < B2_epsilon {
		manifold.PointCount = 1
		manifold.LocalNormal = normals[normalIndex]
		manifold.LocalPoint = v1.Add(v2).Mul(0.5)
		return
	}

	// Compute barycentric coordinates
	u1 := cLocal.Sub(v1).Dot(v2.Sub(v1))
	u2 := cLocal.Sub(v2).Dot(v1.Sub(v2))

	switch {
	case u1 <= 0.0:
		if B2Vec2DistanceSquared(cLocal, v1) > radius*radius {
			return
		}

		manifold.PointCount = 1
		manifold.LocalNormal = cLocal.Sub(v1)
		B2Vec2Normalize(&manifold.LocalNormal)
		manifold.LocalPoint = v1

	case u2 <= 0.0:
		if B2Vec2DistanceSquared(cLocal, v2) > radius*radius {
			return
		}

		manifold.PointCount = 1
		manifold.LocalNormal = cLocal.Sub(v2)
		B2Vec2Normalize(&manifold.LocalNormal)
		manifold.LocalPoint = v2

	default:
		faceCenter := v1.Add(v2).Mul(0.5)
		if cLocal.Sub(faceCenter).Dot(normals[vertIndex1]) > radius {
			return
		}

		manifold.PointCount = 1
		manifold.LocalNormal = normals[vertIndex1]
		manifold.LocalPoint = faceCenter
	}
}
