package box2d

// Compute contact points for edge versus circle.
// The edge carries no adjacency, so both vertex regions report a contact.
func B2CollideEdgeAndCircle(manifold *B2Manifold, edgeA *B2EdgeShape, xfA B2Transform, circleB *B2CircleShape, xfB B2Transform) {
	manifold.PointCount = 0

	// Compute circle in frame of edge
	Q := B2TransformVec2MulT(xfA, B2TransformVec2Mul(xfB, circleB.M_p))

	A := edgeA.M_vertex1
	B := edgeA.M_vertex2
	e := B.Sub(A)

	// Barycentric coordinates
	u := e.Dot(B.Sub(Q))
	v := e.Dot(Q.Sub(A))

	radius := edgeA.M_radius + circleB.M_radius

	cf := B2ContactID{
		IndexB: 0,
		TypeB:  B2ContactFeature_Type.E_vertex,
	}

	// Region A or B
	if v <= 0.0 || u <= 0.0 {
		P := A
		cf.IndexA = 0
		if v > 0.0 {
			P = B
			cf.IndexA = 1
		}

		if B2Vec2DistanceSquared(Q, P) > radius*radius {
			return
		}

		cf.TypeA = B2ContactFeature_Type.E_vertex
		manifold.PointCount = 1
		manifold.Type = B2Manifold_Type.E_circles
		manifold.LocalNormal = B2Vec2{}
		manifold.LocalPoint = P
		manifold.Points[0].Id = cf
		manifold.Points[0].LocalPoint = circleB.M_p
		return
	}

	// Region AB
	den := e.Dot(e)
	B2Assert(den > 0.0)
	P := A.Mul(u).Add(B.Mul(v)).Mul(1.0 / den)
	if B2Vec2DistanceSquared(Q, P) > radius*radius {
		return
	}

	n := MakeB2Vec2(-e[1], e[0])
	if n.Dot(Q.Sub(A)) < 0.0 {
		n = n.Mul(-1.0)
	}
	B2Vec2Normalize(&n)

	cf.IndexA = 0
	cf.TypeA = B2ContactFeature_Type.E_face
	manifold.PointCount = 1
	manifold.Type = B2Manifold_Type.E_faceA
	manifold.LocalNormal = n
	manifold.LocalPoint = A
	manifold.Points[0].Id = cf
	manifold.Points[0].LocalPoint = circleB.M_p
}
