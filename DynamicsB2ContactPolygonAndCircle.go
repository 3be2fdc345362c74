package box2d

func B2PolygonAndCircleContact_Evaluate(manifold *B2Manifold, fixtureA *B2Fixture, xfA B2Transform, fixtureB *B2Fixture, xfB B2Transform) {
	B2CollidePolygonAndCircle(
		manifold,
		fixtureA.GetShape().(*B2PolygonShape), xfA,
		fixtureB.GetShape().(*B2CircleShape), xfB,
	)
}
