package box2d

func B2EdgeAndCircleContact_Evaluate(manifold *B2Manifold, fixtureA *B2Fixture, xfA B2Transform, fixtureB *B2Fixture, xfB B2Transform) {
	B2CollideEdgeAndCircle(
		manifold,
		fixtureA.GetShape().(*B2EdgeShape), xfA,
		fixtureB.GetShape().(*B2CircleShape), xfB,
	)
}
