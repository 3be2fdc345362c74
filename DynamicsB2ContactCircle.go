package box2d

func B2CircleContact_Evaluate(manifold *B2Manifold, fixtureA *B2Fixture, xfA B2Transform, fixtureB *B2Fixture, xfB B2Transform) {
	B2CollideCircles(
		manifold,
		fixtureA.GetShape().(*B2CircleShape), xfA,
		fixtureB.GetShape().(*B2CircleShape), xfB,
	)
}
