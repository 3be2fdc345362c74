package box2d

type B2ContactFilterInterface interface {
	ShouldCollide(fixtureA *B2Fixture, fixtureB *B2Fixture) bool
}

/// Implement this interface to get contact information. You can use these results for
/// things like sounds and game logic. You can also get contact results by
/// walking the contact list after the time step.
/// All callbacks run synchronously inside the step, so do not create or
/// destroy contacts from them.
type B2ContactListenerInterface interface {
	/// Called when two fixtures begin to touch.
	BeginContact(contact *B2Contact)

	/// Called when two fixtures cease to touch.
	EndContact(contact *B2Contact)

	/// This is called after a contact is updated. This allows you to inspect a
	/// contact before it goes to the solver. If you are careful, you can modify the
	/// contact manifold (e.g. disable contact).
	/// A copy of the old manifold is provided so that you can detect changes.
	/// Note: this is called only for awake bodies.
	/// Note: this is not called for sensors.
	/// Note: if you set the number of contact points to zero, you will not
	/// get an EndContact callback. However, you may get a BeginContact callback
	/// the next step.
	PreSolve(contact *B2Contact, oldManifold B2Manifold)
}

/// Answers whether the broad-phase still considers two fixtures overlapping.
/// Contacts whose pair stops overlapping are destroyed during Collide.
type B2BroadPhaseInterface interface {
	TestOverlap(fixtureA *B2Fixture, fixtureB *B2Fixture) bool
}

type B2ContactFilter struct {
}

// Return true if contact calculations should be performed between these two shapes.
// If you implement your own collision filter you may want to build from this implementation.
func (cf *B2ContactFilter) ShouldCollide(fixtureA *B2Fixture, fixtureB *B2Fixture) bool {
	filterA := fixtureA.GetFilterData()
	filterB := fixtureB.GetFilterData()

	if filterA.GroupIndex == filterB.GroupIndex && filterA.GroupIndex != 0 {
		return filterA.GroupIndex > 0
	}

	collide := (filterA.MaskBits&filterB.CategoryBits) != 0 && (filterA.CategoryBits&filterB.MaskBits) != 0
	return collide
}

/// Overlap test on fattened fixture AABBs at the bodies' current transforms.
/// Stands in for a broad-phase tree when none is attached.
type B2AABBOverlap struct {
	Margin float64
}

func MakeB2AABBOverlap() B2AABBOverlap {
	return B2AABBOverlap{Margin: B2_aabbExtension}
}

func (o B2AABBOverlap) TestOverlap(fixtureA *B2Fixture, fixtureB *B2Fixture) bool {
	aabbA := fixtureA.GetAABB()
	aabbB := fixtureB.GetAABB()
	aabbA.Fatten(o.Margin)
	aabbB.Fatten(o.Margin)
	return B2TestOverlapBoundingBoxes(aabbA, aabbB)
}
