package box2d

import (
	"math"
)

/// Friction mixing law. The idea is to allow either fixture to drive the friction to zero.
/// For example, anything slides on ice.
func B2MixFriction(friction1, friction2 float64) float64 {
	return math.Sqrt(friction1 * friction2)
}

/// Restitution mixing law. The idea is allow for anything to bounce off an inelastic surface.
/// For example, a superball bounces on anything.
func B2MixRestitution(restitution1, restitution2 float64) float64 {
	if restitution1 > restitution2 {
		return restitution1
	}

	return restitution2
}

/// Stable handle to a pooled contact: the strategy kind selects the pool,
/// the slot indexes its arena and the generation changes every time the slot
/// is handed out again. The zero value is the null handle.
type B2ContactRef struct {
	Kind int32
	Slot int32
	Gen  uint32
}

func (ref B2ContactRef) IsNull() bool {
	return ref.Gen == 0
}

/// A contact edge is used to connect bodies and contacts together
/// in a contact graph where each body is a node and each contact
/// is an edge. A contact edge belongs to a doubly linked list
/// maintained in each attached body. Each contact has two contact
/// nodes, one for each attached body. Links are contact handles: the
/// neighbour edge is the node of that contact anchored at the same body.
type B2ContactEdge struct {
	Other   *B2Body      ///< provides quick access to the other body attached.
	Contact B2ContactRef ///< the contact
	Prev    B2ContactRef ///< the previous contact in the body's contact list
	Next    B2ContactRef ///< the next contact in the body's contact list
}

var B2Contact_Flag = struct {
	// Used when crawling contact graph when forming islands.
	E_islandFlag uint32

	// Set when the shapes are touching.
	E_touchingFlag uint32

	// This contact can be disabled (by user)
	E_enabledFlag uint32

	// This contact needs filtering because a fixture filter was changed.
	E_filterFlag uint32

	// This bullet contact had a TOI event
	E_bulletHitFlag uint32

	// This contact has a valid TOI in m_toi
	E_toiFlag uint32
}{
	E_islandFlag:    0x0001,
	E_touchingFlag:  0x0002,
	E_enabledFlag:   0x0004,
	E_filterFlag:    0x0008,
	E_bulletHitFlag: 0x0010,
	E_toiFlag:       0x0020,
}

/// The class manages contact between two shapes. A contact exists for each overlapping
/// AABB in the broad-phase (except if filtered). Therefore a contact object may exist
/// that has no contact points.
/// Contacts are owned by a B2ContactFactory pool and are recycled: never keep
/// a *B2Contact across a step where it may be destroyed, keep its B2ContactRef.
type B2Contact struct {
	M_flags uint32

	M_ref      B2ContactRef
	M_live     bool
	M_factory  *B2ContactFactory
	M_strategy *B2ContactStrategy

	// World list links.
	M_prev B2ContactRef
	M_next B2ContactRef

	// Nodes for connecting bodies.
	M_nodeA B2ContactEdge
	M_nodeB B2ContactEdge

	M_fixtureA *B2Fixture
	M_fixtureB *B2Fixture

	M_manifold B2Manifold

	M_toiCount     int
	M_toi          float64
	M_friction     float64
	M_restitution  float64
	M_tangentSpeed float64
}

// reset wipes every trace of the previous occupant and binds the new pair.
func (contact *B2Contact) reset(fA *B2Fixture, fB *B2Fixture) {
	B2Assert(fA != nil && fB != nil)

	contact.M_flags = B2Contact_Flag.E_enabledFlag
	contact.M_ref.Gen++
	contact.M_live = true

	contact.M_fixtureA = fA
	contact.M_fixtureB = fB

	contact.M_manifold = B2Manifold{}

	contact.M_prev = B2ContactRef{}
	contact.M_next = B2ContactRef{}
	contact.M_nodeA = B2ContactEdge{}
	contact.M_nodeB = B2ContactEdge{}

	contact.M_toiCount = 0
	contact.M_toi = 0.0

	contact.M_friction = B2MixFriction(fA.M_friction, fB.M_friction)
	contact.M_restitution = B2MixRestitution(fA.M_restitution, fB.M_restitution)
	contact.M_tangentSpeed = 0.0
}

func (contact B2Contact) GetFlags() uint32 {
	return contact.M_flags
}

func (contact B2Contact) GetRef() B2ContactRef {
	return contact.M_ref
}

/// Is this instance currently handed out by its pool?
func (contact B2Contact) IsLive() bool {
	return contact.M_live
}

func (contact B2Contact) GetStrategy() *B2ContactStrategy {
	return contact.M_strategy
}

/// Get the previous contact in the world's contact list.
func (contact B2Contact) GetPrev() *B2Contact {
	return contact.M_factory.Resolve(contact.M_prev)
}

/// Get the next contact in the world's contact list.
func (contact B2Contact) GetNext() *B2Contact {
	return contact.M_factory.Resolve(contact.M_next)
}

func (contact *B2Contact) GetNodeA() *B2ContactEdge {
	return &contact.M_nodeA
}

func (contact *B2Contact) GetNodeB() *B2ContactEdge {
	return &contact.M_nodeB
}

// nodeFor returns the edge anchored at body. Fixtures on the same body never
// form a contact, so the choice is unambiguous.
func (contact *B2Contact) nodeFor(body *B2Body) *B2ContactEdge {
	if contact.M_fixtureA.M_body == body {
		return &contact.M_nodeA
	}

	B2Assert(contact.M_fixtureB.M_body == body)
	return &contact.M_nodeB
}

/// Get fixture A in this contact.
func (contact B2Contact) GetFixtureA() *B2Fixture {
	return contact.M_fixtureA
}

/// Get fixture B in this contact.
func (contact B2Contact) GetFixtureB() *B2Fixture {
	return contact.M_fixtureB
}

/// Get the contact manifold. Do not modify the manifold unless you understand the
/// internals of Box2D.
func (contact *B2Contact) GetManifold() *B2Manifold {
	return &contact.M_manifold
}

/// Get the world manifold.
func (contact B2Contact) GetWorldManifold(worldManifold *B2WorldManifold) {
	bodyA := contact.M_fixtureA.GetBody()
	bodyB := contact.M_fixtureB.GetBody()
	shapeA := contact.M_fixtureA.GetShape()
	shapeB := contact.M_fixtureB.GetShape()

	worldManifold.Initialize(&contact.M_manifold, bodyA.GetTransform(), shapeA.GetRadius(), bodyB.GetTransform(), shapeB.GetRadius())
}

func (contact B2Contact) GetTOICount() int {
	return contact.M_toiCount
}

func (contact *B2Contact) SetTOICount(toiCount int) {
	contact.M_toiCount = toiCount
}

func (contact B2Contact) GetTOI() float64 {
	return contact.M_toi
}

/// Record a time of impact found by the continuous solver.
func (contact *B2Contact) SetTOI(toi float64) {
	contact.M_toi = toi
	contact.M_flags |= B2Contact_Flag.E_toiFlag
}

func (contact B2Contact) GetFriction() float64 {
	return contact.M_friction
}

/// Override the default friction mixture. You can call this in b2ContactListener::PreSolve.
/// This value persists until set or reset.
func (contact *B2Contact) SetFriction(friction float64) {
	contact.M_friction = friction
}

/// Reset the friction mixture to the default value.
func (contact *B2Contact) ResetFriction() {
	contact.M_friction = B2MixFriction(contact.M_fixtureA.M_friction, contact.M_fixtureB.M_friction)
}

func (contact B2Contact) GetRestitution() float64 {
	return contact.M_restitution
}

func (contact *B2Contact) SetRestitution(restitution float64) {
	contact.M_restitution = restitution
}

func (contact *B2Contact) ResetRestitution() {
	contact.M_restitution = B2MixRestitution(contact.M_fixtureA.M_restitution, contact.M_fixtureB.M_restitution)
}

func (contact B2Contact) GetTangentSpeed() float64 {
	return contact.M_tangentSpeed
}

/// Set the desired tangent speed for a conveyor belt behavior. In meters per second.
func (contact *B2Contact) SetTangentSpeed(speed float64) {
	contact.M_tangentSpeed = speed
}

/// Enable/disable this contact. This can be used inside the pre-solve
/// contact listener. The contact is only disabled for the current
/// time step (or sub-step in continuous collisions).
func (contact *B2Contact) SetEnabled(flag bool) {
	if flag {
		contact.M_flags |= B2Contact_Flag.E_enabledFlag
	} else {
		contact.M_flags &= ^B2Contact_Flag.E_enabledFlag
	}
}

/// Has this contact been disabled?
func (contact B2Contact) IsEnabled() bool {
	return (contact.M_flags & B2Contact_Flag.E_enabledFlag) == B2Contact_Flag.E_enabledFlag
}

/// Is this contact touching?
func (contact B2Contact) IsTouching() bool {
	return (contact.M_flags & B2Contact_Flag.E_touchingFlag) == B2Contact_Flag.E_touchingFlag
}

/// Flag this contact for filtering. Filtering will occur the next time step.
func (contact *B2Contact) FlagForFiltering() {
	contact.M_flags |= B2Contact_Flag.E_filterFlag
}

func (contact B2Contact) NeedsFiltering() bool {
	return (contact.M_flags & B2Contact_Flag.E_filterFlag) == B2Contact_Flag.E_filterFlag
}

// Update the contact manifold and touching status.
// Note: do not assume the fixture AABBs are overlapping or are valid.
// A nil listener skips notifications only.
func B2ContactUpdate(contact *B2Contact, listener B2ContactListenerInterface) {
	oldManifold := contact.M_manifold

	// Re-enable this contact.
	contact.M_flags |= B2Contact_Flag.E_enabledFlag

	touching := false
	wasTouching := contact.IsTouching()

	sensor := contact.M_fixtureA.IsSensor() || contact.M_fixtureB.IsSensor()

	bodyA := contact.M_fixtureA.GetBody()
	bodyB := contact.M_fixtureB.GetBody()
	xfA := bodyA.GetTransform()
	xfB := bodyB.GetTransform()

	if sensor {
		shapeA := contact.M_fixtureA.GetShape()
		shapeB := contact.M_fixtureB.GetShape()
		touching = B2TestOverlapShapes(shapeA, shapeB, xfA, xfB)

		// Sensors don't generate manifolds.
		contact.M_manifold.PointCount = 0
	} else {
		contact.M_strategy.Evaluate(&contact.M_manifold, contact.M_fixtureA, xfA, contact.M_fixtureB, xfB)
		touching = contact.M_manifold.PointCount > 0

		// Match old contact ids to new contact ids and copy the
		// stored impulses to warm start the solver.
		for i := 0; i < contact.M_manifold.PointCount; i++ {
			mp2 := &contact.M_manifold.Points[i]
			mp2.NormalImpulse = 0.0
			mp2.TangentImpulse = 0.0
			id2 := mp2.Id.Key()

			for j := 0; j < oldManifold.PointCount; j++ {
				mp1 := &oldManifold.Points[j]

				if mp1.Id.Key() == id2 {
					mp2.NormalImpulse = mp1.NormalImpulse
					mp2.TangentImpulse = mp1.TangentImpulse
					break
				}
			}
		}

		if touching != wasTouching {
			bodyA.SetAwake(true)
			bodyB.SetAwake(true)
		}
	}

	if touching {
		contact.M_flags |= B2Contact_Flag.E_touchingFlag
	} else {
		contact.M_flags &= ^B2Contact_Flag.E_touchingFlag
	}

	began := !wasTouching && touching
	ended := wasTouching && !touching
	if began {
		contact.M_factory.metrics().ContactBegan()
	} else if ended {
		contact.M_factory.metrics().ContactEnded()
	}

	if listener == nil {
		return
	}

	if began {
		listener.BeginContact(contact)
	}

	if ended {
		listener.EndContact(contact)
	}

	if !sensor && touching {
		listener.PreSolve(contact, oldManifold)
	}
}
