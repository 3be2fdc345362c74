package box2d

// Delegate of b2World.
type B2ContactManager struct {
	M_factory         *B2ContactFactory
	M_broadPhase      B2BroadPhaseInterface
	M_contactList     B2ContactRef
	M_contactCount    int
	M_contactFilter   B2ContactFilterInterface
	M_contactListener B2ContactListenerInterface
}

func MakeB2ContactManager(factory *B2ContactFactory) B2ContactManager {
	B2Assert(factory != nil)

	return B2ContactManager{
		M_factory:         factory,
		M_broadPhase:      MakeB2AABBOverlap(),
		M_contactFilter:   &B2ContactFilter{},
		M_contactListener: nil,
	}
}

func NewB2ContactManager(factory *B2ContactFactory) *B2ContactManager {
	res := MakeB2ContactManager(factory)
	return &res
}

/// Register a contact filter to provide specific control over collision.
/// nil lets every pair through.
func (mgr *B2ContactManager) SetContactFilter(filter B2ContactFilterInterface) {
	mgr.M_contactFilter = filter
}

/// Register a contact event listener. nil disables notifications.
func (mgr *B2ContactManager) SetContactListener(listener B2ContactListenerInterface) {
	mgr.M_contactListener = listener
}

/// Set the overlap oracle consulted by Collide. nil keeps contacts until
/// RemovePair is called for them.
func (mgr *B2ContactManager) SetBroadPhase(broadPhase B2BroadPhaseInterface) {
	mgr.M_broadPhase = broadPhase
}

func (mgr B2ContactManager) GetFactory() *B2ContactFactory {
	return mgr.M_factory
}

func (mgr B2ContactManager) GetContactCount() int {
	return mgr.M_contactCount
}

/// Get the world contact list. With the returned contact, use
/// B2Contact.GetNext to get the next contact in the world list. A nil
/// contact indicates the end of the list.
func (mgr B2ContactManager) GetContactList() *B2Contact {
	return mgr.M_factory.Resolve(mgr.M_contactList)
}

/// Visit every contact in the world list until fn returns false.
func (mgr *B2ContactManager) ForEachContact(fn func(contact *B2Contact) bool) {
	c := mgr.GetContactList()
	for c != nil {
		next := c.GetNext()
		if !fn(c) {
			return
		}
		c = next
	}
}

/// Visit the contact edges of body until fn returns false. This is the walk
/// the island builder uses.
func (mgr *B2ContactManager) ForEachBodyContact(body *B2Body, fn func(edge *B2ContactEdge) bool) {
	c := mgr.M_factory.Resolve(body.M_contactList)
	for c != nil {
		edge := c.nodeFor(body)
		next := mgr.M_factory.Resolve(edge.Next)
		if !fn(edge) {
			return
		}
		c = next
	}
}

/// Find the contact between two fixtures in either order.
func (mgr *B2ContactManager) FindContact(fixtureA *B2Fixture, fixtureB *B2Fixture) *B2Contact {
	var found *B2Contact

	bodyA := fixtureA.GetBody()
	mgr.ForEachBodyContact(fixtureB.GetBody(), func(edge *B2ContactEdge) bool {
		if edge.Other != bodyA {
			return true
		}

		c := mgr.M_factory.Resolve(edge.Contact)
		fA := c.GetFixtureA()
		fB := c.GetFixtureB()

		if (fA == fixtureA && fB == fixtureB) || (fA == fixtureB && fB == fixtureA) {
			found = c
			return false
		}

		return true
	})

	return found
}

func (mgr *B2ContactManager) Destroy(c *B2Contact) {
	B2Assert(c.IsLive())

	fixtureA := c.GetFixtureA()
	fixtureB := c.GetFixtureB()
	bodyA := fixtureA.GetBody()
	bodyB := fixtureB.GetBody()

	if c.IsTouching() {
		mgr.M_factory.metrics().ContactEnded()
		if mgr.M_contactListener != nil {
			mgr.M_contactListener.EndContact(c)
		}
	}

	// Remove from the world.
	if prev := mgr.M_factory.Resolve(c.M_prev); prev != nil {
		prev.M_next = c.M_next
	}

	if next := mgr.M_factory.Resolve(c.M_next); next != nil {
		next.M_prev = c.M_prev
	}

	if c.M_ref == mgr.M_contactList {
		mgr.M_contactList = c.M_next
	}

	// Remove from body 1 and body 2
	mgr.unlinkEdge(bodyA, c)
	mgr.unlinkEdge(bodyB, c)

	// Call the factory.
	mgr.M_factory.Destroy(c)
	mgr.M_contactCount--
}

func (mgr *B2ContactManager) linkEdge(body *B2Body, other *B2Body, c *B2Contact) {
	node := c.nodeFor(body)
	node.Contact = c.M_ref
	node.Other = other

	node.Prev = B2ContactRef{}
	node.Next = body.M_contactList
	if head := mgr.M_factory.Resolve(body.M_contactList); head != nil {
		head.nodeFor(body).Prev = c.M_ref
	}
	body.M_contactList = c.M_ref
}

func (mgr *B2ContactManager) unlinkEdge(body *B2Body, c *B2Contact) {
	node := c.nodeFor(body)

	if prev := mgr.M_factory.Resolve(node.Prev); prev != nil {
		prev.nodeFor(body).Next = node.Next
	}

	if next := mgr.M_factory.Resolve(node.Next); next != nil {
		next.nodeFor(body).Prev = node.Prev
	}

	if body.M_contactList == c.M_ref {
		body.M_contactList = node.Next
	}
}

// This is the top level collision call for the time step. Here
// all the narrow phase collision is processed for the world
// contact list.
func (mgr *B2ContactManager) Collide() {
	// Update awake contacts.
	c := mgr.GetContactList()

	for c != nil {
		fixtureA := c.GetFixtureA()
		fixtureB := c.GetFixtureB()
		bodyA := fixtureA.GetBody()
		bodyB := fixtureB.GetBody()

		// Is this contact flagged for filtering?
		if c.NeedsFiltering() {
			// Should these bodies collide?
			if !bodyB.ShouldCollide(bodyA) {
				cNuke := c
				c = cNuke.GetNext()
				mgr.Destroy(cNuke)
				continue
			}

			// Check user filtering.
			if mgr.M_contactFilter != nil && !mgr.M_contactFilter.ShouldCollide(fixtureA, fixtureB) {
				cNuke := c
				c = cNuke.GetNext()
				mgr.Destroy(cNuke)
				continue
			}

			// Clear the filtering flag.
			c.M_flags &= ^B2Contact_Flag.E_filterFlag
		}

		activeA := bodyA.IsAwake() && bodyA.M_type != B2BodyType.B2_staticBody
		activeB := bodyB.IsAwake() && bodyB.M_type != B2BodyType.B2_staticBody

		// At least one body must be awake and it must be dynamic or kinematic.
		if !activeA && !activeB {
			c = c.GetNext()
			continue
		}

		// Here we destroy contacts that cease to overlap in the broad-phase.
		if mgr.M_broadPhase != nil && !mgr.M_broadPhase.TestOverlap(fixtureA, fixtureB) {
			cNuke := c
			c = cNuke.GetNext()
			mgr.Destroy(cNuke)
			continue
		}

		// The contact persists.
		B2ContactUpdate(c, mgr.M_contactListener)
		c = c.GetNext()
	}
}

/// Called by the broad-phase when two fixture AABBs start to overlap.
/// Returns the new contact, or nil when the pair is rejected, already has a
/// contact or has no registered strategy.
func (mgr *B2ContactManager) AddPair(fixtureA *B2Fixture, fixtureB *B2Fixture) *B2Contact {
	bodyA := fixtureA.GetBody()
	bodyB := fixtureB.GetBody()

	// Are the fixtures on the same body?
	if bodyA == bodyB {
		return nil
	}

	// Does a contact already exist?
	if mgr.FindContact(fixtureA, fixtureB) != nil {
		return nil
	}

	// Is at least one body dynamic?
	if !bodyB.ShouldCollide(bodyA) {
		return nil
	}

	// Check user filtering.
	if mgr.M_contactFilter != nil && !mgr.M_contactFilter.ShouldCollide(fixtureA, fixtureB) {
		return nil
	}

	// Call the factory.
	c := mgr.M_factory.Create(fixtureA, fixtureB)
	if c == nil {
		return nil
	}

	// Contact creation may swap fixtures.
	fixtureA = c.GetFixtureA()
	fixtureB = c.GetFixtureB()
	bodyA = fixtureA.GetBody()
	bodyB = fixtureB.GetBody()

	// Insert into the world.
	c.M_prev = B2ContactRef{}
	c.M_next = mgr.M_contactList
	if head := mgr.M_factory.Resolve(mgr.M_contactList); head != nil {
		head.M_prev = c.M_ref
	}
	mgr.M_contactList = c.M_ref

	// Connect to island graph.
	mgr.linkEdge(bodyA, bodyB, c)
	mgr.linkEdge(bodyB, bodyA, c)

	// Wake up the bodies
	if !fixtureA.IsSensor() && !fixtureB.IsSensor() {
		bodyA.SetAwake(true)
		bodyB.SetAwake(true)
	}

	mgr.M_contactCount++
	return c
}

/// Called by the broad-phase when two fixture AABBs stop overlapping.
/// Reports whether a contact existed.
func (mgr *B2ContactManager) RemovePair(fixtureA *B2Fixture, fixtureB *B2Fixture) bool {
	c := mgr.FindContact(fixtureA, fixtureB)
	if c == nil {
		return false
	}

	mgr.Destroy(c)
	return true
}

/// Destroy every contact involving fixture, e.g. before the fixture is removed.
func (mgr *B2ContactManager) DestroyFixtureContacts(fixture *B2Fixture) {
	mgr.ForEachBodyContact(fixture.GetBody(), func(edge *B2ContactEdge) bool {
		c := mgr.M_factory.Resolve(edge.Contact)
		if c.GetFixtureA() == fixture || c.GetFixtureB() == fixture {
			mgr.Destroy(c)
		}
		return true
	})
}

/// Destroy every contact attached to body.
func (mgr *B2ContactManager) DestroyBodyContacts(body *B2Body) {
	mgr.ForEachBodyContact(body, func(edge *B2ContactEdge) bool {
		mgr.Destroy(mgr.M_factory.Resolve(edge.Contact))
		return true
	})
}

/// Flag the contacts of fixture for filtering. Call this after changing its
/// filter data; Collide re-runs the filters on the next step.
func (mgr *B2ContactManager) Refilter(fixture *B2Fixture) {
	mgr.ForEachBodyContact(fixture.GetBody(), func(edge *B2ContactEdge) bool {
		c := mgr.M_factory.Resolve(edge.Contact)
		if c.GetFixtureA() == fixture || c.GetFixtureB() == fixture {
			c.FlagForFiltering()
		}
		return true
	})
}
