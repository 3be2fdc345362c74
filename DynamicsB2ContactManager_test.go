package box2d_test

import (
	"fmt"
	"strings"
	"testing"

	box2d "github.com/ByteArena/box2d-contacts"
	"github.com/pmezard/go-difflib/difflib"
)

func bodyContactOthers(mgr *box2d.B2ContactManager, body *box2d.B2Body) []interface{} {
	others := []interface{}{}
	mgr.ForEachBodyContact(body, func(edge *box2d.B2ContactEdge) bool {
		others = append(others, edge.Other.GetUserData())
		return true
	})
	return others
}

func namedCircle(mgr *box2d.B2ContactManager, x float64, name string) *box2d.B2Fixture {
	bd := box2d.MakeB2BodyDef()
	bd.Type = box2d.B2BodyType.B2_dynamicBody
	bd.Position = box2d.MakeB2Vec2(x, 0)
	bd.UserData = name
	return newFixture(box2d.NewB2Body(&bd), box2d.NewB2CircleShape(1), name)
}

func TestManagerLinksContacts(t *testing.T) {
	mgr := box2d.NewB2ContactManager(newDefaultFactory())

	a := namedCircle(mgr, 0, "a")
	b := namedCircle(mgr, 1.5, "b")
	c := namedCircle(mgr, 3, "c")

	ab := mgr.AddPair(a, b)
	bc := mgr.AddPair(b, c)

	if ab == nil || bc == nil {
		t.Fatalf("AddPair rejected a valid pair")
	}

	if mgr.GetContactCount() != 2 {
		t.Fatalf("contact count %d", mgr.GetContactCount())
	}

	// New contacts go to the head of every list.
	if mgr.GetContactList() != bc || bc.GetNext() != ab || ab.GetPrev() != bc || ab.GetNext() != nil {
		t.Errorf("world list is not bc -> ab")
	}

	if got := fmt.Sprint(bodyContactOthers(mgr, b.GetBody())); got != "[c a]" {
		t.Errorf("b's contacts: %s", got)
	}

	if got := fmt.Sprint(bodyContactOthers(mgr, a.GetBody())); got != "[b]" {
		t.Errorf("a's contacts: %s", got)
	}

	if mgr.FindContact(b, a) != ab || mgr.FindContact(c, b) != bc || mgr.FindContact(a, c) != nil {
		t.Errorf("FindContact mismatch")
	}

	if mgr.AddPair(b, a) != nil {
		t.Errorf("duplicate pair was added")
	}

	if !mgr.RemovePair(a, b) {
		t.Fatalf("RemovePair did not find ab")
	}

	if mgr.RemovePair(a, b) {
		t.Errorf("RemovePair found ab twice")
	}

	if mgr.GetContactCount() != 1 || mgr.GetContactList() != bc || bc.GetNext() != nil || bc.GetPrev() != nil {
		t.Errorf("world list after removal")
	}

	if !a.GetBody().GetContactList().IsNull() {
		t.Errorf("a still has contacts")
	}

	if got := fmt.Sprint(bodyContactOthers(mgr, b.GetBody())); got != "[c]" {
		t.Errorf("b's contacts after removal: %s", got)
	}
}

func TestManagerRejectsPairs(t *testing.T) {
	mgr := box2d.NewB2ContactManager(newDefaultFactory())

	body := newBody(box2d.B2BodyType.B2_dynamicBody, 0, 0)
	f1 := newFixture(body, box2d.NewB2CircleShape(1), "f1")
	f2 := newFixture(body, box2d.NewB2CircleShape(1), "f2")
	if mgr.AddPair(f1, f2) != nil {
		t.Errorf("fixtures on one body formed a contact")
	}

	s1 := newCircleFixture(box2d.B2BodyType.B2_staticBody, 0, 0, 1, "s1")
	s2 := newCircleFixture(box2d.B2BodyType.B2_kinematicBody, 1, 0, 1, "s2")
	if mgr.AddPair(s1, s2) != nil {
		t.Errorf("two non-dynamic bodies formed a contact")
	}

	g1 := newCircleFixture(box2d.B2BodyType.B2_dynamicBody, 0, 0, 1, "g1")
	g2 := newCircleFixture(box2d.B2BodyType.B2_dynamicBody, 1, 0, 1, "g2")
	filter := box2d.MakeB2Filter()
	filter.GroupIndex = -2
	g1.SetFilterData(filter)
	g2.SetFilterData(filter)
	if mgr.AddPair(g1, g2) != nil {
		t.Errorf("negative group formed a contact")
	}

	e1 := newEdgeFixture(box2d.B2BodyType.B2_staticBody, -1, 0, 1, 0, "e1")
	e2 := newEdgeFixture(box2d.B2BodyType.B2_dynamicBody, 0, -1, 0, 1, "e2")
	if mgr.AddPair(e1, e2) != nil {
		t.Errorf("edge-edge formed a contact")
	}

	if mgr.GetContactCount() != 0 {
		t.Errorf("contact count %d", mgr.GetContactCount())
	}
}

func TestManagerAddPairWakesSolidBodies(t *testing.T) {
	mgr := box2d.NewB2ContactManager(newDefaultFactory())

	a := newCircleFixture(box2d.B2BodyType.B2_dynamicBody, 0, 0, 1, "a")
	b := newCircleFixture(box2d.B2BodyType.B2_dynamicBody, 1, 0, 1, "b")
	a.GetBody().SetAwake(false)
	b.GetBody().SetAwake(false)
	mgr.AddPair(a, b)

	if !a.GetBody().IsAwake() || !b.GetBody().IsAwake() {
		t.Errorf("AddPair should wake solid bodies")
	}

	s := newCircleFixture(box2d.B2BodyType.B2_dynamicBody, 0, 5, 1, "s")
	s.SetSensor(true)
	d := newCircleFixture(box2d.B2BodyType.B2_dynamicBody, 1, 5, 1, "d")
	s.GetBody().SetAwake(false)
	d.GetBody().SetAwake(false)
	mgr.AddPair(s, d)

	if s.GetBody().IsAwake() || d.GetBody().IsAwake() {
		t.Errorf("AddPair should not wake bodies of a sensor pair")
	}
}

func TestManagerCollide(t *testing.T) {
	mgr := box2d.NewB2ContactManager(newDefaultFactory())
	listener := &eventRecorder{}
	mgr.SetContactListener(listener)

	a := newCircleFixture(box2d.B2BodyType.B2_dynamicBody, 0, 0, 1, "a")
	b := newCircleFixture(box2d.B2BodyType.B2_dynamicBody, 1.5, 0, 1, "b")
	contact := mgr.AddPair(a, b)

	mgr.Collide()
	assertEvents(t, listener.take(), "begin a-b", "presolve a-b")

	// Sleeping pairs are not updated.
	a.GetBody().SetAwake(false)
	b.GetBody().SetAwake(false)
	b.GetBody().SetTransform(box2d.MakeB2Vec2(2.5, 0), 0)
	mgr.Collide()
	assertEvents(t, listener.take())

	if !contact.IsTouching() {
		t.Errorf("sleeping contact was updated")
	}

	// Awake again and outside the fattened boxes: destroyed with an end event.
	a.GetBody().SetAwake(true)
	b.GetBody().SetTransform(box2d.MakeB2Vec2(10, 0), 0)
	mgr.Collide()
	assertEvents(t, listener.take(), "end a-b")

	if mgr.GetContactCount() != 0 || mgr.GetContactList() != nil {
		t.Errorf("contact survived leaving the broad-phase")
	}
}

func TestManagerCollideWithoutBroadPhase(t *testing.T) {
	mgr := box2d.NewB2ContactManager(newDefaultFactory())
	mgr.SetBroadPhase(nil)

	a := newCircleFixture(box2d.B2BodyType.B2_dynamicBody, 0, 0, 1, "a")
	b := newCircleFixture(box2d.B2BodyType.B2_dynamicBody, 10, 0, 1, "b")
	contact := mgr.AddPair(a, b)

	mgr.Collide()

	if mgr.GetContactCount() != 1 || contact.IsTouching() {
		t.Errorf("contact should persist untouched without a broad-phase")
	}
}

func TestManagerRefilter(t *testing.T) {
	mgr := box2d.NewB2ContactManager(newDefaultFactory())
	listener := &eventRecorder{}
	mgr.SetContactListener(listener)

	a := newCircleFixture(box2d.B2BodyType.B2_dynamicBody, 0, 0, 1, "a")
	b := newCircleFixture(box2d.B2BodyType.B2_dynamicBody, 1.5, 0, 1, "b")
	contact := mgr.AddPair(a, b)
	mgr.Collide()
	listener.take()

	// Refilter with unchanged data clears the flag and keeps the contact.
	mgr.Refilter(a)
	if !contact.NeedsFiltering() {
		t.Fatalf("Refilter did not flag the contact")
	}
	mgr.Collide()
	if contact.NeedsFiltering() || mgr.GetContactCount() != 1 {
		t.Errorf("unchanged filter should keep the contact")
	}
	listener.take()

	filter := box2d.MakeB2Filter()
	filter.MaskBits = 0
	a.SetFilterData(filter)
	mgr.Refilter(a)
	mgr.Collide()

	assertEvents(t, listener.take(), "end a-b")
	if mgr.GetContactCount() != 0 {
		t.Errorf("filtered contact survived")
	}
}

func TestManagerDestroyFixtureContacts(t *testing.T) {
	mgr := box2d.NewB2ContactManager(newDefaultFactory())

	hub := newBody(box2d.B2BodyType.B2_dynamicBody, 0, 0)
	left := newFixture(hub, box2d.NewB2CircleShape(1), "left")
	right := newFixture(hub, box2d.NewB2CircleShape(1), "right")

	x := newCircleFixture(box2d.B2BodyType.B2_dynamicBody, 1, 0, 1, "x")
	y := newCircleFixture(box2d.B2BodyType.B2_dynamicBody, -1, 0, 1, "y")

	mgr.AddPair(left, x)
	mgr.AddPair(left, y)
	mgr.AddPair(right, x)

	mgr.DestroyFixtureContacts(left)

	if mgr.GetContactCount() != 1 || mgr.FindContact(right, x) == nil {
		t.Errorf("expected only right-x to remain, count %d", mgr.GetContactCount())
	}

	mgr.DestroyBodyContacts(x.GetBody())

	if mgr.GetContactCount() != 0 || !hub.GetContactList().IsNull() {
		t.Errorf("body contacts survived")
	}
}

func TestManagerForEachContactStops(t *testing.T) {
	mgr := box2d.NewB2ContactManager(newDefaultFactory())

	a := namedCircle(mgr, 0, "a")
	for i := 1; i <= 3; i++ {
		mgr.AddPair(a, namedCircle(mgr, float64(i), fmt.Sprint("n", i)))
	}

	visited := 0
	mgr.ForEachContact(func(contact *box2d.B2Contact) bool {
		visited++
		return visited < 2
	})

	if visited != 2 {
		t.Errorf("visited %d contacts", visited)
	}
}

// A ball dropped onto the ground and bounced off again, with the broad-phase
// emulated by an AABB test before every step.
func TestManagerEventTrace(t *testing.T) {
	mgr := box2d.NewB2ContactManager(newDefaultFactory())

	var trace strings.Builder
	listener := &traceListener{out: &trace}
	mgr.SetContactListener(listener)

	ground := newBoxFixture(box2d.B2BodyType.B2_staticBody, 0, 0, 5, 0.5, "ground")
	ball := newCircleFixture(box2d.B2BodyType.B2_dynamicBody, 0, 2, 0.5, "ball")
	overlap := box2d.MakeB2AABBOverlap()

	heights := []float64{2.0, 1.2, 0.9, 0.95, 1.05, 1.0, 2.0}

	for step, y := range heights {
		listener.step = step
		ball.GetBody().SetTransform(box2d.MakeB2Vec2(0, y), 0)

		if mgr.FindContact(ground, ball) == nil && overlap.TestOverlap(ground, ball) {
			if contact := mgr.AddPair(ball, ground); contact != nil {
				fmt.Fprintf(&trace, "%d: add %s\n", step, pairLabel(contact))
			}
		}

		mgr.Collide()
	}

	fmt.Fprintf(&trace, "contacts: %d\n", mgr.GetContactCount())

	expected := `1: add ground-ball
2: begin ground-ball
2: presolve ground-ball 1
3: presolve ground-ball 1
4: end ground-ball
5: begin ground-ball
5: presolve ground-ball 1
6: end ground-ball
contacts: 0
`

	if trace.String() != expected {
		diff := difflib.UnifiedDiff{
			A:        difflib.SplitLines(expected),
			B:        difflib.SplitLines(trace.String()),
			FromFile: "Expected",
			ToFile:   "Current",
			Context:  0,
		}
		text, _ := difflib.GetUnifiedDiffString(diff)
		t.Fatalf("event trace mismatch: \n%s", text)
	}
}

type traceListener struct {
	out  *strings.Builder
	step int
}

func (l *traceListener) BeginContact(contact *box2d.B2Contact) {
	fmt.Fprintf(l.out, "%d: begin %s\n", l.step, pairLabel(contact))
}

func (l *traceListener) EndContact(contact *box2d.B2Contact) {
	fmt.Fprintf(l.out, "%d: end %s\n", l.step, pairLabel(contact))
}

func (l *traceListener) PreSolve(contact *box2d.B2Contact, oldManifold box2d.B2Manifold) {
	fmt.Fprintf(l.out, "%d: presolve %s %d\n", l.step, pairLabel(contact), contact.GetManifold().PointCount)
}
