package box2d_test

import (
	"fmt"
	"testing"

	box2d "github.com/ByteArena/box2d-contacts"
)

// Records listener callbacks as "<event> <fixtureA>-<fixtureB>" lines.
type eventRecorder struct {
	events []string

	// Called from PreSolve when set.
	onPreSolve func(contact *box2d.B2Contact, oldManifold box2d.B2Manifold)
}

func pairLabel(contact *box2d.B2Contact) string {
	return fmt.Sprintf("%v-%v", contact.GetFixtureA().GetUserData(), contact.GetFixtureB().GetUserData())
}

func (r *eventRecorder) BeginContact(contact *box2d.B2Contact) {
	r.events = append(r.events, "begin "+pairLabel(contact))
}

func (r *eventRecorder) EndContact(contact *box2d.B2Contact) {
	r.events = append(r.events, "end "+pairLabel(contact))
}

func (r *eventRecorder) PreSolve(contact *box2d.B2Contact, oldManifold box2d.B2Manifold) {
	r.events = append(r.events, "presolve "+pairLabel(contact))
	if r.onPreSolve != nil {
		r.onPreSolve(contact, oldManifold)
	}
}

func (r *eventRecorder) take() []string {
	events := r.events
	r.events = nil
	return events
}

func newBody(bodyType uint8, x, y float64) *box2d.B2Body {
	bd := box2d.MakeB2BodyDef()
	bd.Type = bodyType
	bd.Position = box2d.MakeB2Vec2(x, y)
	return box2d.NewB2Body(&bd)
}

func newFixture(body *box2d.B2Body, shape box2d.B2ShapeInterface, name string) *box2d.B2Fixture {
	fd := box2d.MakeB2FixtureDef()
	fd.Shape = shape
	fd.UserData = name
	return box2d.NewB2Fixture(body, &fd)
}

func newCircleFixture(bodyType uint8, x, y, radius float64, name string) *box2d.B2Fixture {
	return newFixture(newBody(bodyType, x, y), box2d.NewB2CircleShape(radius), name)
}

func newBoxFixture(bodyType uint8, x, y, hx, hy float64, name string) *box2d.B2Fixture {
	shape := box2d.NewB2PolygonShape()
	shape.SetAsBox(hx, hy)
	return newFixture(newBody(bodyType, x, y), shape, name)
}

func newEdgeFixture(bodyType uint8, x1, y1, x2, y2 float64, name string) *box2d.B2Fixture {
	shape := box2d.NewB2EdgeShape(box2d.MakeB2Vec2(x1, y1), box2d.MakeB2Vec2(x2, y2))
	return newFixture(newBody(bodyType, 0, 0), shape, name)
}

func newDefaultFactory() *box2d.B2ContactFactory {
	def := box2d.MakeB2ContactFactoryDef()
	def.Registry = box2d.NewB2DefaultContactRegistry()
	return box2d.NewB2ContactFactory(&def)
}

func assertPanics(t *testing.T, name string, fn func()) {
	t.Helper()

	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected a panic", name)
		}
	}()

	fn()
}

func assertEvents(t *testing.T, got []string, expected ...string) {
	t.Helper()

	if len(got) != len(expected) {
		t.Fatalf("events: got %q, expected %q", got, expected)
	}

	for i := range got {
		if got[i] != expected[i] {
			t.Fatalf("events: got %q, expected %q", got, expected)
		}
	}
}
