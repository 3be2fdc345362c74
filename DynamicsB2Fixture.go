package box2d

/// This holds contact filtering data.
type B2Filter struct {
	/// The collision category bits. Normally you would just set one bit.
	CategoryBits uint16

	/// The collision mask bits. This states the categories that this
	/// shape would accept for collision.
	MaskBits uint16

	/// Collision groups allow a certain group of objects to never collide (negative)
	/// or always collide (positive). Zero means no collision group. Non-zero group
	/// filtering always wins against the mask bits.
	GroupIndex int16
}

func MakeB2Filter() B2Filter {
	return B2Filter{
		CategoryBits: 0x0001,
		MaskBits:     0xFFFF,
		GroupIndex:   0,
	}
}

/// A fixture definition is used to create a fixture. You can reuse fixture
/// definitions safely.
type B2FixtureDef struct {
	/// The shape, this must be set.
	Shape B2ShapeInterface

	/// Use this to store application specific fixture data.
	UserData interface{}

	/// The friction coefficient, usually in the range [0,1].
	Friction float64

	/// The restitution (elasticity) usually in the range [0,1].
	Restitution float64

	/// A sensor shape collects contact information but never generates a collision
	/// response.
	IsSensor bool

	/// Contact filtering data.
	Filter B2Filter
}

/// The constructor sets the default fixture definition values.
func MakeB2FixtureDef() B2FixtureDef {
	return B2FixtureDef{
		Friction:    0.2,
		Restitution: 0.0,
		IsSensor:    false,
		Filter:      MakeB2Filter(),
	}
}

/// A fixture is used to attach a shape to a body for collision detection. A fixture
/// inherits its transform from its parent. Fixtures hold additional non-geometric data
/// such as friction, collision filters, etc.
type B2Fixture struct {
	M_body  *B2Body
	M_shape B2ShapeInterface

	M_friction    float64
	M_restitution float64

	M_filter B2Filter

	M_isSensor bool

	M_userData interface{}
}

func NewB2Fixture(body *B2Body, def *B2FixtureDef) *B2Fixture {
	B2Assert(body != nil && def.Shape != nil)
	B2Assert(def.Shape.GetType() < B2Shape_Type.E_typeCount)

	return &B2Fixture{
		M_body:        body,
		M_shape:       def.Shape,
		M_friction:    def.Friction,
		M_restitution: def.Restitution,
		M_filter:      def.Filter,
		M_isSensor:    def.IsSensor,
		M_userData:    def.UserData,
	}
}

/// Get the type of the child shape. You can use this to down cast to the concrete shape.
func (fix B2Fixture) GetType() uint8 {
	return fix.M_shape.GetType()
}

func (fix B2Fixture) GetShape() B2ShapeInterface {
	return fix.M_shape
}

/// Is this fixture a sensor (non-solid)?
func (fix B2Fixture) IsSensor() bool {
	return fix.M_isSensor
}

/// Set if this fixture is a sensor. Contacts pick the change up on their next update.
func (fix *B2Fixture) SetSensor(sensor bool) {
	fix.M_isSensor = sensor
	if fix.M_body != nil {
		fix.M_body.SetAwake(true)
	}
}

func (fix B2Fixture) GetFilterData() B2Filter {
	return fix.M_filter
}

/// Set the contact filtering data. Call B2ContactManager.Refilter afterwards
/// so existing contacts are re-examined on the next step.
func (fix *B2Fixture) SetFilterData(filter B2Filter) {
	fix.M_filter = filter
}

func (fix B2Fixture) GetBody() *B2Body {
	return fix.M_body
}

func (fix B2Fixture) GetFriction() float64 {
	return fix.M_friction
}

/// Set the coefficient of friction. This will _not_ change the friction of
/// existing contacts.
func (fix *B2Fixture) SetFriction(friction float64) {
	fix.M_friction = friction
}

func (fix B2Fixture) GetRestitution() float64 {
	return fix.M_restitution
}

/// Set the coefficient of restitution. This will _not_ change the restitution of
/// existing contacts.
func (fix *B2Fixture) SetRestitution(restitution float64) {
	fix.M_restitution = restitution
}

func (fix B2Fixture) GetUserData() interface{} {
	return fix.M_userData
}

func (fix *B2Fixture) SetUserData(data interface{}) {
	fix.M_userData = data
}

/// Get the fixture's AABB at the body's current transform.
func (fix B2Fixture) GetAABB() B2AABB {
	var aabb B2AABB
	fix.M_shape.ComputeAABB(&aabb, fix.M_body.GetTransform())
	return aabb
}
