package box2d

/// The body type.
/// static: zero mass, zero velocity, may be manually moved
/// kinematic: zero mass, non-zero velocity set by user, moved by solver
/// dynamic: positive mass, non-zero velocity determined by forces, moved by solver
var B2BodyType = struct {
	B2_staticBody    uint8
	B2_kinematicBody uint8
	B2_dynamicBody   uint8
}{
	B2_staticBody:    0,
	B2_kinematicBody: 1,
	B2_dynamicBody:   2,
}

var B2Body_Flags = struct {
	E_islandFlag uint16
	E_awakeFlag  uint16
}{
	E_islandFlag: 0x0001,
	E_awakeFlag:  0x0002,
}

/// A body definition holds the data the contact core needs from a rigid body.
type B2BodyDef struct {
	/// The body type: static, kinematic, or dynamic.
	Type uint8

	/// The world position of the body.
	Position B2Vec2

	/// The world angle of the body in radians.
	Angle float64

	/// Is this body initially awake or sleeping?
	Awake bool

	/// Use this to store application specific body data.
	UserData interface{}
}

func MakeB2BodyDef() B2BodyDef {
	return B2BodyDef{
		Type:  B2BodyType.B2_staticBody,
		Awake: true,
	}
}

/// A rigid body as seen by the contact core: a transform, a sleep state and
/// the head of its contact edge list. Integration and mass live elsewhere.
type B2Body struct {
	M_type  uint8
	M_flags uint16

	M_xf B2Transform // the body origin transform

	M_sleepTime float64

	// Head of this body's contact edge list, owned by the contact manager.
	M_contactList B2ContactRef

	M_userData interface{}
}

func NewB2Body(bd *B2BodyDef) *B2Body {
	body := &B2Body{
		M_type:     bd.Type,
		M_xf:       MakeB2TransformFromAngle(bd.Position, bd.Angle),
		M_userData: bd.UserData,
	}

	if bd.Awake {
		body.M_flags |= B2Body_Flags.E_awakeFlag
	}

	return body
}

func (body B2Body) GetType() uint8 {
	return body.M_type
}

/// Get the body transform for the body's origin.
func (body B2Body) GetTransform() B2Transform {
	return body.M_xf
}

/// Set the position of the body's origin and rotation.
func (body *B2Body) SetTransform(position B2Vec2, angle float64) {
	body.M_xf = MakeB2TransformFromAngle(position, angle)
}

/// Set the sleep state of the body. A sleeping body has very
/// low CPU cost.
/// @param flag set to true to wake the body, false to put it to sleep.
func (body *B2Body) SetAwake(flag bool) {
	if flag {
		body.M_flags |= B2Body_Flags.E_awakeFlag
	} else {
		body.M_flags &= ^B2Body_Flags.E_awakeFlag
	}
	body.M_sleepTime = 0.0
}

func (body B2Body) IsAwake() bool {
	return (body.M_flags & B2Body_Flags.E_awakeFlag) == B2Body_Flags.E_awakeFlag
}

func (body B2Body) GetUserData() interface{} {
	return body.M_userData
}

/// Get the head of the body's contact edge list. Resolve it through the
/// contact manager, or walk it with B2ContactManager.ForEachBodyContact.
func (body B2Body) GetContactList() B2ContactRef {
	return body.M_contactList
}

// This is used to prevent connected bodies from colliding.
// At least one body must be dynamic.
func (body B2Body) ShouldCollide(other *B2Body) bool {
	return body.M_type == B2BodyType.B2_dynamicBody || other.M_type == B2BodyType.B2_dynamicBody
}
