package box2d

/// Computes the manifold for a fixture pair in primary order. Implementations
/// look only at the two shapes and transforms: no bodies, flags or listeners.
type B2ContactEvaluateFcn func(manifold *B2Manifold, fixtureA *B2Fixture, xfA B2Transform, fixtureB *B2Fixture, xfB B2Transform)

/// One evaluation strategy per unordered pair of shape types. Kind indexes
/// the strategy's pool inside every factory built from the same registry.
type B2ContactStrategy struct {
	Name     string
	Kind     int32
	TypeA    uint8
	TypeB    uint8
	Evaluate B2ContactEvaluateFcn
}

type B2ContactRegister struct {
	Strategy *B2ContactStrategy
	Primary  bool
}

/// Symmetric shape-type dispatch table. Populate it with AddType, then Seal
/// it; a sealed registry is read-only and may be shared between worlds.
type B2ContactRegistry struct {
	M_registers  [][]B2ContactRegister
	M_strategies []*B2ContactStrategy
	M_sealed     bool
}

func MakeB2ContactRegistry() B2ContactRegistry {
	registers := make([][]B2ContactRegister, B2Shape_Type.E_typeCount)
	for i := range registers {
		registers[i] = make([]B2ContactRegister, B2Shape_Type.E_typeCount)
	}

	return B2ContactRegistry{
		M_registers: registers,
	}
}

func NewB2ContactRegistry() *B2ContactRegistry {
	res := MakeB2ContactRegistry()
	return &res
}

/// The registry used by worlds: every shape pair with a narrow-phase routine.
/// Edge versus polygon and edge versus edge stay unregistered.
func NewB2DefaultContactRegistry() *B2ContactRegistry {
	registry := NewB2ContactRegistry()
	registry.AddType("circle", B2CircleContact_Evaluate, B2Shape_Type.E_circle, B2Shape_Type.E_circle)
	registry.AddType("polygon-circle", B2PolygonAndCircleContact_Evaluate, B2Shape_Type.E_polygon, B2Shape_Type.E_circle)
	registry.AddType("polygon", B2PolygonContact_Evaluate, B2Shape_Type.E_polygon, B2Shape_Type.E_polygon)
	registry.AddType("edge-circle", B2EdgeAndCircleContact_Evaluate, B2Shape_Type.E_edge, B2Shape_Type.E_circle)
	registry.Seal()
	return registry
}

/// Install the strategy for (type1, type2) as primary and for (type2, type1)
/// as secondary. Registering a pair twice, or after sealing, is a programming error.
func (registry *B2ContactRegistry) AddType(name string, evaluateFcn B2ContactEvaluateFcn, type1 uint8, type2 uint8) *B2ContactStrategy {
	B2Assert(!registry.M_sealed)
	B2Assert(evaluateFcn != nil)
	B2Assert(type1 < B2Shape_Type.E_typeCount)
	B2Assert(type2 < B2Shape_Type.E_typeCount)
	B2Assert(registry.M_registers[type1][type2].Strategy == nil)
	B2Assert(registry.M_registers[type2][type1].Strategy == nil)

	strategy := &B2ContactStrategy{
		Name:     name,
		Kind:     int32(len(registry.M_strategies)),
		TypeA:    type1,
		TypeB:    type2,
		Evaluate: evaluateFcn,
	}
	registry.M_strategies = append(registry.M_strategies, strategy)

	registry.M_registers[type1][type2] = B2ContactRegister{
		Strategy: strategy,
		Primary:  true,
	}

	if type1 != type2 {
		registry.M_registers[type2][type1] = B2ContactRegister{
			Strategy: strategy,
			Primary:  false,
		}
	}

	return strategy
}

/// Freeze the table. Factories refuse unsealed registries.
func (registry *B2ContactRegistry) Seal() {
	registry.M_sealed = true
}

func (registry B2ContactRegistry) IsSealed() bool {
	return registry.M_sealed
}

/// Find the strategy for an ordered pair of shape types. ok is false when no
/// contact is possible between these shapes.
func (registry B2ContactRegistry) Lookup(type1 uint8, type2 uint8) (B2ContactRegister, bool) {
	B2Assert(type1 < B2Shape_Type.E_typeCount)
	B2Assert(type2 < B2Shape_Type.E_typeCount)

	register := registry.M_registers[type1][type2]
	return register, register.Strategy != nil
}

func (registry B2ContactRegistry) GetStrategies() []*B2ContactStrategy {
	return registry.M_strategies
}
