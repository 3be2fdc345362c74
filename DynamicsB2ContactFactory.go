package box2d

import (
	"io"
	"log"
	"strings"
)

var b2_discardLogger = log.New(io.Discard, "", 0)

/// Construction parameters for a contact factory.
type B2ContactFactoryDef struct {
	/// Sealed dispatch table, usually NewB2DefaultContactRegistry(). Required.
	Registry *B2ContactRegistry

	/// Pool sizing.
	Config B2ContactConfig

	/// Optional metrics sink.
	Metrics *B2ContactMetrics

	/// Optional logger; nil discards.
	Logger *log.Logger
}

func MakeB2ContactFactoryDef() B2ContactFactoryDef {
	return B2ContactFactoryDef{
		Config: MakeB2ContactConfig(),
	}
}

/// Creates and destroys contacts for one world. It owns one pool per strategy
/// of its registry, so factories of different worlds never share state and
/// need no locking. The registry itself may be shared.
type B2ContactFactory struct {
	M_registry *B2ContactRegistry
	M_pools    []*B2ContactPool
	M_metrics  *B2ContactMetrics
	M_logger   *log.Logger
}

func NewB2ContactFactory(def *B2ContactFactoryDef) *B2ContactFactory {
	B2Assert(def.Registry != nil && def.Registry.IsSealed())
	B2Assert(def.Config.Validate() == nil)

	factory := &B2ContactFactory{
		M_registry: def.Registry,
		M_metrics:  def.Metrics,
		M_logger:   def.Logger,
	}

	strategies := def.Registry.GetStrategies()
	names := make([]string, len(strategies))
	factory.M_pools = make([]*B2ContactPool, len(strategies))
	for _, strategy := range strategies {
		factory.M_pools[strategy.Kind] = NewB2ContactPool(
			factory,
			strategy,
			def.Config.Pool.ChunkSize,
			def.Config.Pool.InitialCapacity,
		)
		names[strategy.Kind] = strategy.Name
	}

	factory.logger().Printf("box2d: contact factory ready (%s)", strings.Join(names, ", "))
	return factory
}

func (factory *B2ContactFactory) metrics() *B2ContactMetrics {
	if factory == nil {
		return nil
	}
	return factory.M_metrics
}

func (factory *B2ContactFactory) logger() *log.Logger {
	if factory == nil || factory.M_logger == nil {
		return b2_discardLogger
	}
	return factory.M_logger
}

/// Create a contact for two fixtures, or return nil when no strategy is
/// registered for their shape types. The returned contact holds the fixtures
/// in the strategy's primary order, which may swap them.
func (factory *B2ContactFactory) Create(fixtureA *B2Fixture, fixtureB *B2Fixture) *B2Contact {
	B2Assert(factory.M_registry != nil)

	register, ok := factory.M_registry.Lookup(fixtureA.GetType(), fixtureB.GetType())
	if !ok {
		return nil
	}

	pool := factory.M_pools[register.Strategy.Kind]

	var contact *B2Contact
	if register.Primary {
		contact = pool.Acquire(fixtureA, fixtureB)
	} else {
		contact = pool.Acquire(fixtureB, fixtureA)
	}

	factory.M_metrics.ContactCreated(register.Strategy.Name)
	return contact
}

/// Return a contact to its pool. The caller must have unlinked it. A contact
/// with manifold points wakes both bodies, since removing it changes what
/// holds them at rest.
func (factory *B2ContactFactory) Destroy(contact *B2Contact) {
	B2Assert(factory.M_registry != nil)

	fixtureA := contact.GetFixtureA()
	fixtureB := contact.GetFixtureB()

	if contact.M_manifold.PointCount > 0 {
		fixtureA.GetBody().SetAwake(true)
		fixtureB.GetBody().SetAwake(true)
	}

	register, ok := factory.M_registry.Lookup(fixtureA.GetType(), fixtureB.GetType())
	B2Assert(ok)

	factory.M_pools[register.Strategy.Kind].Release(contact)
	factory.M_metrics.ContactDestroyed(register.Strategy.Name)
}

/// Get the live contact behind a handle, or nil if the handle is null or stale.
func (factory *B2ContactFactory) Resolve(ref B2ContactRef) *B2Contact {
	if factory == nil || ref.IsNull() || ref.Kind < 0 || int(ref.Kind) >= len(factory.M_pools) {
		return nil
	}

	return factory.M_pools[ref.Kind].Resolve(ref)
}

func (factory B2ContactFactory) GetRegistry() *B2ContactRegistry {
	return factory.M_registry
}

/// Get the pool serving a pair of shape types in either order, or nil.
func (factory B2ContactFactory) GetPool(type1 uint8, type2 uint8) *B2ContactPool {
	register, ok := factory.M_registry.Lookup(type1, type2)
	if !ok {
		return nil
	}

	return factory.M_pools[register.Strategy.Kind]
}
