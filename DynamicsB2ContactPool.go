package box2d

/// Recycling store for the contacts of one strategy. The arena holds every
/// contact the pool ever constructed; free slots are kept on a stack. A
/// recycled contact always serves the same pair of shape types.
/// A pool belongs to one factory and is not safe for concurrent use.
type B2ContactPool struct {
	M_strategy *B2ContactStrategy
	M_factory  *B2ContactFactory

	M_slots     []*B2Contact
	M_free      B2GrowableStack[int32]
	M_chunkSize int
	M_liveCount int
}

func NewB2ContactPool(factory *B2ContactFactory, strategy *B2ContactStrategy, chunkSize int, initialCapacity int) *B2ContactPool {
	B2Assert(strategy != nil)
	B2Assert(chunkSize >= 1 && initialCapacity >= 0)

	pool := &B2ContactPool{
		M_strategy:  strategy,
		M_factory:   factory,
		M_slots:     make([]*B2Contact, 0, initialCapacity),
		M_free:      MakeB2GrowableStack[int32](initialCapacity),
		M_chunkSize: chunkSize,
	}

	if initialCapacity > 0 {
		pool.grow(initialCapacity)
	}

	return pool
}

func (pool *B2ContactPool) grow(count int) {
	base := len(pool.M_slots)
	for i := 0; i < count; i++ {
		pool.M_slots = append(pool.M_slots, &B2Contact{
			M_ref: B2ContactRef{
				Kind: pool.M_strategy.Kind,
				Slot: int32(base + i),
			},
			M_factory:  pool.M_factory,
			M_strategy: pool.M_strategy,
		})
	}

	// Hand out the lowest slot first.
	for i := count - 1; i >= 0; i-- {
		pool.M_free.Push(int32(base + i))
	}

	pool.M_factory.metrics().PoolAllocated(pool.M_strategy.Name, count)
	pool.M_factory.logger().Printf("box2d: %s contact pool grew to %d slots", pool.M_strategy.Name, len(pool.M_slots))
}

/// Take a free contact, constructing a chunk of new ones when none is left,
/// and reinitialize it for the pair. Nothing of the previous occupant survives.
func (pool *B2ContactPool) Acquire(fixtureA *B2Fixture, fixtureB *B2Fixture) *B2Contact {
	if pool.M_free.GetCount() == 0 {
		pool.grow(pool.M_chunkSize)
	}

	contact := pool.M_slots[pool.M_free.Pop()]
	contact.reset(fixtureA, fixtureB)
	pool.M_liveCount++
	return contact
}

/// Return a contact to the pool. Its fields are left as they are until the
/// next Acquire; outstanding handles to it stop resolving immediately.
func (pool *B2ContactPool) Release(contact *B2Contact) {
	B2Assert(contact.M_strategy == pool.M_strategy)
	B2Assert(contact.M_live)

	contact.M_live = false
	pool.M_free.Push(contact.M_ref.Slot)
	pool.M_liveCount--
}

/// Get the live contact behind a handle, or nil if the handle is null or stale.
func (pool *B2ContactPool) Resolve(ref B2ContactRef) *B2Contact {
	if ref.IsNull() || ref.Slot < 0 || int(ref.Slot) >= len(pool.M_slots) {
		return nil
	}

	contact := pool.M_slots[ref.Slot]
	if !contact.M_live || contact.M_ref != ref {
		return nil
	}

	return contact
}

/// Number of contacts ever constructed by this pool.
func (pool B2ContactPool) GetAllocationCount() int {
	return len(pool.M_slots)
}

func (pool B2ContactPool) GetFreeCount() int {
	return pool.M_free.GetCount()
}

func (pool B2ContactPool) GetLiveCount() int {
	return pool.M_liveCount
}
