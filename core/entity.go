package core

// Entity is a generational handle: arena index in the low 32 bits,
// generation counter in the high 32 bits. A stale handle (slot reused)
// never aliases the new occupant because the generation differs.
type Entity uint64

// EntityNone is the zero handle; index 0 is never allocated
const EntityNone Entity = 0

// MakeEntity packs index and generation into a handle
func MakeEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index returns the arena slot index
func (e Entity) Index() uint32 {
	return uint32(e)
}

// Generation returns the slot reuse counter
func (e Entity) Generation() uint32 {
	return uint32(e >> 32)
}
