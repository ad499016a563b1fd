package world

import "sync/atomic"

// ObjectIDGenerator hands out unique runtime entity IDs.
//
// ID ranges (convention):
//
//	0x00000000 - 0x0000FFFF: reserved (0 = invalid)
//	0x00010000 - 0x01FFFFFF: players
//	0x02000000 - 0xFFFFFFFF: mobs and other server-spawned entities
type ObjectIDGenerator struct {
	nextPlayerID atomic.Uint32
	nextMobID    atomic.Uint32
}

// NewObjectIDGenerator creates a generator with counters at the range
// starts.
func NewObjectIDGenerator() *ObjectIDGenerator {
	g := &ObjectIDGenerator{}
	g.nextPlayerID.Store(0x00010000)
	g.nextMobID.Store(0x02000000)
	return g
}

// NextPlayerID returns the next unique player entity ID.
func (g *ObjectIDGenerator) NextPlayerID() uint32 {
	return g.nextPlayerID.Add(1)
}

// NextMobID returns the next unique mob entity ID.
func (g *ObjectIDGenerator) NextMobID() uint32 {
	return g.nextMobID.Add(1)
}
