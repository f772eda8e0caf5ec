package group

import (
	"math/big"
	"sync"
)

// ObjectPool reduces allocation pressure in batch operations (e.g.
// nym.VerifyBatch's verification of many nym signatures) by recycling
// scalars and point slices instead of allocating fresh ones per call.
//
// Adapted from bbs/pool.go's ObjectPool down to the single prime-order
// group this module uses: a big.Int pool and a Point slice pool, dropping
// the teacher's G1/G2-pair and per-message-disclosure-map pools that have
// no counterpart once there is only one group and no per-message
// attribute disclosure.
type ObjectPool struct {
	bigIntPool     sync.Pool
	pointSlicePool sync.Pool
}

// NewObjectPool creates a new object pool.
func NewObjectPool() *ObjectPool {
	return &ObjectPool{
		bigIntPool: sync.Pool{
			New: func() interface{} {
				return new(big.Int)
			},
		},
		pointSlicePool: sync.Pool{
			New: func() interface{} {
				return make([]Point, 0, 8)
			},
		},
	}
}

var defaultPool = NewObjectPool()

// GetBigInt gets a zeroed big.Int from the pool.
func (p *ObjectPool) GetBigInt() *big.Int {
	return p.bigIntPool.Get().(*big.Int).SetInt64(0)
}

// PutBigInt returns a big.Int to the pool.
func (p *ObjectPool) PutBigInt(i *big.Int) {
	if i != nil {
		p.bigIntPool.Put(i)
	}
}

// GetPointSlice gets a Point slice with at least the given capacity.
func (p *ObjectPool) GetPointSlice(capacity int) []Point {
	slice := p.pointSlicePool.Get().([]Point)
	if cap(slice) < capacity {
		return make([]Point, 0, capacity)
	}
	return slice[:0]
}

// PutPointSlice returns a Point slice to the pool.
func (p *ObjectPool) PutPointSlice(slice []Point) {
	if slice != nil {
		p.pointSlicePool.Put(slice)
	}
}

// GetBigInt gets a big.Int from the default pool.
func GetBigInt() *big.Int { return defaultPool.GetBigInt() }

// PutBigInt returns a big.Int to the default pool.
func PutBigInt(i *big.Int) { defaultPool.PutBigInt(i) }

// GetPointSlice gets a Point slice from the default pool.
func GetPointSlice(capacity int) []Point { return defaultPool.GetPointSlice(capacity) }

// PutPointSlice returns a Point slice to the default pool.
func PutPointSlice(slice []Point) { defaultPool.PutPointSlice(slice) }
