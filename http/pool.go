package http

import (
	"errors"
	"math/bits"
	"runtime"
	"sync/atomic"
)

var (
	ErrPoolFull  = errors.New("http: slot pool is full")
	ErrPoolEmpty = errors.New("http: no free connection slot")
)

// connSlot is the per-connection state reused across connections.
type connSlot struct {
	index int
	buf   []byte
}

// slotPool bounds the number of connections handled at once. Every slot owns
// its read buffer, so serving a connection allocates no buffer.
type slotPool struct {
	slots []connSlot
	ready *RingBuffer[*connSlot]
}

func newSlotPool(size, bufferSize int) *slotPool {
	p := &slotPool{
		slots: make([]connSlot, size),
		ready: NewRingBuffer[*connSlot](size),
	}
	for i := range p.slots {
		p.slots[i].index = i
		p.slots[i].buf = make([]byte, bufferSize)
		p.ready.Enqueue(&p.slots[i])
	}
	return p
}

func (p *slotPool) size() int {
	return len(p.slots)
}

// acquire hands out a free slot or ErrPoolEmpty without blocking.
func (p *slotPool) acquire() (*connSlot, error) {
	slot, err := p.ready.Dequeue()
	if errors.Is(err, ErrRingEmpty) {
		return nil, ErrPoolEmpty
	}
	return slot, err
}

func (p *slotPool) release(slot *connSlot) error {
	if err := p.ready.Enqueue(slot); err != nil {
		return ErrPoolFull
	}
	return nil
}

var (
	ErrRingFull  = errors.New("ring buffer is full")
	ErrRingEmpty = errors.New("ring buffer is empty")
)

// RingBuffer is a bounded lock-free MPMC queue.
type RingBuffer[T any] struct {
	buffer []slot[T]
	mask   uint64
	enqPos atomic.Uint64
	deqPos atomic.Uint64
}

type slot[T any] struct {
	sequence atomic.Uint64
	value    T
}

// NewRingBuffer creates a ring buffer holding at least size items. The
// capacity is rounded up to a power of two.
func NewRingBuffer[T any](size int) *RingBuffer[T] {
	capacity := uint64(1)
	if size > 1 {
		capacity = 1 << bits.Len64(uint64(size-1))
	}

	buf := make([]slot[T], capacity)
	for i := range buf {
		buf[i].sequence.Store(uint64(i))
	}
	return &RingBuffer[T]{
		buffer: buf,
		mask:   capacity - 1,
	}
}

func (q *RingBuffer[T]) Cap() int {
	return len(q.buffer)
}

// Enqueue adds an item to the ring buffer
func (q *RingBuffer[T]) Enqueue(val T) error {
	for {
		pos := q.enqPos.Load()
		slot := &q.buffer[pos&q.mask]

		seq := slot.sequence.Load()
		delta := int64(seq) - int64(pos)

		if delta == 0 {
			if q.enqPos.CompareAndSwap(pos, pos+1) {
				slot.value = val
				slot.sequence.Store(pos + 1)
				return nil
			}
		} else if delta < 0 {
			return ErrRingFull
		} else {
			runtime.Gosched()
		}
	}
}

// Dequeue removes and returns the oldest item
func (q *RingBuffer[T]) Dequeue() (T, error) {
	var zero T
	for {
		pos := q.deqPos.Load()
		slot := &q.buffer[pos&q.mask]

		seq := slot.sequence.Load()
		delta := int64(seq) - int64(pos+1)

		if delta == 0 {
			if q.deqPos.CompareAndSwap(pos, pos+1) {
				val := slot.value
				slot.value = zero
				slot.sequence.Store(pos + q.mask + 1)
				return val, nil
			}
		} else if delta < 0 {
			return zero, ErrRingEmpty
		} else {
			runtime.Gosched()
		}
	}
}
