package engine

import (
	"fmt"
	"math/rand"
)

// Weights is the relative spawn frequency of each piece kind, indexed by Kind.
type Weights [KindCount]int

// Validate reports unusable weight tables.
func (w Weights) Validate() error {
	total := 0
	for k, v := range w {
		if v < 0 {
			return fmt.Errorf("bevel: negative weight %d for %s", v, Kind(k))
		}
		total += v
	}
	if total == 0 {
		return fmt.Errorf("bevel: all piece weights are zero")
	}
	return nil
}

// Draw picks a kind with probability proportional to its weight.
func (w Weights) Draw(rng *rand.Rand) Kind {
	total := 0
	for _, v := range w {
		total += v
	}
	n := rng.Intn(total)
	for k, v := range w {
		if n < v {
			return Kind(k)
		}
		n -= v
	}
	return Kind(KindCount - 1)
}

// Queue is the lookahead of upcoming blocks. It always holds size blocks.
type Queue struct {
	weights Weights
	rng     *rand.Rand
	nextID  BlockID
	blocks  []*Block
}

// NewQueue creates a queue of the given size, filled by weighted draws.
func NewQueue(size int, weights Weights, rng *rand.Rand) *Queue {
	if size < 1 {
		size = 1
	}
	q := &Queue{
		weights: weights,
		rng:     rng,
		blocks:  make([]*Block, 0, size),
	}
	for range size {
		q.blocks = append(q.blocks, q.draw())
	}
	return q
}

// Next removes the head of the queue and refills the tail.
func (q *Queue) Next() *Block {
	if len(q.blocks) == 0 {
		q.blocks = append(q.blocks, q.draw())
	}
	head := q.blocks[0]
	q.blocks = append(q.blocks[1:], q.draw())
	return head
}

// Peek returns up to n upcoming blocks without removing them.
func (q *Queue) Peek(n int) []*Block {
	n = min(n, len(q.blocks))
	out := make([]*Block, n)
	copy(out, q.blocks[:n])
	return out
}

// Len returns the lookahead size.
func (q *Queue) Len() int {
	return len(q.blocks)
}

// Push appends a specific kind to the tail. The queue grows by one;
// used to script piece sequences.
func (q *Queue) Push(kind Kind) *Block {
	q.nextID++
	b := NewBlock(q.nextID, kind)
	q.blocks = append(q.blocks, b)
	return b
}

// Replace discards the lookahead and fills it with the given kinds, in order.
func (q *Queue) Replace(kinds ...Kind) {
	q.blocks = q.blocks[:0]
	for _, k := range kinds {
		q.Push(k)
	}
}

func (q *Queue) draw() *Block {
	q.nextID++
	return NewBlock(q.nextID, q.weights.Draw(q.rng))
}
