package sat

import "github.com/rhartert/yagh"

// EMA is an exponential moving average, used to report search trends (such
// as average learnt-clause width) without keeping the full history.
type EMA struct {
	decay  float64
	value  float64
	primed bool
}

// NewEMA returns an EMA with the given decay in (0, 1]; smaller values track
// more recent samples more closely.
func NewEMA(decay float64) EMA {
	return EMA{decay: decay}
}

// Add folds x into the average.
func (e *EMA) Add(x float64) {
	if !e.primed {
		e.value = x
		e.primed = true
		return
	}
	e.value = e.decay*e.value + (1-e.decay)*x
}

// Value returns the current average, or 0 before any sample was added.
func (e *EMA) Value() float64 {
	return e.value
}

// conflictHeat ranks variables by how often they are touched while
// unwinding the trail during conflict analysis (spec.md's domain-stack
// diagnostics, not part of the search itself). It is purely a reporting
// aid: nothing in the solver ever reads it back to make a decision, so it
// can be rebuilt, resized, or dropped without affecting solver behavior.
//
// It reuses the teacher's variable-ordering heap library in a read-only
// role: each bump re-prioritizes a variable in a min-heap keyed by the
// negative touch count, so the most-touched variables pop first.
type conflictHeat struct {
	heap   *yagh.IntMap[int]
	counts []int
}

func newConflictHeat() *conflictHeat {
	return &conflictHeat{heap: yagh.New[int](0)}
}

func (c *conflictHeat) addVariable() {
	v := len(c.counts)
	c.counts = append(c.counts, 0)
	c.heap.GrowBy(1)
	c.heap.Put(v, 0)
}

func (c *conflictHeat) bump(v int) {
	c.counts[v]++
	c.heap.Put(v, -c.counts[v])
}

// topK returns up to k variable ids, most conflict-touched first. The heap
// is left exactly as it was found: every popped entry is reinserted before
// returning.
func (c *conflictHeat) topK(k int) []int {
	type entry struct {
		id       int
		priority int
	}
	var popped []entry
	var result []int

	for len(result) < k {
		next, ok := c.heap.Pop()
		if !ok {
			break
		}
		popped = append(popped, entry{id: next.Elem, priority: -c.counts[next.Elem]})
		result = append(result, next.Elem)
	}
	for _, e := range popped {
		c.heap.Put(e.id, e.priority)
	}
	return result
}
