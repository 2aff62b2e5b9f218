package sat

// watchIndex maps each variable id to the list of clause indices in which
// that variable is currently one of the two watched literals (spec.md §2,
// "Watch index"; invariants W2/W3).
type watchIndex struct {
	lists [][]int
}

func newWatchIndex() *watchIndex {
	return &watchIndex{}
}

func (w *watchIndex) addVariable() {
	w.lists = append(w.lists, nil)
}

// register records that clause idx is now watching variable v.
func (w *watchIndex) register(v int, idx int) {
	w.lists[v] = append(w.lists[v], idx)
}

// list returns the live slice of clause indices currently watching v.
// Callers that mutate w.lists[v] while iterating must snapshot first (see
// spec.md §9, "Watch-list mutation during iteration").
func (w *watchIndex) list(v int) []int {
	return w.lists[v]
}

// remove drops clause idx from v's live watch list. It is used only when a
// clause's watched literal moves away from v during propagation; a clause
// that keeps watching v is left untouched.
func (w *watchIndex) remove(v int, idx int) {
	list := w.lists[v]
	for i, c := range list {
		if c == idx {
			list[i] = list[len(list)-1]
			w.lists[v] = list[:len(list)-1]
			return
		}
	}
}
