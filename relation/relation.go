package relation

// Pair is an (x, y) element of a Relation.
type Pair[T comparable] struct {
	X, Y T
}

// Relation represents a mathematical relation: a set of pairs (x, y) over a
// single carrier T. Relation values are immutable; every closure operation
// returns a new Relation.
type Relation[T comparable] struct {
	pairs map[Pair[T]]struct{}
}

// New builds a Relation from a list of pairs, deduplicating them.
func New[T comparable](pairs ...Pair[T]) *Relation[T] {
	r := &Relation[T]{pairs: make(map[Pair[T]]struct{}, len(pairs))}
	for _, p := range pairs {
		r.pairs[p] = struct{}{}
	}
	return r
}

// Add inserts (x, y) into the relation, returning a new Relation.
func (r *Relation[T]) Add(x, y T) *Relation[T] {
	out := r.clone()
	out.pairs[Pair[T]{x, y}] = struct{}{}
	return out
}

// Has reports whether (x, y) is R-related.
func (r *Relation[T]) Has(x, y T) bool {
	_, ok := r.pairs[Pair[T]{x, y}]
	return ok
}

// Pairs returns all pairs in the relation.
func (r *Relation[T]) Pairs() []Pair[T] {
	out := make([]Pair[T], 0, len(r.pairs))
	for p := range r.pairs {
		out = append(out, p)
	}
	return out
}

// Carrier returns every element appearing on either side of a pair.
func (r *Relation[T]) Carrier() map[T]struct{} {
	c := make(map[T]struct{})
	for p := range r.pairs {
		c[p.X] = struct{}{}
		c[p.Y] = struct{}{}
	}
	return c
}

func (r *Relation[T]) clone() *Relation[T] {
	out := &Relation[T]{pairs: make(map[Pair[T]]struct{}, len(r.pairs))}
	for p := range r.pairs {
		out.pairs[p] = struct{}{}
	}
	return out
}

// ReflexiveClosure adds (x, x) for every element x in the carrier.
func (r *Relation[T]) ReflexiveClosure() *Relation[T] {
	out := r.clone()
	for x := range r.Carrier() {
		out.pairs[Pair[T]{x, x}] = struct{}{}
	}
	return out
}

// SymmetricClosure adds (y, x) for every (x, y) already in the relation.
func (r *Relation[T]) SymmetricClosure() *Relation[T] {
	out := r.clone()
	for p := range r.pairs {
		out.pairs[Pair[T]{p.Y, p.X}] = struct{}{}
	}
	return out
}

// TransitiveClosure computes the transitive closure with a Warshall-style
// fixed-point iteration over the carrier.
func (r *Relation[T]) TransitiveClosure() *Relation[T] {
	carrier := make([]T, 0, len(r.Carrier()))
	for x := range r.Carrier() {
		carrier = append(carrier, x)
	}
	cur := r.pairs
	for _, k := range carrier {
		next := make(map[Pair[T]]struct{}, len(cur))
		for p := range cur {
			next[p] = struct{}{}
		}
		for _, i := range carrier {
			if _, ok := cur[Pair[T]{i, k}]; !ok {
				continue
			}
			for _, j := range carrier {
				if _, ok := next[Pair[T]{i, j}]; ok {
					continue
				}
				if _, ok := cur[Pair[T]{k, j}]; ok {
					next[Pair[T]{i, j}] = struct{}{}
				}
			}
		}
		cur = next
	}
	tracer().Debugf("relation.TransitiveClosure: %d pairs -> %d pairs", len(r.pairs), len(cur))
	return &Relation[T]{pairs: cur}
}

// AsMap converts the relation to an adjacency map: for every (x, y) in the
// relation, x becomes a key whose value collects all related y.
func (r *Relation[T]) AsMap() map[T][]T {
	out := make(map[T][]T)
	for p := range r.pairs {
		out[p.X] = append(out[p.X], p.Y)
	}
	return out
}
