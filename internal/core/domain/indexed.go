package domain

// positioned is implemented by records that carry their own 1-based
// position inside an indexed collection.
type positioned interface {
	position() int
	setPosition(int)
}

// indexed is an insertion ordered collection keyed by K. The keys slice
// gives iteration order and every item's stored position always equals one
// plus its offset in keys. Removal shifts the tail left and renumbers it, so
// positions never have gaps.
type indexed[K comparable, V positioned] struct {
	keys  []K
	items map[K]V
}

func newIndexed[K comparable, V positioned]() indexed[K, V] {
	return indexed[K, V]{items: make(map[K]V)}
}

func (x *indexed[K, V]) len() int { return len(x.keys) }

func (x *indexed[K, V]) get(k K) (V, bool) {
	v, ok := x.items[k]
	return v, ok
}

func (x *indexed[K, V]) add(k K, v V) bool {
	if x.items == nil {
		x.items = make(map[K]V)
	}
	if _, ok := x.items[k]; ok {
		return false
	}
	x.keys = append(x.keys, k)
	v.setPosition(len(x.keys))
	x.items[k] = v
	return true
}

func (x *indexed[K, V]) remove(k K) (V, bool) {
	v, ok := x.items[k]
	if !ok {
		var zero V
		return zero, false
	}
	last := len(x.keys) - 1
	for i := v.position() - 1; i < last; i++ {
		x.keys[i] = x.keys[i+1]
		x.items[x.keys[i]].setPosition(i + 1)
	}
	var zeroKey K
	x.keys[last] = zeroKey
	x.keys = x.keys[:last]
	delete(x.items, k)
	v.setPosition(0)
	return v, true
}

func (x *indexed[K, V]) orderedKeys() []K {
	out := make([]K, len(x.keys))
	copy(out, x.keys)
	return out
}

func (x *indexed[K, V]) values() []V {
	out := make([]V, 0, len(x.keys))
	for _, k := range x.keys {
		out = append(out, x.items[k])
	}
	return out
}

func (x *indexed[K, V]) clone(copyItem func(V) V) indexed[K, V] {
	c := indexed[K, V]{
		keys:  make([]K, len(x.keys)),
		items: make(map[K]V, len(x.items)),
	}
	copy(c.keys, x.keys)
	for k, v := range x.items {
		c.items[k] = copyItem(v)
	}
	return c
}
