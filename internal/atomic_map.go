package internal

import "sync"

type AtomicMap[K comparable, V any] struct {
	m sync.Map
}

func (a *AtomicMap[K, V]) Load(key K) (value V, ok bool) {
	v, ok := a.m.Load(key)
	if !ok {
		return
	}
	value = v.(V)
	return
}

func (a *AtomicMap[K, V]) LoadOrStore(key K, value V) (actual V, loaded bool) {
	v, loaded := a.m.LoadOrStore(key, value)
	actual = v.(V)
	return
}

func (a *AtomicMap[K, V]) Len() int {
	n := 0
	a.m.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
