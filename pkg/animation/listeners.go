package animation

// listeners is an unordered set of callbacks keyed by registration.
type listeners[T any] struct {
	next int
	fns  map[int]func(T)
}

func (l *listeners[T]) add(fn func(T)) func() {
	if l.fns == nil {
		l.fns = make(map[int]func(T))
	}
	id := l.next
	l.next++
	l.fns[id] = fn
	return func() { delete(l.fns, id) }
}

func (l *listeners[T]) notify(v T) {
	for _, fn := range l.fns {
		fn(v)
	}
}

func (l *listeners[T]) clear() {
	l.fns = nil
}
