package skin

// Widget is implemented by every widget. Node returns the widget's root
// node, which callers position and attach.
type Widget interface {
	Node() *Node
}

// Callback is a registered observer. Its pointer identity is what makes
// registration idempotent, since Go functions are not comparable.
type Callback[T any] struct {
	fn func(source Widget, value T)
}

// NewCallback wraps fn in a handle that can be added and removed.
func NewCallback[T any](fn func(source Widget, value T)) *Callback[T] {
	return &Callback[T]{fn: fn}
}

// Callbacks is an ordered list of change observers.
// The zero value is ready to use.
type Callbacks[T any] struct {
	list []*Callback[T]
}

// Add registers cb. Adding the same handle twice has no effect.
func (c *Callbacks[T]) Add(cb *Callback[T]) {
	if cb == nil || c.Has(cb) {
		return
	}
	c.list = append(c.list, cb)
}

// Remove unregisters cb. Unknown handles are ignored.
func (c *Callbacks[T]) Remove(cb *Callback[T]) {
	for i, h := range c.list {
		if h == cb {
			c.list = append(c.list[:i:i], c.list[i+1:]...)
			return
		}
	}
}

// Has reports whether cb is registered.
func (c *Callbacks[T]) Has(cb *Callback[T]) bool {
	for _, h := range c.list {
		if h == cb {
			return true
		}
	}
	return false
}

// Len returns the number of registered callbacks.
func (c *Callbacks[T]) Len() int { return len(c.list) }

// OnChange registers fn and returns its handle for later removal.
func (c *Callbacks[T]) OnChange(fn func(source Widget, value T)) *Callback[T] {
	cb := NewCallback(fn)
	c.Add(cb)
	return cb
}

// Notify calls every registered callback in registration order. Callbacks
// added or removed during notification take effect on the next call.
func (c *Callbacks[T]) Notify(source Widget, value T) {
	if len(c.list) == 0 {
		return
	}
	snapshot := c.list
	for _, cb := range snapshot {
		cb.fn(source, value)
	}
}
