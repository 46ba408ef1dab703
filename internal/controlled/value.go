// Package controlled implements the controlled/uncontrolled value strategy
// used by the editing states. The strategy is chosen once at construction.
package controlled

// Value holds the current value of an editing state.
type Value[T comparable] interface {
	// Get returns the current value.
	Get() T
	// Set requests a new value and notifies the change handler when it
	// differs from the current one.
	Set(v T)
	// Controlled reports whether the value is owned by the caller.
	Controlled() bool
}

// Controlled reads through to a caller-owned value. Set only forwards the
// request to the change handler; the caller adopts it with Sync.
type Controlled[T comparable] struct {
	current  T
	onChange func(T)
}

// NewControlled returns a Value that mirrors the caller-owned value.
func NewControlled[T comparable](value T, onChange func(T)) *Controlled[T] {
	return &Controlled[T]{current: value, onChange: onChange}
}

// Get implements Value.
func (c *Controlled[T]) Get() T { return c.current }

// Set implements Value.
func (c *Controlled[T]) Set(v T) {
	if v == c.current || c.onChange == nil {
		return
	}
	c.onChange(v)
}

// Sync adopts a new caller-owned value without notifying.
func (c *Controlled[T]) Sync(v T) { c.current = v }

// Controlled implements Value.
func (c *Controlled[T]) Controlled() bool { return true }

// Uncontrolled owns its value, seeded once from a default.
type Uncontrolled[T comparable] struct {
	current  T
	onChange func(T)
}

// NewUncontrolled returns a Value that owns its state.
func NewUncontrolled[T comparable](defaultValue T, onChange func(T)) *Uncontrolled[T] {
	return &Uncontrolled[T]{current: defaultValue, onChange: onChange}
}

// Get implements Value.
func (u *Uncontrolled[T]) Get() T { return u.current }

// Set implements Value.
func (u *Uncontrolled[T]) Set(v T) {
	if v == u.current {
		return
	}
	u.current = v
	if u.onChange != nil {
		u.onChange(v)
	}
}

// Controlled implements Value.
func (u *Uncontrolled[T]) Controlled() bool { return false }

var (
	_ Value[int] = (*Controlled[int])(nil)
	_ Value[int] = (*Uncontrolled[int])(nil)
)
