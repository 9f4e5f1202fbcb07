package constraint

// Composite applies its constraints in order, feeding each result into the
// next. An empty Composite is the identity.
type Composite[T any] struct {
	Constraints []Constraint[T]
}

// NewComposite returns a Composite of cs. Nil entries are dropped.
func NewComposite[T any](cs ...Constraint[T]) *Composite[T] {
	kept := make([]Constraint[T], 0, len(cs))
	for _, c := range cs {
		if c != nil {
			kept = append(kept, c)
		}
	}
	return &Composite[T]{Constraints: kept}
}

// Constrain folds v through every constraint left to right.
func (c *Composite[T]) Constrain(v T) T {
	for _, sub := range c.Constraints {
		v = sub.Constrain(v)
	}
	return v
}

// Kind returns KindComposite.
func (c *Composite[T]) Kind() Kind { return KindComposite }

// Find returns the first constraint of the given kind, searching composites
// depth first in order. It returns nil when none is present.
func Find[T any](c Constraint[T], kind Kind) Constraint[T] {
	if c == nil {
		return nil
	}
	if c.Kind() == kind {
		return c
	}
	if c.Kind() != KindComposite {
		return nil
	}
	comp, ok := c.(*Composite[T])
	if !ok {
		return nil
	}
	for _, sub := range comp.Constraints {
		if found := Find(sub, kind); found != nil {
			return found
		}
	}
	return nil
}

// FindStep returns the first Step constraint in c.
func FindStep[T Number](c Constraint[T]) (*Step[T], bool) {
	s, ok := Find(c, KindStep).(*Step[T])
	return s, ok
}

// FindRange returns the first Range constraint in c.
func FindRange[T Number](c Constraint[T]) (*Range[T], bool) {
	r, ok := Find(c, KindRange).(*Range[T])
	return r, ok
}

// FindList returns the first List constraint in c.
func FindList[T any](c Constraint[T]) (*List[T], bool) {
	l, ok := Find(c, KindList).(*List[T])
	return l, ok
}
