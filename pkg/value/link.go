package value

// Link describes a two-way connection between a primary and a secondary
// value.
type Link[P, S any] struct {
	Primary   *Value[P]
	Secondary *Value[S]
	// Forward derives the secondary value from the primary one.
	Forward func(p P) S
	// Backward derives the primary value from both sides, so asymmetric
	// links can keep primary state the secondary cannot express.
	Backward func(p P, s S) P
}

// Connect links the two values of l. The secondary value is set from the
// primary one immediately. Afterwards a change on either side is written to
// the other side once; changes triggered while that write is in progress
// are dropped, not queued. The returned function disconnects the link.
//
// The color controller uses this to keep an "expanded" flag and a popup's
// "shows" flag in step:
//
//	value.Connect(value.Link[bool, bool]{
//	    Primary:   expanded,
//	    Secondary: shows,
//	    Forward:   func(p bool) bool { return p },
//	    Backward:  func(_, s bool) bool { return s },
//	})
func Connect[P, S any](l Link[P, S]) func() {
	propagating := false
	guard := func(fn func()) {
		if propagating {
			return
		}
		propagating = true
		defer func() { propagating = false }()
		fn()
	}

	offPrimary := l.Primary.OnChange(func(ev ChangeEvent[P]) {
		guard(func() {
			l.Secondary.SetRawValueWith(l.Forward(ev.RawValue), ev.Options)
		})
	})
	offSecondary := l.Secondary.OnChange(func(ev ChangeEvent[S]) {
		guard(func() {
			l.Primary.SetRawValueWith(l.Backward(l.Primary.RawValue(), ev.RawValue), ev.Options)
		})
	})

	guard(func() {
		l.Secondary.SetRawValue(l.Forward(l.Primary.RawValue()))
	})

	return func() {
		offPrimary()
		offSecondary()
	}
}
