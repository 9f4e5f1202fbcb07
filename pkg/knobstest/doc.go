// Package knobstest provides helpers for testing code built on knobs.
//
// Record the change events of a value:
//
//	rec := knobstest.Record(v)
//	v.SetRawValue(300)
//	rec.Values() // []float64{255}
//
// Collect the errors a pane isolates:
//
//	h := &knobstest.RecordingHandler{}
//	p, _ := pane.New(pane.WithErrorHandler(h))
//	p.Refresh()
//	h.Errors()
//
// Control time for deterministic polling tests:
//
//	clk := knobstest.NewFakeClock(time.Time{})
//	restore := poll.SetClock(clk.Now)
//	defer poll.SetClock(restore)
//	clk.Advance(100 * time.Millisecond)
package knobstest
