package value_test

import (
	"fmt"

	"github.com/go-knobs/knobs/pkg/constraint"
	"github.com/go-knobs/knobs/pkg/value"
)

// This example shows constrained writes and equality suppression.
func ExampleValue() {
	v := value.NewComparable(0.0, value.WithConstraint[float64](constraint.NewRange(0.0, 255.0)))
	off := v.OnChange(func(ev value.ChangeEvent[float64]) {
		fmt.Println("changed:", ev.RawValue)
	})

	v.SetRawValue(300)
	v.SetRawValue(255)
	off()
	v.SetRawValue(10)
	fmt.Println(v.RawValue())
	// Output:
	// changed: 255
	// 10
}

// This example keeps two units of the same quantity in step.
func ExampleConnect() {
	celsius := value.NewComparable(20.0)
	fahrenheit := value.NewComparable(0.0)
	disconnect := value.Connect(value.Link[float64, float64]{
		Primary:   celsius,
		Secondary: fahrenheit,
		Forward:   func(c float64) float64 { return c*9/5 + 32 },
		Backward:  func(_, f float64) float64 { return (f - 32) * 5 / 9 },
	})
	defer disconnect()

	fmt.Println(fahrenheit.RawValue())
	fahrenheit.SetRawValue(212)
	fmt.Println(celsius.RawValue())
	// Output:
	// 68
	// 100
}
