package seq_test

import (
	"fmt"

	"github.com/charmingruby/lazyrange/seq"
)

func ExampleMap() {
	squares := seq.Map(seq.Of(1, 2, 3, 4), func(v int) int { return v * v })
	fmt.Println(seq.Collect(squares))
	// Output:
	// [1 4 9 16]
}

func ExampleIndexesOf() {
	fmt.Println(seq.Collect(seq.IndexesOf(seq.Of(0, 1, 2, 1, 0), 1)))
	// Output:
	// [1 3]
}

func ExampleCounter() {
	c := seq.NewCounter()
	for range 4 {
		c.Next()
	}
	fmt.Println(c.Count())
	// Output:
	// 4
}

func ExampleAll() {
	for v := range seq.All(seq.Take(seq.NewCounter(), 3)) {
		fmt.Println(v)
	}
	// Output:
	// 0
	// 1
	// 2
}

func ExamplePull() {
	c := seq.Of("a", "b").Cursor()
	for step := seq.Pull(c); ; step = seq.Pull(c) {
		fmt.Println(step)
		if step.IsDone() {
			break
		}
	}
	// Output:
	// Yield(a)
	// Yield(b)
	// Done
}
