// Package pointers prints a variable, its address taken directly and its
// address read back through a pointer, then exercises a few plain functions.
package pointers

import (
	"fmt"
	"io"
)

// Age is the value the demonstration declares.
const Age = 21

// Greeting is printed by Greet.
const Greeting = "Hello from function!"

// Frame is what the demonstration prints about its variable.
type Frame struct {
	Value   int
	Direct  string // %p of &value
	Through string // %p of the stored pointer
}

// Capture declares the variable and a pointer to it and formats both
// addresses. Direct and Through are always the same string.
func Capture() Frame {
	myAge := Age
	ptr := &myAge
	return Frame{
		Value:   myAge,
		Direct:  fmt.Sprintf("%p", &myAge),
		Through: fmt.Sprintf("%p", ptr),
	}
}

// Greet prints a fixed greeting.
func Greet(w io.Writer) error {
	_, err := fmt.Fprintln(w, Greeting)
	return err
}

// AddTwo prints the sum of a and b.
func AddTwo(w io.Writer, a, b int) error {
	_, err := fmt.Fprintf(w, "Sum of the equation: %d\n", a+b)
	return err
}

// Increment hands back num as it was on entry and bumps only its own copy,
// so the increment can never be observed. Callers that drop the result see
// no effect at all.
//
// TODO: decide whether callers want num+1; kept as a no-op until then.
func Increment(num int) int {
	prev := num
	num++
	return prev
}

// Run prints the value, both addresses, then calls the helpers. The result
// of Increment is discarded.
func Run(w io.Writer) error {
	f := Capture()
	for _, line := range []string{fmt.Sprint(f.Value), f.Direct, f.Through} {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write frame: %w", err)
		}
	}
	if err := Greet(w); err != nil {
		return fmt.Errorf("greet: %w", err)
	}
	Increment(f.Value)
	if err := AddTwo(w, f.Value, 1); err != nil {
		return fmt.Errorf("add two: %w", err)
	}
	return nil
}
