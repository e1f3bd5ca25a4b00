// Released under an MIT license. See LICENSE.

// Package frame provides the evaluator's call stack frame type.
// Frames are only used for diagnostics and nesting limits. They play
// no part in symbol resolution.
package frame

// T (frame) is an activation record for one function invocation.
type T struct {
	depth    int
	name     string
	previous *frame
}

type frame = T

// New creates a new frame for the function name called from frame p.
func New(name string, p *frame) *frame {
	f := &frame{name: name, previous: p}

	if p != nil {
		f.depth = p.depth + 1
	}

	return f
}

// Depth returns the nesting depth of the frame f. The outermost frame is 0.
func (f *frame) Depth() int {
	if f == nil {
		return -1
	}

	return f.depth
}

// Name returns the name of the function for the frame f.
func (f *frame) Name() string {
	return f.name
}

// Previous returns the previous frame.
func (f *frame) Previous() *frame {
	return f.previous
}

// Trace returns the function names from the frame f outward.
func (f *frame) Trace() []string {
	trace := []string{}

	for ; f != nil; f = f.previous {
		trace = append(trace, f.Name())
	}

	return trace
}
