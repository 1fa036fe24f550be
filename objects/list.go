/*
File    : step/objects/list.go
Project : Step interpreter
*/
package objects

// List represents a mutable, heterogeneous list in Step.
//
// A *List pointer is the opaque handle the language passes around: binding a
// list to a second variable copies the handle, not the body, so mutations
// through either handle (subscript assignment, append) are visible through
// both. Fresh bodies are minted only by list literals, concatenation,
// replication, and the evaluator; reads never alias.
type List struct {
	Elements []StepObject // The Step objects in the list (mutable, shared)
}

// NewList creates a fresh list body holding the given elements.
// The slice is owned by the new list; callers must not retain it.
func NewList(elements []StepObject) *List {
	if elements == nil {
		elements = make([]StepObject, 0)
	}
	return &List{Elements: elements}
}

// GetType returns the type of the List object
func (l *List) GetType() StepType {
	return ListType
}

// ToString returns the canonical rendering of the list as
// "[elem1, elem2, ...]". Elements render by their own canonical rules;
// strings inside a list are not quoted. Self-referential lists that exceed
// the render depth budget show an elision marker.
func (l *List) ToString() string {
	s, ok := renderDepth(l, 0)
	if !ok {
		return "[...]"
	}
	return s
}

// ToObject returns a detailed representation of the list as "<list([...])>"
func (l *List) ToObject() string {
	return "<list(" + l.ToString() + ")>"
}

// Length returns the number of elements in the list body.
func (l *List) Length() int {
	return len(l.Elements)
}

// Get returns the element at index i. The index must already be validated.
func (l *List) Get(i int) StepObject {
	return l.Elements[i]
}

// Set mutates the shared body at index i. The index must already be
// validated. The change is observable through every handle to this body.
func (l *List) Set(i int, v StepObject) {
	l.Elements[i] = v
}

// Append mutates the shared body, adding v at the end.
func (l *List) Append(v StepObject) {
	l.Elements = append(l.Elements, v)
}

// Concat mints a fresh list body holding the elements of l followed by the
// elements of other. Element handles are shared, not cloned.
func (l *List) Concat(other *List) *List {
	elements := make([]StepObject, 0, len(l.Elements)+len(other.Elements))
	elements = append(elements, l.Elements...)
	elements = append(elements, other.Elements...)
	return NewList(elements)
}

// Repeat mints a fresh list body holding count copies of l's elements.
// A non-positive count yields an empty list. Element handles are shared,
// not cloned, so nested lists stay aliased across the copies.
func (l *List) Repeat(count int64) *List {
	if count <= 0 {
		return NewList(nil)
	}
	elements := make([]StepObject, 0, int(count)*len(l.Elements))
	for i := int64(0); i < count; i++ {
		elements = append(elements, l.Elements...)
	}
	return NewList(elements)
}
