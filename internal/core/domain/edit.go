package domain

// Comparable is implemented by rows that can tell whether their stored content differs.
type Comparable[T any] interface {
	SameContent(other T) bool
}

// RecordEdit pairs the committed version of a row with the draft being edited.
// The original is never modified; cancelling an edit is discarding the draft.
type RecordEdit[T Comparable[T]] struct {
	Original T
	Draft    T
}

// BeginEdit starts an edit whose draft is a copy of original.
func BeginEdit[T Comparable[T]](original T) *RecordEdit[T] {
	return &RecordEdit[T]{Original: original, Draft: original}
}

// Dirty reports whether the draft differs from the committed row.
func (e *RecordEdit[T]) Dirty() bool {
	return !e.Draft.SameContent(e.Original)
}
