// Package circularlist implements a singly linked circular list of ints,
// where the last node points back to the first, along with Josephus
// elimination over it.
package circularlist

import (
	"errors"

	"github.com/Invicton-Labs/go-lists/bounds"
	"github.com/Invicton-Labs/go-lists/collections"
	"github.com/Invicton-Labs/go-lists/numbers"
	"github.com/Invicton-Labs/go-stackerr"
	"go.uber.org/zap/zapcore"
)

type node struct {
	value int
	next  *node
}

// CircularList is a circular singly linked list. Only the tail is stored;
// its next node is the head. The zero value is an empty list ready to use.
type CircularList struct {
	tail *node
	size int
}

// New returns an empty list.
func New() *CircularList {
	return &CircularList{}
}

// FromSlice returns a list holding values in order.
func FromSlice(values []int) *CircularList {
	l := New()
	for _, v := range values {
		l.Append(v)
	}
	return l
}

// Sequence returns the list 1, 2, ..., n. A negative n gives an empty list.
func Sequence(n int) *CircularList {
	return FromSlice(collections.Range(1, numbers.Max(n, 0)+1))
}

// Len returns the number of elements in the list.
func (l *CircularList) Len() int {
	return l.size
}

// Append adds value after the current last element, just before the head.
func (l *CircularList) Append(value int) {
	n := &node{value: value}
	if l.tail == nil {
		n.next = n
	} else {
		n.next = l.tail.next
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// Get returns the value at index, which must be in [0, Len).
func (l *CircularList) Get(index int) (int, stackerr.Error) {
	if err := bounds.CheckIndex(index, l.size); err != nil {
		return 0, err
	}
	return l.before(index).next.value, nil
}

// Set overwrites the value at index, which must be in [0, Len).
func (l *CircularList) Set(index int, value int) stackerr.Error {
	if err := bounds.CheckIndex(index, l.size); err != nil {
		return err
	}
	l.before(index).next.value = value
	return nil
}

// At returns the value reached by stepping index nodes forward from the
// head, wrapping around as many times as needed. It fails on an empty list
// or a negative index.
func (l *CircularList) At(index int) (int, stackerr.Error) {
	if l.size == 0 || index < 0 {
		return 0, bounds.CheckIndex(index, l.size)
	}
	return l.before(index % l.size).next.value, nil
}

// Insert places value at index, so that Get(index) returns it afterwards.
// An index equal to Len appends.
func (l *CircularList) Insert(value int, index int) stackerr.Error {
	if err := bounds.CheckInsert(index, l.size); err != nil {
		return err
	}
	if index == l.size {
		l.Append(value)
		return nil
	}
	prev := l.before(index)
	prev.next = &node{value: value, next: prev.next}
	l.size++
	return nil
}

// Remove deletes the element at index.
func (l *CircularList) Remove(index int) stackerr.Error {
	if err := bounds.CheckIndex(index, l.size); err != nil {
		return err
	}
	l.removeAfter(l.before(index))
	return nil
}

// Pop removes the element at index and returns its value.
func (l *CircularList) Pop(index int) (int, stackerr.Error) {
	if err := bounds.CheckIndex(index, l.size); err != nil {
		return 0, err
	}
	return l.removeAfter(l.before(index)).value, nil
}

// PopLast removes the last element and returns its value.
func (l *CircularList) PopLast() (int, stackerr.Error) {
	return l.Pop(l.size - 1)
}

// Values returns the elements in order, starting at the head.
func (l *CircularList) Values() []int {
	values := make([]int, 0, l.size)
	if l.tail == nil {
		return values
	}
	for i, n := 0, l.tail.next; i < l.size; i, n = i+1, n.next {
		values = append(values, n.value)
	}
	return values
}

// String renders the list as "[a, b, c]", or "[]" when empty.
func (l *CircularList) String() string {
	return collections.FormatBracketed(l.Values())
}

// before returns the node preceding position index (the tail for index 0).
// The list must not be empty.
func (l *CircularList) before(index int) *node {
	prev := l.tail
	for i := 0; i < index; i++ {
		prev = prev.next
	}
	return prev
}

// removeAfter unlinks the node following prev and returns it.
func (l *CircularList) removeAfter(prev *node) *node {
	victim := prev.next
	if l.size == 1 {
		l.tail = nil
	} else {
		prev.next = victim.next
		if victim == l.tail {
			l.tail = prev
		}
	}
	victim.next = nil
	l.size--
	return victim
}

var (
	// ErrInvalidStep is returned when a Josephus step is less than 1.
	ErrInvalidStep = errors.New("josephus step must be at least 1")
	// ErrNoParticipants is returned when a Josephus game has nobody in it.
	ErrNoParticipants = errors.New("josephus game needs at least one participant")
)

// JosephusSequence removes every k-th element, counting cyclically from the
// head and continuing from the element after each removal, until the list is
// empty. It returns the removed values in elimination order. The list is
// empty afterwards, unless k is invalid, in which case it is left untouched.
func (l *CircularList) JosephusSequence(k int) ([]int, stackerr.Error) {
	if k < 1 {
		return nil, stackerr.Wrap(ErrInvalidStep).WithSingle("step", k)
	}
	participants := l.size
	sequence := make([]int, 0, l.size)
	prev := l.tail
	for l.size > 0 {
		for i := (k - 1) % l.size; i > 0; i-- {
			prev = prev.next
		}
		sequence = append(sequence, l.removeAfter(prev).value)
	}

	if logger := plog.Logger(); logger.Enabled(zapcore.DebugLevel) && participants > 0 {
		logger.Debugw("Ran Josephus elimination",
			"participants", participants,
			"step", k,
			"survivor", sequence[len(sequence)-1],
		)
	}
	return sequence, nil
}

// LastManStanding solves the Josephus problem for n participants numbered
// 1 to n and step k, returning the number of the survivor.
func LastManStanding(n int, k int) (int, stackerr.Error) {
	if n < 1 {
		return 0, stackerr.Wrap(ErrNoParticipants).WithSingle("participants", n)
	}
	sequence, err := Sequence(n).JosephusSequence(k)
	if err != nil {
		return 0, err
	}
	return sequence[len(sequence)-1], nil
}
