// Package linkedlist implements a doubly linked list of ints with head and
// tail references, indexed like a slice.
//
// To iterate over a list (where l is a *LinkedList):
//
//	for _, v := range l.Values() {
//		// do something with v
//	}
package linkedlist

import (
	"github.com/Invicton-Labs/go-lists/bounds"
	"github.com/Invicton-Labs/go-lists/collections"
	"github.com/Invicton-Labs/go-stackerr"
)

// node is an element of a linked list.
type node struct {
	value      int
	next, prev *node
}

// LinkedList is a doubly linked list. The zero value is an empty list ready
// to use.
type LinkedList struct {
	head, tail *node
	size       int
}

// New returns an empty list.
func New() *LinkedList {
	return &LinkedList{}
}

// FromSlice returns a list holding values in order.
func FromSlice(values []int) *LinkedList {
	l := New()
	for _, v := range values {
		l.Append(v)
	}
	return l
}

// Len returns the number of elements of list l.
// The complexity is O(1).
func (l *LinkedList) Len() int { return l.size }

// Append adds value at the back of the list.
func (l *LinkedList) Append(value int) {
	l.insertAfter(&node{value: value}, l.tail)
}

// Prepend adds value at the front of the list.
func (l *LinkedList) Prepend(value int) {
	l.insertAfter(&node{value: value}, nil)
}

// Get returns the value at index.
func (l *LinkedList) Get(index int) (int, stackerr.Error) {
	n, err := l.nodeAt(index)
	if err != nil {
		return 0, err
	}
	return n.value, nil
}

// Set overwrites the value at index.
func (l *LinkedList) Set(index int, value int) stackerr.Error {
	n, err := l.nodeAt(index)
	if err != nil {
		return err
	}
	n.value = value
	return nil
}

// Ref returns a pointer to the value stored at index. It stays valid until
// that element is removed.
func (l *LinkedList) Ref(index int) (*int, stackerr.Error) {
	n, err := l.nodeAt(index)
	if err != nil {
		return nil, err
	}
	return &n.value, nil
}

// Insert places value at index, so that Get(index) returns it afterwards.
// An index equal to Len appends.
func (l *LinkedList) Insert(value int, index int) stackerr.Error {
	if err := bounds.CheckInsert(index, l.size); err != nil {
		return err
	}
	if index == l.size {
		l.Append(value)
		return nil
	}
	l.insertAfter(&node{value: value}, l.walk(index).prev)
	return nil
}

// Remove deletes the element at index.
func (l *LinkedList) Remove(index int) stackerr.Error {
	n, err := l.nodeAt(index)
	if err != nil {
		return err
	}
	l.unlink(n)
	return nil
}

// Pop removes the element at index and returns its value.
func (l *LinkedList) Pop(index int) (int, stackerr.Error) {
	n, err := l.nodeAt(index)
	if err != nil {
		return 0, err
	}
	l.unlink(n)
	return n.value, nil
}

// PopLast removes the last element and returns its value.
func (l *LinkedList) PopLast() (int, stackerr.Error) {
	return l.Pop(l.size - 1)
}

// Values returns the elements in order.
func (l *LinkedList) Values() []int {
	values := make([]int, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}

// String renders the list as "[a, b, c]", or "[]" when empty.
func (l *LinkedList) String() string {
	return collections.FormatBracketed(l.Values())
}

// nodeAt returns the node at index after checking it is in range.
func (l *LinkedList) nodeAt(index int) (*node, stackerr.Error) {
	if err := bounds.CheckIndex(index, l.size); err != nil {
		return nil, err
	}
	return l.walk(index), nil
}

// walk goes to the node at index from whichever end is closer. The index
// must be in [0, l.size).
func (l *LinkedList) walk(index int) *node {
	if 2*index <= l.size {
		n := l.head
		for i := 0; i < index; i++ {
			n = n.next
		}
		return n
	}
	n := l.tail
	for i := l.size - 1; i > index; i-- {
		n = n.prev
	}
	return n
}

// insertAfter links n in after at, or at the front if at is nil, and
// increments l.size.
func (l *LinkedList) insertAfter(n, at *node) {
	n.prev = at
	if at == nil {
		n.next = l.head
		l.head = n
	} else {
		n.next = at.next
		at.next = n
	}
	if n.next == nil {
		l.tail = n
	} else {
		n.next.prev = n
	}
	l.size++
}

// unlink removes n from the list and decrements l.size.
func (l *LinkedList) unlink(n *node) {
	if n.prev == nil {
		l.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		l.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	n.next = nil // avoid memory leaks
	n.prev = nil // avoid memory leaks
	l.size--
}
