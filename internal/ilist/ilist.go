// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package ilist implements a circular, doubly-linked intrusive list. The links
// are embedded in the structs that participate in the list, so that adding an
// element to a list never allocates.
//
// A struct that wants to be a member of a list embeds a Link for that list:
//
//	type item struct {
//		name string
//		link ilist.Link[item]
//	}
//
//	var l ilist.List[item]
//	it := &item{name: "a"}
//	l.PushBack(&it.link, it)
//	for it := range l.All() {
//		fmt.Println(it.name)
//	}
//
// A struct may embed any fixed number of links and thus be a member of the same
// number of lists at once.
package ilist

import "iter"

// Link is a pair of pointers to neighboring links in a list, plus a pointer to
// the struct which embeds it.
//
// The zero value is lazily initialized to point to itself, which is the
// representation of an unlinked entry.
type Link[T any] struct {
	next, prev *Link[T]
	owner      *T
}

func (e *Link[T]) lazyInit() {
	if e.next == nil && e.prev == nil {
		e.next = e
		e.prev = e
	}
}

// Owner returns the struct that embeds the link. It is nil until the link has
// been added to a list.
func (e *Link[T]) Owner() *T {
	return e.owner
}

// Linked returns true if the entry is currently a member of a list.
func (e *Link[T]) Linked() bool {
	return e.next != nil && e.next != e
}

// Remove unlinks the entry from the list it is a member of. The entry's links
// are cleared; it must not be traversed again until it is added to a list.
func (e *Link[T]) Remove() {
	e.unlink()
	e.next = nil
	e.prev = nil
}

// RemoveInit unlinks the entry from the list it is a member of and
// reinitializes it to the unlinked state.
func (e *Link[T]) RemoveInit() {
	e.unlink()
	e.next = e
	e.prev = e
}

func (e *Link[T]) unlink() {
	e.lazyInit()
	e.prev.next = e.next
	e.next.prev = e.prev
}

// insert links e between prev and next, which must be adjacent.
func insert[T any](e, prev, next *Link[T]) {
	e.next = next
	e.prev = prev
	prev.next = e
	next.prev = e
}

// List is the head of a list of T. The zero value is an empty list ready to
// use.
type List[T any] struct {
	root Link[T]
}

// Init makes the list empty. Any elements that were linked into the list are
// abandoned; their own links are left untouched.
func (l *List[T]) Init() {
	l.root.next = &l.root
	l.root.prev = &l.root
}

// Empty returns true if the list has no elements.
func (l *List[T]) Empty() bool {
	return !l.root.Linked()
}

// Len counts the number of elements in the list. It is O(n).
func (l *List[T]) Len() int {
	var n int
	for e := l.root.next; e != nil && e != &l.root; e = e.next {
		n++
	}
	return n
}

// PushBack inserts e at the back of the list, after all existing elements.
// owner is the struct that embeds e.
func (l *List[T]) PushBack(e *Link[T], owner *T) {
	l.root.lazyInit()
	e.owner = owner
	insert(e, l.root.prev, &l.root)
}

// PushFront inserts e at the front of the list, before all existing elements.
// owner is the struct that embeds e.
func (l *List[T]) PushFront(e *Link[T], owner *T) {
	l.root.lazyInit()
	e.owner = owner
	insert(e, &l.root, l.root.next)
}

// Splice moves all the elements of src to the back of l in O(1). The head of
// src is left stale: it must be reinitialized with Init before it is used
// again. See SpliceInit.
func (l *List[T]) Splice(src *List[T]) {
	if src.Empty() {
		return
	}
	l.root.lazyInit()
	first, last := src.root.next, src.root.prev
	at := l.root.prev
	at.next = first
	first.prev = at
	last.next = &l.root
	l.root.prev = last
}

// SpliceInit is like Splice, but leaves src empty.
func (l *List[T]) SpliceInit(src *List[T]) {
	if src.Empty() {
		return
	}
	l.Splice(src)
	src.Init()
}

// Front returns the first element of the list, or nil if the list is empty.
func (l *List[T]) Front() *T {
	if l.Empty() {
		return nil
	}
	return l.root.next.owner
}

// Back returns the last element of the list, or nil if the list is empty.
func (l *List[T]) Back() *T {
	if l.Empty() {
		return nil
	}
	return l.root.prev.owner
}

// Next returns the element following e in l, or nil if e is the last element.
// e must be a member of l.
func (l *List[T]) Next(e *Link[T]) *T {
	if e.next == &l.root {
		return nil
	}
	return e.next.owner
}

// Prev returns the element preceding e in l, or nil if e is the first element.
// e must be a member of l.
func (l *List[T]) Prev(e *Link[T]) *T {
	if e.prev == &l.root {
		return nil
	}
	return e.prev.owner
}

// All returns an iterator over the elements of the list from first to last.
//
// It is safe to remove the element being visited from the list. Iteration
// continues through the original chain of links.
func (l *List[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		var next *Link[T]
		for e := l.root.next; e != nil && e != &l.root; e = next {
			next = e.next
			if !yield(e.owner) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements of the list from last to
// first. Like All, it tolerates removal of the element being visited.
func (l *List[T]) Backward() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		var prev *Link[T]
		for e := l.root.prev; e != nil && e != &l.root; e = prev {
			prev = e.prev
			if !yield(e.owner) {
				return
			}
		}
	}
}
