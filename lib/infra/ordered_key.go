package infra

import (
	"cmp"
	"reflect"
)

// OrderedKey
// byte => ~uint8
type OrderedKey interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~string
}

// Comparator
// Assume i is the new element.
//  1. i == j (return 0)
//  2. i > j (return positive), turn to right part.
//  3. i < j (return negative), turn to left part.
type Comparator[E any] func(i, j E) int

// EqualFunc is the equality predicate used by trees without an order.
type EqualFunc[E any] func(i, j E) bool

func OrderedComparator[E OrderedKey]() Comparator[E] {
	return func(i, j E) int {
		return cmp.Compare(i, j)
	}
}

// ReverseComparator flips the order of c. A nil c stays nil.
func ReverseComparator[E any](c Comparator[E]) Comparator[E] {
	if c == nil {
		return nil
	}
	return func(i, j E) int {
		return c(j, i)
	}
}

// Equal derives the equality predicate consistent with c.
func (c Comparator[E]) Equal() EqualFunc[E] {
	return func(i, j E) bool {
		return c(i, j) == 0
	}
}

func ComparableEqual[E comparable]() EqualFunc[E] {
	return func(i, j E) bool {
		return i == j
	}
}

// IsNil reports whether e holds no value at all. Only the nilable kinds
// (interface, pointer, map, slice, func, chan) can be nil.
func IsNil[E any](e E) bool {
	v := reflect.ValueOf(&e).Elem()
	switch v.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map,
		reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return v.IsNil()
	default:
	}
	return false
}
