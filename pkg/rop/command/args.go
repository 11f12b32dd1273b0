package command

// Args holds invocation arguments that are either Set or Unset. The zero
// value is Unset.
type Args[A any] struct {
	value A
	set   bool
}

func Set[A any](a A) Args[A] {
	return Args[A]{value: a, set: true}
}

func Unset[A any]() Args[A] {
	return Args[A]{}
}

func (a Args[A]) IsSet() bool {
	return a.set
}

// Get returns the stored arguments and whether they were set.
func (a Args[A]) Get() (A, bool) {
	return a.value, a.set
}

type pair[A, B any] struct {
	first  A
	second B
}
