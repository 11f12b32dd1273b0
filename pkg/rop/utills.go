package rop

import "reflect"

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// IsRetryable reports whether a failure of this kind may succeed on a
// second attempt.
func IsRetryable(f AppFailure) bool {
	switch f.kind {
	case KindNetwork, KindServer, KindUnexpected:
		return true
	default:
		return false
	}
}
