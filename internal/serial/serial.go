// Package serial provides serialization utilities.
package serial

import (
	"encoding"
	"fmt"
	"reflect"
)

// TryMarshal marshals v if it, or a pointer to it, implements
// encoding.BinaryMarshaler.
func TryMarshal(v interface{}) ([]byte, error) {
	if marshaler, ok := v.(encoding.BinaryMarshaler); ok {
		return marshaler.MarshalBinary()
	}

	pv := reflect.ValueOf(v)
	if pv.CanAddr() {
		if marshaler, ok := pv.Addr().Interface().(encoding.BinaryMarshaler); ok {
			return marshaler.MarshalBinary()
		}
	}

	return nil, fmt.Errorf("type %T (or pointer) does not implement encoding.BinaryMarshaler", v)
}

// TryUnmarshal unmarshals data into v, which must be a non-nil pointer
// implementing encoding.BinaryUnmarshaler.
func TryUnmarshal(v interface{}, data []byte) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("TryUnmarshal target must be a non-nil pointer, got %T", v)
	}

	if unmarshaler, ok := v.(encoding.BinaryUnmarshaler); ok {
		return unmarshaler.UnmarshalBinary(data)
	}

	return fmt.Errorf("type %T does not implement encoding.BinaryUnmarshaler", v)
}
