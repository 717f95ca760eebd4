// This file is part of Mipsim.
//
// Mipsim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mipsim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mipsim.  If not, see <https://www.gnu.org/licenses/>.

package test

import (
	"reflect"
	"testing"
)

// normalise integer values to int64 so that tests can compare values of
// different integer types without littering the test with conversions. a
// literal number value is of type int but the simulator deals mostly in
// int32 and uint32.
func normalise(v interface{}) (interface{}, bool) {
	r := reflect.ValueOf(v)
	switch r.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return r.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(r.Uint()), true
	}
	return v, false
}

// ExpectEquality is used to test equality between one value and another.
// Generally, both values must be of the same type but integer values are
// compared by value regardless of the specific integer type.
func ExpectEquality(t *testing.T, value, expectedValue interface{}) bool {
	t.Helper()

	v, vInt := normalise(value)
	e, eInt := normalise(expectedValue)

	if vInt && eInt {
		if v.(int64) != e.(int64) {
			t.Errorf("equality test of type %T failed (%d wanted %d)", value, v, e)
			return false
		}
		return true
	}

	if vInt != eInt || !reflect.DeepEqual(v, e) {
		t.Errorf("equality test of type %T failed (%v wanted %v)", value, value, expectedValue)
		return false
	}

	return true
}

// ExpectFailure tests argument v for a failure condition suitable for
// its type. Supported types are bool and error.
func ExpectFailure(t *testing.T, v interface{}) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		if v {
			t.Errorf("expected failure (bool)")
			return false
		}

	case error:
		if v == nil {
			t.Errorf("expected failure (error)")
			return false
		}

	case nil:
		t.Errorf("expected failure (nil)")
		return false

	default:
		t.Fatalf("unsupported type (%T) for ExpectFailure()", v)
		return false
	}

	return true
}

// ExpectSuccess tests argument v for a success condition suitable for
// its type. Supported types are bool and error. A value of nil counts
// as a success.
func ExpectSuccess(t *testing.T, v interface{}) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		if !v {
			t.Errorf("expected success (bool)")
			return false
		}

	case error:
		if v != nil {
			t.Errorf("expected success (error: %v)", v)
			return false
		}

	case nil:
		return true

	default:
		t.Fatalf("unsupported type (%T) for ExpectSuccess()", v)
		return false
	}

	return true
}
