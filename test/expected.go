// This file is part of GopherChip8.
//
// GopherChip8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherChip8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherChip8.  If not, see <https://www.gnu.org/licenses/>.

package test

import (
	"fmt"
	"math"
	"testing"
)

// ExpectEquality is used to test equality between one value and another.
func ExpectEquality[T comparable](t *testing.T, value T, expectedValue T) bool {
	t.Helper()
	if value != expectedValue {
		t.Errorf("equality test of type %T failed: '%v' does not equal '%v'", value, value, expectedValue)
		return false
	}
	return true
}

// ExpectInequality is used to test inequality between one value and another.
func ExpectInequality[T comparable](t *testing.T, value T, expectedValue T) bool {
	t.Helper()
	if value == expectedValue {
		t.Errorf("inequality test of type %T failed: '%v' does equal '%v'", value, value, expectedValue)
		return false
	}
	return true
}

// number is the set of types accepted by ExpectApproximate().
type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ExpectApproximate is used to test approximate equality between one value
// and another. The tolerance argument is a fraction of the expected value.
func ExpectApproximate[T number](t *testing.T, value T, expectedValue T, tolerance float64) bool {
	t.Helper()
	v := float64(value)
	e := float64(expectedValue)
	if math.Abs(v-e) > math.Abs(e*tolerance) {
		t.Errorf("approximation test of type %T failed: '%v' is not within %.2f of '%v'", value, value, tolerance, expectedValue)
		return false
	}
	return true
}

// ExpectFailure tests argument v for a failure condition suitable for its
// type. Types bool and error are treated thus:
//
//	bool == false
//	error != nil
//
// A nil value is never a failure.
func ExpectFailure(t *testing.T, v any) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		if v {
			t.Errorf("failure test of type %T failed: value is true", v)
			return false
		}

	case error:
		if v == nil {
			t.Errorf("failure test of type %T failed: error is nil", v)
			return false
		}

	case nil:
		t.Errorf("failure test failed: value is nil")
		return false

	default:
		t.Fatalf("%s", unsupported(v))
		return false
	}

	return true
}

// ExpectSuccess tests argument v for a success condition suitable for its
// type. Types bool and error are treated thus:
//
//	bool == true
//	error == nil
//
// A nil value is always a success.
func ExpectSuccess(t *testing.T, v any) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		if !v {
			t.Errorf("success test of type %T failed: value is false", v)
			return false
		}

	case error:
		if v != nil {
			t.Errorf("success test of type %T failed: %v", v, v)
			return false
		}

	case nil:
		return true

	default:
		t.Fatalf("%s", unsupported(v))
		return false
	}

	return true
}

func unsupported(v any) string {
	return fmt.Sprintf("unsupported type (%T) for expectation testing", v)
}
