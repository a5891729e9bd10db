// Package test holds the assertion helpers shared by package tests.
package test

import (
	"reflect"
	"testing"
)

func Equal(t *testing.T, expected, actual any) bool {
	t.Helper()

	if !reflect.DeepEqual(expected, actual) {
		t.Errorf(""+
			"Not equal: \n"+
			"Expected: %v\n"+
			"Actual: %v", expected, actual)
		return false
	}

	return true
}

func True(t *testing.T, condition bool, msg string) bool {
	t.Helper()

	if !condition {
		t.Error(msg)
	}
	return condition
}

func NoError(t *testing.T, err error) bool {
	t.Helper()

	if err != nil {
		t.Errorf("Unexpected error: %v", err)
		return false
	}
	return true
}
