package main

import "testing"

func TestResolveFillWidth(t *testing.T) {
	cases := []struct {
		fill, noFill, want bool
	}{
		{true, false, true},   // defaults
		{false, false, false}, // -fill-width=false
		{true, true, false},   // -no-fill-width
		{false, true, false},  // both negatives agree
	}
	for _, tc := range cases {
		if got := resolveFillWidth(tc.fill, tc.noFill); got != tc.want {
			t.Errorf("resolveFillWidth(%v, %v) = %v, want %v", tc.fill, tc.noFill, got, tc.want)
		}
	}
}
