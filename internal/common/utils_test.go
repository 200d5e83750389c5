package common

import "testing"

func TestHasAny(t *testing.T) {
	if !HasAny("RPi-Sense FB", "sense fb") {
		t.Fatalf("expected case-insensitive match")
	}
	if HasAny("simple-framebuffer", "RPi-Sense FB", "") {
		t.Fatalf("unexpected match")
	}
	if HasAny("anything") {
		t.Fatalf("no substrings must not match")
	}
}
