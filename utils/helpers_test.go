package utils

import (
	"testing"
	"time"
)

func Test_MinMax(t *testing.T) {
	if Min(3, 7) != 3 || Max(3, 7) != 7 {
		t.Error("int min/max mismatch")
	}
	if Min(2.5, -1.0) != -1.0 || Max("a", "b") != "b" {
		t.Error("ordered min/max mismatch")
	}
}

func Test_Sum(t *testing.T) {
	if Sum([]int{1, 2, 3}) != 6 {
		t.Error("int sum mismatch")
	}
	durs := []time.Duration{time.Second, 2 * time.Second}
	if Sum(durs) != 3*time.Second {
		t.Error("duration sum mismatch")
	}
	if Sum([]float64{}) != 0 {
		t.Error("empty sum should be zero")
	}
}

func Test_Pair(t *testing.T) {
	p := Pair[string, time.Duration]{First: "label", Second: time.Millisecond}
	if p.First != "label" || p.Second != time.Millisecond {
		t.Error("pair fields mismatch")
	}
}
