package utils

import (
	"errors"
	"testing"
)

func TestFilterUniqSlice(t *testing.T) {
	got := FilterUniqSlice([]int{3, 1, 3, 2, 1}, func(i int) (int, bool) { return i, i != 2 })
	want := []int{3, 1}
	if len(got) != len(want) {
		t.Fatalf("FilterUniqSlice = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("FilterUniqSlice = %v, want %v", got, want)
		}
	}
}

func TestSlice2MapSlice(t *testing.T) {
	got := Slice2MapSlice([]string{"aa", "b", "cc"}, func(s string) (int, string, bool) { return len(s), s, true })
	if len(got[2]) != 2 || len(got[1]) != 1 {
		t.Fatalf("Slice2MapSlice = %v", got)
	}
}

func TestOr(t *testing.T) {
	if got := Or("", "", "x", "y"); got != "x" {
		t.Fatalf("Or = %q", got)
	}
	if got := Or(0, 0); got != 0 {
		t.Fatalf("Or = %d", got)
	}
}

func TestIfErrReturnStopsAtFirstError(t *testing.T) {
	calls := 0
	boom := errors.New("boom")
	err := IfErrReturn(
		func() error { calls++; return nil },
		func() error { calls++; return boom },
		func() error { calls++; return nil },
	)
	if !errors.Is(err, boom) || calls != 2 {
		t.Fatalf("err=%v calls=%d", err, calls)
	}
}
