package envutil

import (
	"testing"
	"time"
)

func TestString(t *testing.T) {
	t.Setenv("ENVUTIL_STR", "  value ")
	if got := String("ENVUTIL_STR", "def", nil); got != "value" {
		t.Fatalf("got=%q", got)
	}
	t.Setenv("ENVUTIL_STR", "   ")
	if got := String("ENVUTIL_STR", "def", nil); got != "def" {
		t.Fatalf("blank should fall back: got=%q", got)
	}
}

func TestTypedParsers(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		run  func() any
		want any
	}{
		{"int", "42", func() any { return Int("ENVUTIL_X", 7, nil) }, 42},
		{"int invalid", "4x", func() any { return Int("ENVUTIL_X", 7, nil) }, 7},
		{"bool yes", "yes", func() any { return Bool("ENVUTIL_X", false, nil) }, true},
		{"bool off", "OFF", func() any { return Bool("ENVUTIL_X", true, nil) }, false},
		{"bool invalid", "maybe", func() any { return Bool("ENVUTIL_X", true, nil) }, true},
		{"float", "0.5", func() any { return Float("ENVUTIL_X", 1, nil) }, 0.5},
		{"duration", "1500ms", func() any { return Duration("ENVUTIL_X", time.Second, nil) }, 1500 * time.Millisecond},
		{"duration seconds", "30", func() any { return Duration("ENVUTIL_X", time.Second, nil) }, 30 * time.Second},
		{"duration invalid", "soon", func() any { return Duration("ENVUTIL_X", time.Second, nil) }, time.Second},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("ENVUTIL_X", tc.raw)
			if got := tc.run(); got != tc.want {
				t.Fatalf("got=%v want=%v", got, tc.want)
			}
		})
	}
}
