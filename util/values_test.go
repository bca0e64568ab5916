package util

import "testing"

func TestPtr(t *testing.T) {
	p := Ptr(42)
	if *p != 42 {
		t.Errorf("expected *p=42, got %d", *p)
	}

	s := Ptr("hello")
	if *s != "hello" {
		t.Errorf("expected *s=hello, got %s", *s)
	}
}

func TestDeref(t *testing.T) {
	v := 42
	if Deref(&v) != 42 {
		t.Error("expected Deref to return 42")
	}

	var p *int
	if Deref(p) != 0 {
		t.Error("expected Deref of nil to return zero value")
	}

	var opts *FormatOptions
	if Deref(opts) != (FormatOptions{}) {
		t.Error("expected Deref of nil options to return zero options")
	}
}

func TestDerefOr(t *testing.T) {
	tests := []struct {
		name     string
		p        *string
		fallback string
		want     string
	}{
		{"nil uses fallback", nil, "[LOG]", "[LOG]"},
		{"set value wins", Ptr("[APP]"), "[LOG]", "[APP]"},
		{"empty value wins", Ptr(""), "[LOG]", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DerefOr(tc.p, tc.fallback); got != tc.want {
				t.Errorf("DerefOr() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCoalesce(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{"first non-empty", []string{"", "", "hello", "world"}, "hello"},
		{"all empty", []string{"", ""}, ""},
		{"no values", nil, ""},
		{"first wins", []string{"a", "b"}, "a"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Coalesce(tc.values...); got != tc.want {
				t.Errorf("Coalesce(%q) = %q, want %q", tc.values, got, tc.want)
			}
		})
	}
	if got := Coalesce(0, 0, 42); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
}
