package main

import (
	"testing"
	"time"
)

func TestParseWindow(t *testing.T) {
	window, err := parseWindow("2020-01-01")
	if err != nil {
		t.Fatalf("parseWindow failed: %v", err)
	}
	want := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !window.Start.Equal(want) {
		t.Errorf("start = %s, want %s", window.Start, want)
	}
	if !window.End.After(window.Start) {
		t.Errorf("end %s not after start %s", window.End, window.Start)
	}
}

func TestParseWindow_Invalid(t *testing.T) {
	for _, s := range []string{"", "01/02/2020", "9999-01-01"} {
		if _, err := parseWindow(s); err == nil {
			t.Errorf("parseWindow(%q) should fail", s)
		}
	}
}
