package main

import "testing"

func TestVersionNeverEmpty(t *testing.T) {
	if version() == "" {
		t.Fatal("version should fall back to a non-empty value")
	}
}
