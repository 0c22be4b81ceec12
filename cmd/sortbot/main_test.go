package main

import (
	"testing"
)

func TestExitProtectionWithoutPanic(t *testing.T) {
	func() {
		defer ExitProtection()
	}()
}

func TestExitProtectionRepanicsForeignValues(t *testing.T) {
	defer func() {
		if recovered := recover(); recovered != "boom" {
			t.Errorf("Expected the original panic to pass through, got %v", recovered)
		}
	}()
	func() {
		defer ExitProtection()
		panic("boom")
	}()
}
