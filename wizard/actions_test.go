package wizard

import (
	"errors"
	"testing"
)

func TestLayoutRecoveryKeys(t *testing.T) {
	options := LayoutRecovery()
	if len(options) != 2 {
		t.Fatalf("Expected two recovery options, got %d", len(options))
	}
	if options[0].Key != RecoverEmpty || options[1].Key != RecoverAbort {
		t.Errorf("Expected empty then abort, got %q and %q", options[0].Key, options[1].Key)
	}
}

func TestChoiceValidator(t *testing.T) {
	valid := choiceValidator(3)
	for _, input := range []string{"1", "2", "3"} {
		if !valid(input) {
			t.Errorf("Expected %q to be accepted", input)
		}
	}
	for _, input := range []string{"0", "4", "-1", "x", "00001"} {
		if valid(input) {
			t.Errorf("Expected %q to be rejected", input)
		}
	}
}

func TestChooseAction_NotInteractive(t *testing.T) {
	actions := []Action{
		{Key: "test", Name: "Test", Description: "Test action"},
	}

	_, err := ChooseAction("Choose an action", actions)
	if err != ErrNotInteractive {
		t.Errorf("Expected ErrNotInteractive in non-interactive mode, got %v", err)
	}
}

func TestChooseAction_EmptyActions(t *testing.T) {
	actions := []Action{}

	defer interactively(t, "")()

	_, err := ChooseAction("Choose an action", actions)
	if !errors.Is(err, ErrNoActions) {
		t.Errorf("Expected ErrNoActions, got %v", err)
	}
}

func TestAskRecovery_NotInteractive(t *testing.T) {
	testErr := errors.New("test error")
	_, err := AskRecovery(testErr, LayoutRecovery())
	if err != ErrNotInteractive {
		t.Errorf("Expected ErrNotInteractive in non-interactive mode, got %v", err)
	}
}

func TestChooseAction_ScriptedAnswer(t *testing.T) {
	defer interactively(t, "7\nabc\n2\n")()

	actions := []Action{
		{Key: "empty", Name: "Start empty"},
		{Key: "abort", Name: "Abort"},
	}
	selected, err := ChooseAction("Choose an action", actions)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if selected.Key != "abort" {
		t.Errorf("Expected abort after two rejected answers, got %q", selected.Key)
	}
}

func TestChooseAction_DefaultIsFirst(t *testing.T) {
	defer interactively(t, "\n")()

	actions := []Action{
		{Key: "empty", Name: "Start empty"},
		{Key: "abort", Name: "Abort"},
	}
	selected, err := ChooseAction("Choose an action", actions)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if selected.Key != "empty" {
		t.Errorf("Expected default first action, got %q", selected.Key)
	}
}
