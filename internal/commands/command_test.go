package commands

import (
	"errors"
	"testing"
)

func TestParseAddRoutine(t *testing.T) {
	cmd, err := Parse("/add routine Morning Run")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Type != TypeAdd || cmd.Add == nil {
		t.Fatalf("unexpected command: %+v", cmd)
	}
	if cmd.Add.Kind != "routine" || cmd.Add.Title != "Morning Run" {
		t.Fatalf("unexpected add args: %+v", cmd.Add)
	}
}

func TestParseAddRejectsUnknownKind(t *testing.T) {
	_, err := Parse("add meeting Standup")
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeInvalidArgument {
		t.Fatalf("expected invalid_argument, got %v", err)
	}
}

func TestParseToggleAndView(t *testing.T) {
	cmd, err := Parse("toggle Morning Run")
	if err != nil {
		t.Fatalf("parse toggle: %v", err)
	}
	if cmd.Toggle == nil || cmd.Toggle.Title != "Morning Run" {
		t.Fatalf("unexpected toggle args: %+v", cmd.Toggle)
	}

	cmd, err = Parse("view Calendar")
	if err != nil {
		t.Fatalf("parse view: %v", err)
	}
	if cmd.View == nil || cmd.View.Name != "calendar" {
		t.Fatalf("unexpected view args: %+v", cmd.View)
	}
}

func TestParseThemeValidation(t *testing.T) {
	cmd, err := Parse("theme dark")
	if err != nil {
		t.Fatalf("parse theme: %v", err)
	}
	if cmd.Theme == nil || cmd.Theme.Name != "dark" {
		t.Fatalf("unexpected theme args: %+v", cmd.Theme)
	}

	_, err = Parse("theme sepia")
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeInvalidArgument {
		t.Fatalf("expected invalid_argument, got %v", err)
	}
}

func TestParseEmptyAndUnknown(t *testing.T) {
	for _, input := range []string{"", "   ", "/"} {
		_, err := Parse(input)
		var cmdErr *CommandError
		if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeEmptyInput {
			t.Fatalf("input %q: expected empty_input, got %v", input, err)
		}
	}

	_, err := Parse("frobnicate all")
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown_command, got %v", err)
	}
}

func TestExecuteDispatchAndMissingHandler(t *testing.T) {
	cmd, err := Parse("analyze")
	if err != nil {
		t.Fatalf("parse analyze: %v", err)
	}

	res, err := Execute(cmd, Handlers{Analyze: func() (Result, error) {
		return Result{Message: "analysis started"}, nil
	}})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if res.Message != "analysis started" {
		t.Fatalf("unexpected result: %+v", res)
	}

	_, err = Execute(cmd, Handlers{})
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected handler_missing, got %v", err)
	}
}

func TestParseDeleteEvent(t *testing.T) {
	cmd, err := Parse("delete event Dentist")
	if err != nil {
		t.Fatalf("parse delete: %v", err)
	}
	if cmd.Delete == nil || cmd.Delete.Kind != "event" || cmd.Delete.Title != "Dentist" {
		t.Fatalf("unexpected delete args: %+v", cmd.Delete)
	}
}
