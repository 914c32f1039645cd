package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeAdd     Type = "add"
	TypeToggle  Type = "toggle"
	TypeDelete  Type = "delete"
	TypeView    Type = "view"
	TypeTheme   Type = "theme"
	TypeAnalyze Type = "analyze"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AddArgs creates a routine or event with the given title; the rest of the
// item comes from form defaults.
type AddArgs struct {
	Kind  string // "routine" or "event"
	Title string
}

// ToggleArgs flips today's completion for the first routine whose title
// matches (case-insensitive).
type ToggleArgs struct {
	Title string
}

type DeleteArgs struct {
	Kind  string
	Title string
}

type ViewArgs struct {
	Name string
}

type ThemeArgs struct {
	Name string // "light" or "dark"
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Toggle *ToggleArgs
	Delete *DeleteArgs
	View   *ViewArgs
	Theme  *ThemeArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseKindAndTitle(TypeAdd, input, args)
	case TypeToggle:
		return parseToggle(input, args)
	case TypeDelete:
		return parseKindAndTitle(TypeDelete, input, args)
	case TypeView:
		return parseView(input, args)
	case TypeTheme:
		return parseTheme(input, args)
	case TypeAnalyze:
		return Command{Type: TypeAnalyze, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseKindAndTitle(t Type, raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a kind and a title", t)}
	}
	kind := strings.ToLower(args[0])
	if kind != "routine" && kind != "event" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s kind must be routine or event", t)}
	}
	title := strings.TrimSpace(strings.Join(args[1:], " "))
	if title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a title", t)}
	}
	cmd := Command{Type: t, Raw: raw}
	switch t {
	case TypeAdd:
		cmd.Add = &AddArgs{Kind: kind, Title: title}
	case TypeDelete:
		cmd.Delete = &DeleteArgs{Kind: kind, Title: title}
	}
	return cmd, nil
}

func parseToggle(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "toggle requires a routine title"}
	}
	return Command{Type: TypeToggle, Raw: raw, Toggle: &ToggleArgs{Title: strings.Join(args, " ")}}, nil
}

func parseView(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "view requires a view name"}
	}
	return Command{Type: TypeView, Raw: raw, View: &ViewArgs{Name: strings.ToLower(args[0])}}, nil
}

func parseTheme(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "theme requires light or dark"}
	}
	name := strings.ToLower(args[0])
	if name != "light" && name != "dark" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "theme must be light or dark"}
	}
	return Command{Type: TypeTheme, Raw: raw, Theme: &ThemeArgs{Name: name}}, nil
}
