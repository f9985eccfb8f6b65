package task

import (
	"fmt"
	"strconv"
	"strings"
)

// createArity is the number of pipe-delimited segments in a /newtask body.
const createArity = 5

// ParseErrorKind classifies why a command body failed to parse.
type ParseErrorKind string

const (
	// KindMalformed means the command body had the wrong shape (segment count).
	KindMalformed ParseErrorKind = "malformed_command"
	// KindMissingField means a required field was empty.
	KindMissingField ParseErrorKind = "missing_field"
	// KindInvalidField means a field was present but failed validation.
	KindInvalidField ParseErrorKind = "invalid_field"
)

// ParseError describes a command parse failure in terms the user can act on.
type ParseError struct {
	Kind  ParseErrorKind
	Field string // set for missing_field and invalid_field
	Hint  string // human-readable detail for the reply
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Hint)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Hint)
}

func malformed(hint string) *ParseError {
	return &ParseError{Kind: KindMalformed, Hint: hint}
}

func missingField(field, hint string) *ParseError {
	return &ParseError{Kind: KindMissingField, Field: field, Hint: hint}
}

func invalidField(field, hint string) *ParseError {
	return &ParseError{Kind: KindInvalidField, Field: field, Hint: hint}
}

// ParseCreate decodes a /newtask body of the form
//
//	Title | @assignee | YYYY-MM-DD | priority | tag1,tag2
//
// into a CreateRequest. It is a pure transformation: no side effects, and
// every failure is a *ParseError naming the offending field.
func ParseCreate(raw string) (CreateRequest, error) {
	segments := strings.Split(raw, "|")
	if len(segments) != createArity {
		return CreateRequest{}, malformed(fmt.Sprintf(
			"expected %d fields separated by |, got %d", createArity, len(segments)))
	}
	for i, seg := range segments {
		segments[i] = strings.TrimSpace(seg)
	}

	title := segments[0]
	if title == "" {
		return CreateRequest{}, missingField("title", "title must not be empty")
	}

	assignee, ok := strings.CutPrefix(segments[1], "@")
	if !ok {
		return CreateRequest{}, invalidField("assignee", "assignee must start with @")
	}
	if assignee == "" {
		return CreateRequest{}, invalidField("assignee", "assignee handle must not be empty")
	}

	due, err := ParseDate(segments[2])
	if err != nil {
		return CreateRequest{}, invalidField("due_date", "due date must be a valid YYYY-MM-DD date")
	}

	priority, ok := ParsePriority(segments[3])
	if !ok {
		return CreateRequest{}, invalidField("priority", "priority must be one of low, medium, high")
	}

	return CreateRequest{
		Title:    title,
		Assignee: assignee,
		DueDate:  due,
		Priority: priority,
		Tags:     NormalizeTags(strings.Split(segments[4], ",")),
	}, nil
}

// ParseID decodes a /done argument into a positive task ID.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, invalidField("id", "task ID must be a positive integer")
	}
	return id, nil
}
