package core

// errors.go defines the fatal build errors and their user-facing messages.
//
// # Error Codes Reference
//
//	FILE001 - Input unavailable: the export could not be read
//	          Action: Check FLYER_INPUT_PATH and file permissions
//
//	FILE002 - Empty input: the export has no header line
//	          Action: Re-export the inventory with a header row
//
//	VAL001  - Duplicate header: two columns map to the same field
//	          Action: Remove the duplicate column or set FLYER_DUPLICATE_HEADERS=last
//
//	DATA001 - No records: nothing in stock survived filtering
//	          Action: Check stock quantities and FLYER_MIN_DISCOUNT
//
//	OUT001  - Output failed: the page could not be rendered or written
//	          Action: Check FLYER_OUTPUT_PATH and directory permissions

import (
	"errors"
	"fmt"
)

// Fatal build errors. Wrapped errors keep the underlying reason.
var (
	ErrInputUnavailable = errors.New("input unavailable")
	ErrEmptyInput       = errors.New("empty input")
	ErrDuplicateHeader  = errors.New("duplicate header")
	ErrNoRecords        = errors.New("no qualifying records")
	ErrOutput           = errors.New("output failed")
)

// UserMessage represents a user-friendly error message with guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

type errorMapping struct {
	target error
	msg    UserMessage
}

var errorMappings = []errorMapping{
	{
		target: ErrInputUnavailable,
		msg: UserMessage{
			Message: "The inventory export could not be read",
			Action:  "Check FLYER_INPUT_PATH and file permissions",
			Code:    "FILE001",
		},
	},
	{
		target: ErrEmptyInput,
		msg: UserMessage{
			Message: "The inventory export is empty",
			Action:  "Re-export the inventory with a header row",
			Code:    "FILE002",
		},
	},
	{
		target: ErrDuplicateHeader,
		msg: UserMessage{
			Message: "Two columns map to the same field name",
			Action:  "Remove the duplicate column or set FLYER_DUPLICATE_HEADERS=last",
			Code:    "VAL001",
		},
	},
	{
		target: ErrNoRecords,
		msg: UserMessage{
			Message: "No items in stock qualify for the flyer",
			Action:  "Check stock quantities and FLYER_MIN_DISCOUNT",
			Code:    "DATA001",
		},
	},
	{
		target: ErrOutput,
		msg: UserMessage{
			Message: "The flyer page could not be written",
			Action:  "Check FLYER_OUTPUT_PATH and directory permissions",
			Code:    "OUT001",
		},
	},
}

// defaultMessage is returned when no mapping matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Check the log output for details",
	Code:    "ERR000",
}

// MapError converts an error to a user-friendly message by walking its
// wrap chain. Unknown errors map to ERR000; nil maps to the zero message.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}
