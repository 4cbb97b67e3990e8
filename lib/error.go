package lib

import (
	"fmt"
	"math"
)

// ErrorI is implemented by every error produced by this module. Internal
// routines fail hard with a typed ErrorI; top-level verifiers catch these
// and collapse them into a boolean (see §7 of the design notes).
type ErrorI interface {
	Code() ErrorCode     // Returns the error code
	Module() ErrorModule // Returns the error module
	error                // Implements the built-in error interface
}

var _ ErrorI = &Error{} // Ensures *Error implements ErrorI

type ErrorCode uint32 // Defines a type for error codes

type ErrorModule string // Defines a type for error modules

type Error struct {
	ECode   ErrorCode   `json:"code"`   // Error code
	EModule ErrorModule `json:"module"` // Error module
	Msg     string      `json:"msg"`    // Error message
}

func NewError(code ErrorCode, module ErrorModule, msg string) *Error {
	// Constructs a new Error instance
	return &Error{ECode: code, EModule: module, Msg: msg}
}

// Code() returns the associated error code
func (p *Error) Code() ErrorCode { return p.ECode }

// Module() returns module field
func (p *Error) Module() ErrorModule { return p.EModule }

// String() calls Error()
func (p *Error) String() string { return p.Error() }

// Error() returns a formatted string including module, code, and message
func (p *Error) Error() string {
	return fmt.Sprintf("\nModule:  %s\nCode:    %d\nMessage: %s", p.EModule, p.ECode, p.Msg)
}

const (
	NoCode ErrorCode = math.MaxUint32

	// Main Module
	MainModule ErrorModule = "main"

	// Main Module Error Codes
	CodeStringToBytes   ErrorCode = 1
	CodeInvalidEncoding ErrorCode = 2
)

func newLogError(err error) ErrorI {
	return NewError(NoCode, MainModule, err.Error())
}

// ErrStringToBytes() is returned when a hex string fails to decode into bytes
func ErrStringToBytes(err error) ErrorI {
	return NewError(CodeStringToBytes, MainModule, fmt.Sprintf("stringToBytes() failed with err: %s", err.Error()))
}

// ErrInvalidEncoding() is returned when a caller-supplied hex string cannot be decoded
func ErrInvalidEncoding(err error) ErrorI {
	return NewError(CodeInvalidEncoding, MainModule, fmt.Sprintf("invalid hex encoding: %s", err.Error()))
}
