package faults

import (
	"errors"
	"fmt"
)

// Kind классифицирует ошибку для вывода пользователю.
type Kind string

const (
	UsageError      Kind = "UsageError"
	ValidationError Kind = "ValidationError"
	NetworkError    Kind = "NetworkError"
	HTTPError       Kind = "HttpError"
	ProtocolError   Kind = "ProtocolError"
	InternalError   Kind = "InternalError"
)

// Error несет вид ошибки, сообщение и исходную причину.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int
	Cause      error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Message != "" && e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// New создает типизированную ошибку.
func New(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

func Usage(message string) error      { return New(UsageError, message, nil) }
func Validation(message string) error { return New(ValidationError, message, nil) }

// Network оборачивает ошибку транспорта; сообщение берется из причины.
func Network(cause error) error {
	return New(NetworkError, "", cause)
}

// HTTPStatus описывает ответ удаленного сервиса с неуспешным кодом.
func HTTPStatus(code int, text string) error {
	return &Error{Kind: HTTPError, Message: fmt.Sprintf("%d - %s", code, text), StatusCode: code}
}

func Protocol(message string, cause error) error {
	return New(ProtocolError, message, cause)
}

func Internal(message string, cause error) error {
	return New(InternalError, message, cause)
}

// KindOf возвращает вид ошибки; нетипизированные ошибки считаются ошибками использования.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var typed *Error
	if errors.As(err, &typed) && typed != nil && typed.Kind != "" {
		return typed.Kind
	}
	return UsageError
}

// Is проверяет вид ошибки в цепочке.
func Is(err error, kind Kind) bool {
	var typed *Error
	if !errors.As(err, &typed) {
		return false
	}
	return typed.Kind == kind
}
