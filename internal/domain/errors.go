package domain

import (
	"fmt"
	"strconv"
)

// NetworkError - сбой транспорта при исходящем HTTP-запросе
// (DNS, соединение, таймаут, обрыв тела ответа).
type NetworkError struct {
	Op  string
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError - тело ответа не декодируется в Photo.
// CapturePath указывает на сохраненную копию сырого тела.
type ParseError struct {
	Err         error
	Body        []byte
	CapturePath string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %v (captured to %q)\nresponse body: %s", e.Err, e.CapturePath, e.Body)
}

func (e *ParseError) Unwrap() error { return e.Err }

// FilesystemError - не удалось создать или записать файл.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("filesystem error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }

// DesktopIntegrationError - окружение рабочего стола не применило обои.
type DesktopIntegrationError struct {
	URI    string
	Output string
	Err    error
}

func (e *DesktopIntegrationError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("desktop integration error: apply %s: %v: %s", e.URI, e.Err, e.Output)
	}
	return fmt.Sprintf("desktop integration error: apply %s: %v", e.URI, e.Err)
}

func (e *DesktopIntegrationError) Unwrap() error { return e.Err }

// MissingFieldError - в ответе нет обязательного поля.
type MissingFieldError struct {
	Path string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Path)
}

// InvalidFieldError - поле присутствует, но нарушает инвариант схемы.
type InvalidFieldError struct {
	Path   string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Path, e.Reason)
}

func missing(path, field string) error {
	return &MissingFieldError{Path: join(path, field)}
}

func nonNegative(path, field string, v int64) error {
	if v < 0 {
		return &InvalidFieldError{Path: join(path, field), Reason: "negative counter " + strconv.FormatInt(v, 10)}
	}
	return nil
}

func join(path, field string) string {
	if path == "" {
		return field
	}
	return path + "." + field
}

func index(path, field string, i int) string {
	return join(path, field) + "[" + strconv.Itoa(i) + "]"
}
