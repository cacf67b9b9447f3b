package obstetric

import (
	"errors"
	"strings"
	"time"
)

const (
	layoutText   = "01022006"   // MMDDYYYY
	layoutPicker = "2006-01-02" // <input type="date">
	layoutUS     = "01/02/2006" // MM/DD/YYYY (también formato de salida)
)

// ErrInvalidDateFormat es el único error "de usuario" del dominio.
var ErrInvalidDateFormat = errors.New("invalid date format")

// ValidationError lleva el campo y un mensaje apto para mostrar en el formulario.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error { return e.Err }

func dateError(field string) error {
	return &ValidationError{Field: field, Message: "Please enter date as MMDDYYYY", Err: ErrInvalidDateFormat}
}

// ParseDateText parsea texto MMDDYYYY (exactamente 8 dígitos).
func ParseDateText(field, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) != 8 || !allDigits(s) {
		return time.Time{}, dateError(field)
	}
	t, err := time.Parse(layoutText, s)
	if err != nil {
		return time.Time{}, dateError(field)
	}
	return t, nil
}

// ParsePickerDate parsea el valor de un date picker: YYYY-MM-DD o MM/DD/YYYY.
func ParsePickerDate(field, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{layoutPicker, layoutUS} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, dateError(field)
}

// ParseDate acepta cualquiera de los tres formatos de entrada.
func ParseDate(field, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, &ValidationError{Field: field, Message: "date is required"}
	}
	if allDigits(s) {
		return ParseDateText(field, s)
	}
	return ParsePickerDate(field, s)
}

// FormatDate formatea como MM/DD/YYYY.
func FormatDate(t time.Time) string {
	return t.Format(layoutUS)
}

// FormatPickerDate formatea como YYYY-MM-DD (valor de <input type="date">).
func FormatPickerDate(t time.Time) string {
	return t.Format(layoutPicker)
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
