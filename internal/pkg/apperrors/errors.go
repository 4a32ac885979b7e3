package apperrors

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jackc/pgconn"
)

// Type classifies a domain failure
type Type string

const (
	TypeValidation Type = "ValidationError"
	TypeNotFound   Type = "NotFound"
	TypeConflict   Type = "Conflict"
	TypeBadRequest Type = "BadRequest"
	TypeGateway    Type = "GatewayError"
	TypeInternal   Type = "InternalError"
)

// Source points at the field that caused a failure
type Source struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// AppError is a typed domain error carrying an HTTP status and optional
// field-level sources. All workflow failures are raised as *AppError and
// rendered into the JSON error envelope at the boundary.
type AppError struct {
	Type    Type
	Status  int
	Message string
	Sources []Source
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithSource appends a field-level source to the error.
func (e *AppError) WithSource(path, message string) *AppError {
	e.Sources = append(e.Sources, Source{Path: path, Message: message})
	return e
}

func NewValidation(message string, sources ...Source) *AppError {
	return &AppError{Type: TypeValidation, Status: http.StatusBadRequest, Message: message, Sources: sources}
}

func NewNotFound(message string) *AppError {
	return &AppError{Type: TypeNotFound, Status: http.StatusNotFound, Message: message}
}

func NewConflict(message string) *AppError {
	return &AppError{Type: TypeConflict, Status: http.StatusConflict, Message: message}
}

func NewBadRequest(message string) *AppError {
	return &AppError{Type: TypeBadRequest, Status: http.StatusBadRequest, Message: message}
}

// NewGateway marks a payment-provider failure as retryable: the provider was
// unreachable or answered with something we cannot interpret.
func NewGateway(message string, err error) *AppError {
	return &AppError{Type: TypeGateway, Status: http.StatusBadGateway, Message: message, Err: err}
}

func NewInternal(err error) *AppError {
	return &AppError{Type: TypeInternal, Status: http.StatusInternalServerError, Message: "Something went wrong!", Err: err}
}

// As unwraps err into an *AppError if it carries one.
func As(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// Postgres error codes translated into the domain taxonomy
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgInvalidTextRep      = "22P02"
)

// FromPostgres translates store-level failures into domain errors. Constraint
// violations become field-level validation/conflict entries; everything else
// is wrapped as InternalError. A sql.ErrNoRows becomes NotFound with the
// given entity name.
func FromPostgres(err error, entity string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return NewNotFound(entity + " not found")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		field := constraintField(pgErr)
		switch pgErr.Code {
		case pgUniqueViolation:
			e := NewConflict("Duplicate Entry")
			e.Status = http.StatusConflict
			return e.WithSource(field, field+" already exists")
		case pgForeignKeyViolation:
			return NewValidation("Foreign Key Constraint Failed",
				Source{Path: field, Message: "Invalid reference: " + field})
		case pgNotNullViolation:
			return NewValidation("Required Field Missing",
				Source{Path: pgErr.ColumnName, Message: pgErr.ColumnName + " is required"})
		case pgInvalidTextRep:
			return NewValidation("Invalid ID",
				Source{Path: "id", Message: "Invalid ID format provided"})
		}
	}

	return NewInternal(err)
}

// constraintField derives a field name from a constraint like
// "users_email_key" or "bids_rent_id_fkey".
func constraintField(pgErr *pgconn.PgError) string {
	if pgErr.ColumnName != "" {
		return pgErr.ColumnName
	}
	name := pgErr.ConstraintName
	if name == "" {
		return ""
	}
	if i := strings.Index(name, "_"); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, "_key")
	name = strings.TrimSuffix(name, "_fkey")
	return name
}
