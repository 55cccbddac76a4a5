package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/deppfellow/grubdash/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// uniqueConstraintColumn pulls the column out of "<table>_<column>_key".
var uniqueConstraintColumn = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)

// ErrCode reports the Code of the first *Error in err's chain, or Other.
//
// Example:
//
//	if sqlerr.ErrCode(err) == sqlerr.UniqueViolation { ... }
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}
	return Other
}

// ConvertPgError converts a raw Postgres error into an *Error.
//
// The SQLSTATE code and severity are mapped onto this package's enums;
// schema, table, column and constraint names are copied so the message
// helpers below can name the offending entity. The original error stays
// reachable through Unwrap.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// generateErrorCode builds a machine-readable code from the table and
// violation type.
//
// Examples:
//   - dishes + CheckViolation   -> DISH_INVALID
//   - orders + UniqueViolation  -> ORDER_ALREADY_EXISTS
//   - "" + NotNullViolation     -> RECORD_REQUIRED
func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(singular(tableName))

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation, InvalidText:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// formatUserFriendlyMessage produces the message shown to API clients.
//
// It never leaks raw SQL text: only entity and column names, humanized,
// end up in the message.
func formatUserFriendlyMessage(sqlErr *Error) string {
	entityName := getEntityName(sqlErr.TableName, sqlErr.ColumnName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", entityName)

	case UniqueViolation:
		column := extractColumnForUniqueViolation(sqlErr.ConstraintName)
		if column == "" {
			column = "identifier"
		}
		return fmt.Sprintf("A %s with this %s already exists", entityName, humanizeText(column))

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		// Constraint names follow <table>_<column>_check.
		column := strings.TrimSuffix(strings.TrimPrefix(sqlErr.ConstraintName, sqlErr.TableName+"_"), "_check")
		if column != "" && column != sqlErr.ConstraintName {
			return fmt.Sprintf("The %s %s value is not allowed", strings.ToLower(entityName), humanizeText(column))
		}
		return "One or more values do not meet required conditions"

	case InvalidText:
		return "One or more values have an invalid format"

	default:
		return "An error occurred while processing your request"
	}
}

// getEntityName prefers the "<entity>_id" column, then the table name.
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		return humanizeText(strings.TrimSuffix(strings.ToLower(columnName), "_id"))
	}

	if tableName != "" {
		return humanizeText(singular(tableName))
	}

	return "record"
}

// singular drops one trailing "s"; enough for dishes/orders style names.
func singular(name string) string {
	if strings.HasSuffix(name, "es") && strings.HasSuffix(strings.TrimSuffix(name, "es"), "sh") {
		return strings.TrimSuffix(name, "es")
	}
	if strings.HasSuffix(name, "s") && len(name) > 1 {
		return name[:len(name)-1]
	}
	return name
}

// humanizeText converts snake_case into Title Case.
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// extractColumnForUniqueViolation supports "unique_<table>_<column>" and
// "<table>_<column>_key" constraint names.
func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	if matches := uniqueConstraintColumn.FindStringSubmatch(constraintName); len(matches) > 1 {
		return matches[1]
	}

	return ""
}

// HandleError converts a low-level store error into a client-facing error.
//
// It is the last stop in GlobalErrorHandler for anything that is not
// already an *errs.HTTPError, so the postgres store can return wrapped
// driver errors and still produce a sensible response.
//
// Output:
//   - *errs.HTTPError: returned unchanged
//   - Postgres constraint errors: 400 with a friendly message
//   - no rows: 404
//   - anything else: 500 with a generic message
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)

		errorCode := generateErrorCode(sqlErr.TableName, sqlErr.Code)
		userMessage := formatUserFriendlyMessage(sqlErr)

		switch sqlErr.Code {
		case ForeignKeyViolation:
			return errs.NewBadRequestError(userMessage, false, &errorCode)

		case UniqueViolation, CheckViolation, InvalidText:
			return errs.NewBadRequestError(userMessage, true, &errorCode)

		case NotNullViolation:
			fieldErr := errs.NewValidationError(strings.ToLower(sqlErr.ColumnName), userMessage)
			fieldErr.Code = errorCode
			return fieldErr

		default:
			return errs.NewInternalServerError()
		}
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	return errs.NewInternalServerError()
}
