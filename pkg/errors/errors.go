package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeMalformedRequest    Code = "MALFORMED_REQUEST"
	CodeMissingFields       Code = "MISSING_FIELDS"
	CodeInvalidName         Code = "INVALID_NAME"
	CodeInvalidSku          Code = "INVALID_SKU"
	CodeInvalidPrice        Code = "INVALID_PRICE"
	CodeInvalidQuantity     Code = "INVALID_QUANTITY"
	CodeWarehouseNotFound   Code = "WAREHOUSE_NOT_FOUND"
	CodeDuplicateSku        Code = "DUPLICATE_SKU"
	CodeConstraintViolation Code = "CONSTRAINT_VIOLATION"
	CodeStorageFailure      Code = "STORAGE_FAILURE"
	CodeInternal            Code = "INTERNAL_ERROR"
)

type Metadata struct {
	HTTPStatus     int
	Retryable      bool
	PublicMessage  string
	DetailsAllowed bool
}

var metadataByCode = map[Code]Metadata{
	CodeMalformedRequest: {
		HTTPStatus:     http.StatusBadRequest,
		Retryable:      false,
		PublicMessage:  "request body is malformed",
		DetailsAllowed: true,
	},
	CodeMissingFields: {
		HTTPStatus:     http.StatusBadRequest,
		Retryable:      false,
		PublicMessage:  "required fields are missing",
		DetailsAllowed: true,
	},
	CodeInvalidName: {
		HTTPStatus:     http.StatusBadRequest,
		Retryable:      false,
		PublicMessage:  "invalid name",
		DetailsAllowed: true,
	},
	CodeInvalidSku: {
		HTTPStatus:     http.StatusBadRequest,
		Retryable:      false,
		PublicMessage:  "invalid sku",
		DetailsAllowed: true,
	},
	CodeInvalidPrice: {
		HTTPStatus:     http.StatusBadRequest,
		Retryable:      false,
		PublicMessage:  "invalid price",
		DetailsAllowed: true,
	},
	CodeInvalidQuantity: {
		HTTPStatus:     http.StatusBadRequest,
		Retryable:      false,
		PublicMessage:  "invalid quantity",
		DetailsAllowed: true,
	},
	CodeWarehouseNotFound: {
		HTTPStatus:     http.StatusNotFound,
		Retryable:      false,
		PublicMessage:  "warehouse not found",
		DetailsAllowed: true,
	},
	CodeDuplicateSku: {
		HTTPStatus:     http.StatusConflict,
		Retryable:      false,
		PublicMessage:  "sku already exists",
		DetailsAllowed: true,
	},
	CodeConstraintViolation: {
		HTTPStatus:     http.StatusConflict,
		Retryable:      false,
		PublicMessage:  "database constraint violation",
		DetailsAllowed: false,
	},
	CodeStorageFailure: {
		HTTPStatus:     http.StatusInternalServerError,
		Retryable:      true,
		PublicMessage:  "database operation failed",
		DetailsAllowed: false,
	},
	CodeInternal: {
		HTTPStatus:     http.StatusInternalServerError,
		Retryable:      true,
		PublicMessage:  "internal server error",
		DetailsAllowed: false,
	},
}

func MetadataFor(code Code) Metadata {
	if meta, ok := metadataByCode[code]; ok {
		return meta
	}
	return metadataByCode[CodeInternal]
}

type Error struct {
	code    Code
	message string
	details any
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

func Wrap(code Code, err error, message string) *Error {
	if err == nil {
		return New(code, message)
	}
	return &Error{code: code, message: message, cause: err}
}

func (e *Error) Code() Code {
	if e == nil {
		return CodeInternal
	}
	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Details() any {
	if e == nil {
		return nil
	}
	return e.details
}

func (e *Error) WithDetails(details any) *Error {
	if e == nil {
		return nil
	}
	e.details = details
	return e
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

func As(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}
