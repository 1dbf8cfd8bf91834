package models

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

func NewNotFoundError(resource string) error {
	return &NotFoundError{Resource: resource}
}

// ErrNoReviewData is the terminal "no data" condition for a session: the
// warehouse returned zero reviews for the requested product.
var ErrNoReviewData = errors.New("no review data")

type NoReviewDataError struct {
	ASIN string
}

func (e *NoReviewDataError) Error() string {
	return fmt.Sprintf("no review data found for ASIN %s", e.ASIN)
}

func (e *NoReviewDataError) Unwrap() error {
	return ErrNoReviewData
}

func NewNoReviewDataError(asin string) error {
	return &NoReviewDataError{ASIN: asin}
}

// ErrNoDocuments is returned when an index build is attempted over zero
// documents. This fails fast rather than producing a retriever that silently
// returns nothing.
var ErrNoDocuments = errors.New("no documents to index")

var ErrBadRequest = errors.New("bad request")
