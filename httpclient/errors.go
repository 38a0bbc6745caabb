package httpclient

import (
	"errors"
	"fmt"
)

var (
	ErrRequestFailed = errors.New("httpclient: request failed")
	ErrServiceError  = errors.New("httpclient: service error")
)

// ServiceError is returned when the server answered with an error status.
type ServiceError struct {
	StatusCode int
	Body       []byte
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("httpclient: service returned status %d", e.StatusCode)
}

func (e *ServiceError) Is(target error) bool {
	return errors.Is(target, ErrServiceError)
}

func (e *ServiceError) Unwrap() error {
	return ErrServiceError
}

func NewServiceError(statusCode int, body []byte) *ServiceError {
	return &ServiceError{
		StatusCode: statusCode,
		Body:       body,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}

	return nil, false
}
