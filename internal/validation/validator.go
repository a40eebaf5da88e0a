// SSG Advisor - Static Site Generator Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ssgadvisor

// Package validation provides struct validation using go-playground/validator
// v10 behind a thread-safe singleton, with custom validators for the closed
// SSG and ecosystem enumerations.
//
// Example usage:
//
//	type UsageRequest struct {
//	    SSG string `json:"ssg" validate:"required,ssg"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    rw.ValidationError("invalid request", verr.Fields())
//	    return
//	}
package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/ssgadvisor/internal/catalog"
)

// singleton validator instance
var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError is one field validation failure in API-friendly form.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// RequestValidationError is a collection of field validation errors.
type RequestValidationError struct {
	fields []FieldError
}

// Fields returns the individual field errors.
func (ve *RequestValidationError) Fields() []FieldError {
	return ve.fields
}

// Error implements the error interface.
func (ve *RequestValidationError) Error() string {
	if len(ve.fields) == 0 {
		return "validation failed"
	}

	messages := make([]string, 0, len(ve.fields))
	for _, f := range ve.fields {
		messages = append(messages, f.Message)
	}
	return strings.Join(messages, "; ")
}

// getValidator returns the singleton validator, registering custom
// validators on first use.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// ssg: member of the generator catalog
		_ = validate.RegisterValidation("ssg", func(fl validator.FieldLevel) bool {
			_, err := catalog.ParseSSG(fl.Field().String())
			return err == nil
		})

		// ecosystem: member of the recognized ecosystem set
		_ = validate.RegisterValidation("ecosystem", func(fl validator.FieldLevel) bool {
			_, err := catalog.ParseEcosystem(fl.Field().String())
			return err == nil
		})
	})
	return validate
}

// ValidateStruct validates a struct using its `validate` tags.
// Returns nil when valid.
func ValidateStruct(s interface{}) *RequestValidationError {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &RequestValidationError{fields: []FieldError{{
			Field:   "",
			Tag:     "",
			Message: err.Error(),
		}}}
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: translate(fe),
		})
	}
	return &RequestValidationError{fields: fields}
}

// translate produces a human-readable message for a field error.
func translate(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "ssg":
		return fmt.Sprintf("%s must be one of the supported generators", fe.Field())
	case "ecosystem":
		return fmt.Sprintf("%s must be a recognized ecosystem", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
