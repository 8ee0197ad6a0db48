package validator_test

import (
	"dueday/shared/failure"
	"dueday/shared/validator"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testRequest struct {
	Title  string `json:"title" validate:"notblank,max=10"`
	Repeat string `json:"repeat_type" validate:"required,oneof=ONCE DAILY WEEKLY"`
	Count  int    `json:"count" validate:"gte=0"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *testRequest
		expectError bool
		message     string
	}{
		{
			name:        "valid struct",
			data:        &testRequest{Title: "Pay rent", Repeat: "WEEKLY"},
			expectError: false,
		},
		{
			name:        "empty title",
			data:        &testRequest{Title: "", Repeat: "ONCE"},
			expectError: true,
			message:     "title must not be blank",
		},
		{
			name:        "whitespace title",
			data:        &testRequest{Title: "   \t", Repeat: "ONCE"},
			expectError: true,
			message:     "title must not be blank",
		},
		{
			name:        "title too long",
			data:        &testRequest{Title: "a very long title", Repeat: "ONCE"},
			expectError: true,
			message:     "title must be less than or equal to 10 characters",
		},
		{
			name:        "invalid repeat type",
			data:        &testRequest{Title: "Pay rent", Repeat: "MONTHLY"},
			expectError: true,
			message:     "repeat_type must be one of ONCE DAILY WEEKLY",
		},
		{
			name:        "negative count",
			data:        &testRequest{Title: "Pay rent", Repeat: "ONCE", Count: -1},
			expectError: true,
			message:     "count must be greater than or equal to 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if !tt.expectError {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)
			assert.Equal(t, failure.CodeValidation, failure.GetCode(err))
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{name: "valid required string", field: "test", tag: "required", expectError: false},
		{name: "empty required string", field: "", tag: "required", expectError: true},
		{name: "blank string", field: "  ", tag: "notblank", expectError: true},
		{name: "non blank string", field: " a ", tag: "notblank", expectError: false},
		{name: "valid oneof", field: "DAILY", tag: "oneof=ONCE DAILY WEEKLY", expectError: false},
		{name: "invalid oneof", field: "YEARLY", tag: "oneof=ONCE DAILY WEEKLY", expectError: true},
		{name: "positive number", field: 5, tag: "gt=0", expectError: false},
		{name: "zero number", field: 0, tag: "gt=0", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
