package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoeppe/catalog-api/models"
)

type sampleInput struct {
	Name        string           `json:"name" validate:"required,max=10"`
	Description *string          `json:"description" validate:"omitempty,min=1,max=20"`
	Price       *decimal.Decimal `json:"price" validate:"required,gte=0"`
	Rating      *decimal.Decimal `json:"rating" validate:"required,gt=0"`
}

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func stringPtr(s string) *string {
	return &s
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name     string
		input    sampleInput
		expected ValidationErrors
	}{
		{
			name:  "Valid input",
			input: sampleInput{Name: "Shoe", Price: decimalPtr("0"), Rating: decimalPtr("0.1")},
		},
		{
			name:  "Valid input with description",
			input: sampleInput{Name: "Shoe", Description: stringPtr("x"), Price: decimalPtr("10.00"), Rating: decimalPtr("5")},
		},
		{
			name:  "All fields missing",
			input: sampleInput{},
			expected: ValidationErrors{
				"name":   "name is required",
				"price":  "price is required",
				"rating": "rating is required",
			},
		},
		{
			name: "Range violations",
			input: sampleInput{
				Name:        "A very long name",
				Description: stringPtr(""),
				Price:       decimalPtr("-0.01"),
				Rating:      decimalPtr("0"),
			},
			expected: ValidationErrors{
				"name":        "name must be at most 10 characters long",
				"description": "description must not be empty",
				"price":       "price must be greater than or equal to 0",
				"rating":      "rating must be greater than 0",
			},
		},
		{
			name:  "Negative price smaller than float precision",
			input: sampleInput{Name: "Shoe", Price: decimalPtr("-1e-400"), Rating: decimalPtr("1")},
			expected: ValidationErrors{
				"price": "price must be greater than or equal to 0",
			},
		},
		{
			name:  "Negative price is not rounded away",
			input: sampleInput{Name: "Shoe", Price: decimalPtr("-0.004"), Rating: decimalPtr("1")},
			expected: ValidationErrors{
				"price": "price must be greater than or equal to 0",
			},
		},
		{
			name:  "Negative rating",
			input: sampleInput{Name: "Shoe", Price: decimalPtr("1"), Rating: decimalPtr("-2.5")},
			expected: ValidationErrors{
				"rating": "rating must be greater than 0",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.input)

			if tc.expected == nil {
				assert.NoError(t, err)
				return
			}
			var verrs ValidationErrors
			require.True(t, errors.As(err, &verrs), "expected ValidationErrors, got %v", err)
			assert.Equal(t, tc.expected, verrs)
		})
	}
}

func TestValidationErrorsMessage(t *testing.T) {
	err := ValidationErrors{"rating": "rating is required", "name": "name is required"}
	assert.EqualError(t, err, "validation failed: name: name is required; rating: rating is required")
}

func TestHandleError(t *testing.T) {
	testCases := []struct {
		name               string
		err                error
		expectedStatusCode int
		expectedBody       map[string]string
	}{
		{
			name:               "Validation errors",
			err:                ValidationErrors{"name": "name is required"},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       map[string]string{"name": "name is required"},
		},
		{
			name:               "Not found",
			err:                fmt.Errorf("lookup: %w", &models.NotFoundError{Entity: "category", ID: 999}),
			expectedStatusCode: http.StatusNotFound,
			expectedBody:       map[string]string{"error": "category not found: 999"},
		},
		{
			name:               "Duplicate category name",
			err:                models.ErrDuplicateCategoryName,
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       map[string]string{"name": "name is already used by another category"},
		},
		{
			name:               "Unknown category",
			err:                models.ErrUnknownCategory,
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       map[string]string{"category": "category does not exist"},
		},
		{
			name:               "Other referential integrity failure",
			err:                models.ErrReferentialIntegrity,
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       map[string]string{"error": "operation rejected by a foreign key constraint"},
		},
		{
			name:               "Unexpected failure hides details",
			err:                errors.New("pq: connection refused"),
			expectedStatusCode: http.StatusInternalServerError,
			expectedBody:       map[string]string{"error": "failed to do the thing"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			rec := httptest.NewRecorder()

			HandleError(rec, req, tc.err, "failed to do the thing")

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			var body map[string]string
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tc.expectedBody, body)
		})
	}
}

func TestPathID(t *testing.T) {
	testCases := []struct {
		name        string
		param       string
		expectedID  uint
		expectedErr string
	}{
		{name: "Valid id", param: "42", expectedID: 42},
		{name: "Missing id", param: "", expectedErr: "required path parameter 'id' is missing"},
		{name: "Not a number", param: "abc", expectedErr: `path parameter 'id' must be a non-negative integer, got "abc"`},
		{name: "Negative", param: "-1", expectedErr: `path parameter 'id' must be a non-negative integer, got "-1"`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rctx := chi.NewRouteContext()
			if tc.param != "" {
				rctx.URLParams.Add("id", tc.param)
			}
			req := httptest.NewRequest("GET", "/", nil)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			id, err := PathID(req)
			if tc.expectedErr != "" {
				assert.EqualError(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedID, id)
		})
	}
}

func TestWriteHelpers(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)

	rec := httptest.NewRecorder()
	BadRequest(rec, req, "Invalid JSON body")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid JSON body"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	NoContent(rec)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, strings.TrimSpace(rec.Body.String()))
}
