package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"

	"userregistry/pkg/user"
	"userregistry/pkg/validate"
)

const (
	maxID        = math.MaxInt32
	maxBodyBytes = 1 << 20
)

var idRule = fmt.Sprintf("min=0,max=%d", maxID)

// AddUserRequest is the body of an add user call. Fields are pointers so a
// missing value can be told apart from a zero value.
type AddUserRequest struct {
	FirstName *string `json:"firstName" example:"John"`
	LastName  *string `json:"lastName" example:"Smith"`
	Age       *int    `json:"age" example:"42"`
}

var addUserConstraints = []validate.Constraint{
	{Field: "firstName", RequiredMessage: "First name is required.", Rule: "min=1,max=50", Message: "First name is 1…50 characters."},
	{Field: "lastName", RequiredMessage: "Last name is required.", Rule: "min=1,max=50", Message: "Last name is 1…50 characters."},
	{Field: "age", RequiredMessage: "Age is required.", Rule: "min=0,max=100", Message: "Age is 0…100."},
}

// Validate checks the request against its constraints.
func (r AddUserRequest) Validate() validate.Errors {
	values := map[string]any{}
	if r.FirstName != nil {
		values["firstName"] = *r.FirstName
	}
	if r.LastName != nil {
		values["lastName"] = *r.LastName
	}
	if r.Age != nil {
		values["age"] = *r.Age
	}
	return validate.Check(addUserConstraints, values)
}

// Fields converts a validated request into store input.
func (r AddUserRequest) Fields() user.Fields {
	return user.Fields{FirstName: *r.FirstName, LastName: *r.LastName, Age: *r.Age}
}

// DeleteRequest identifies the user to delete.
type DeleteRequest struct {
	ID *int `json:"id" example:"0"`
}

var deleteConstraints = []validate.Constraint{
	{Field: "id", RequiredMessage: "Id is required.", Rule: idRule, Message: fmt.Sprintf("Id must be between 0 and %d.", maxID)},
}

// Validate checks the request against its constraints.
func (r DeleteRequest) Validate() validate.Errors {
	values := map[string]any{}
	if r.ID != nil {
		values["id"] = *r.ID
	}
	return validate.Check(deleteConstraints, values)
}

// ClearRequest carries the number of users the caller believes are stored.
type ClearRequest struct {
	NumUsers *int `json:"numUsers" example:"2"`
}

var clearConstraints = []validate.Constraint{
	{Field: "numUsers", RequiredMessage: "Number of users is required.", Rule: idRule, Message: fmt.Sprintf("Number of users must be between 0 and %d.", maxID)},
}

// Validate checks the request against its constraints.
func (r ClearRequest) Validate() validate.Errors {
	values := map[string]any{}
	if r.NumUsers != nil {
		values["numUsers"] = *r.NumUsers
	}
	return validate.Check(clearConstraints, values)
}

// decodeJSON reads the request body into dst. Failures are reported in the
// same shape as validation errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) validate.Errors {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	err := dec.Decode(dst)
	if err == nil {
		if trailing := dec.Decode(&struct{}{}); !errors.Is(trailing, io.EOF) {
			errs := validate.Errors{}
			errs.Add(validate.General, "The request body must contain a single JSON value.")
			return errs
		}
		return nil
	}

	errs := validate.Errors{}
	var typeErr *json.UnmarshalTypeError
	var maxErr *http.MaxBytesError
	switch {
	case errors.Is(err, io.EOF):
		errs.Add(validate.General, "A non-empty request body is required.")
	case errors.As(err, &typeErr) && typeErr.Field != "":
		errs.Add(typeErr.Field, fmt.Sprintf("The JSON value could not be converted to %s.", typeErr.Type))
	case errors.As(err, &maxErr):
		errs.Add(validate.General, fmt.Sprintf("The request body must not exceed %d bytes.", maxErr.Limit))
	default:
		errs.Add(validate.General, "The request body is not valid JSON.")
	}
	return errs
}

// parseIntParam converts a path or query value. An empty value yields nil so
// that the required rule of the constraint list reports it.
func parseIntParam(field, raw string) (*int, validate.Errors) {
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		errs := validate.Errors{}
		errs.Add(field, fmt.Sprintf("The value '%s' is not valid.", raw))
		return nil, errs
	}
	return &n, nil
}
