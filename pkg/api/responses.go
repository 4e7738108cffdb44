package api

import (
	"encoding/json"
	"net/http"

	"userregistry/pkg/sysinfo"
	"userregistry/pkg/validate"
)

// HealthResponse reports process liveness.
type HealthResponse struct {
	Message string `json:"message" example:"OK"`
}

// StatsResponse reports the user count and best-effort runtime figures.
type StatsResponse struct {
	CPUUsage         sysinfo.CPUUsage `json:"cpuUsage"`
	ProcessorCount   int              `json:"processorCount"`
	OSVersion        string           `json:"osVersion"`
	MemoryTotalBytes uint64           `json:"memoryTotalBytes"`
	WorkingSetBytes  uint64           `json:"workingSetBytes"`
	NumUsers         int              `json:"numUsers"`
}

// AddUserResponse returns the id assigned to a new user.
type AddUserResponse struct {
	ID int `json:"id" example:"0"`
}

// Problem is an RFC 7807 style error body.
type Problem struct {
	Title    string          `json:"title"`
	Status   int             `json:"status"`
	Detail   string          `json:"detail,omitempty"`
	Errors   validate.Errors `json:"errors,omitempty"`
	Expected *int            `json:"expected,omitempty"`
	Actual   *int            `json:"actual,omitempty"`
}

func validationProblem(errs validate.Errors) Problem {
	return Problem{
		Title:  "One or more validation errors occurred.",
		Status: http.StatusBadRequest,
		Errors: errs,
	}
}

func notFoundProblem(detail string) Problem {
	return Problem{
		Title:  "Not Found",
		Status: http.StatusNotFound,
		Detail: detail,
	}
}

// writeJSON serialises v as JSON with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func writeProblem(w http.ResponseWriter, p Problem) error {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	return json.NewEncoder(w).Encode(p)
}
