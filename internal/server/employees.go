package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/UnknownOlympus/hestia/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/UnknownOlympus/hestia/internal/repository"
	"github.com/go-chi/chi/v5"
)

// EmployeeHandler serves the directory API over the employee repository.
// Handlers are stateless; every request is independent.
type EmployeeHandler struct {
	repo repository.EmployeeRepoIface
	log  *slog.Logger
}

func NewEmployeeHandler(repo repository.EmployeeRepoIface, log *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{repo: repo, log: log}
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type createEmployeeRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Login     string `json:"login"`
}

type checkDatabaseResponse struct {
	Status        string          `json:"status"`
	Columns       []models.Column `json:"columns,omitempty"`
	Message       string          `json:"message,omitempty"`
	Error         string          `json:"error,omitempty"`
	FixSuggestion string          `json:"fixSuggestion,omitempty"`
}

// respondJSON writes payload as a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, code int, payload any, log *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		log.Error("failed to marshal JSON response", sl.Err(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(response); err != nil {
		log.Error("failed to write HTTP response", sl.Err(err))
	}
}

// respondError writes an {error, details?} JSON body with the given status code.
func respondError(w http.ResponseWriter, code int, message, details string, log *slog.Logger) {
	respondJSON(w, code, errorResponse{Error: message, Details: details}, log)
}

// List handles GET /api/employees.
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.repo.ListEmployees(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to list employees", sl.Err(err))
		respondError(w, http.StatusInternalServerError, "Internal server error", err.Error(), h.log)
		return
	}

	respondJSON(w, http.StatusOK, employees, h.log)
}

// Create handles POST /api/employees.
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.WarnContext(r.Context(), "failed to decode create request", sl.Err(err))
		respondError(w, http.StatusBadRequest, "Invalid request body", "", h.log)
		return
	}

	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Email = strings.TrimSpace(req.Email)
	req.Login = strings.TrimSpace(req.Login)

	if req.FirstName == "" || req.LastName == "" || req.Phone == "" || req.Email == "" || req.Login == "" {
		respondError(w, http.StatusBadRequest, "All fields are required", "", h.log)
		return
	}

	employee, err := h.repo.CreateEmployee(r.Context(), req.FirstName, req.LastName, req.Phone, req.Email, req.Login)
	if err != nil {
		var dupErr *repository.DuplicateError
		if errors.As(err, &dupErr) {
			h.log.InfoContext(r.Context(), "rejected duplicate employee", "field", dupErr.Field)
			respondError(w, http.StatusBadRequest, dupErr.Field+" already exists", "", h.log)
			return
		}

		h.log.ErrorContext(r.Context(), "failed to create employee", sl.Err(err))
		respondError(w, http.StatusInternalServerError, "Failed to add employee", err.Error(), h.log)
		return
	}

	h.log.InfoContext(r.Context(), "employee created", "id", employee.ID, "login", employee.Login)
	respondJSON(w, http.StatusCreated, employee, h.log)
}

// Delete handles DELETE /api/employees/{id}.
func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identifier, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid employee ID", "", h.log)
		return
	}

	if err = h.repo.DeleteEmployee(r.Context(), identifier); err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			respondError(w, http.StatusNotFound, "Employee not found", "", h.log)
			return
		}

		h.log.ErrorContext(r.Context(), "failed to delete employee", "id", identifier, sl.Err(err))
		respondError(w, http.StatusInternalServerError, "Failed to delete employee", err.Error(), h.log)
		return
	}

	h.log.InfoContext(r.Context(), "employee deleted", "id", identifier)
	w.WriteHeader(http.StatusNoContent)
}

// CheckDatabase handles GET /api/check-db.
func (h *EmployeeHandler) CheckDatabase(w http.ResponseWriter, r *http.Request) {
	report, err := h.repo.CheckSchema(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to check employees table", sl.Err(err))
		respondJSON(w, http.StatusInternalServerError, checkDatabaseResponse{
			Status:        "ERROR",
			Error:         err.Error(),
			FixSuggestion: fixSuggestion,
		}, h.log)
		return
	}

	if len(report.Missing) > 0 {
		h.log.WarnContext(r.Context(), "employees table is incomplete", "missing", report.Missing)
		respondJSON(w, http.StatusInternalServerError, checkDatabaseResponse{
			Status:        "ERROR",
			Error:         "Missing columns: " + strings.Join(report.Missing, ", "),
			FixSuggestion: fixSuggestion,
		}, h.log)
		return
	}

	respondJSON(w, http.StatusOK, checkDatabaseResponse{
		Status:  "OK",
		Columns: report.Columns,
		Message: "employees table structure is correct",
	}, h.log)
}

const fixSuggestion = "Run the migrator: go run ./cmd/migrator"

// NotFound answers any unmatched API route.
func (h *EmployeeHandler) NotFound(w http.ResponseWriter, _ *http.Request) {
	respondError(w, http.StatusNotFound, "Route not found", "", h.log)
}
