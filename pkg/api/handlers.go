// Package api exposes the user registry over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/attribute"

	"userregistry/pkg/events"
	"userregistry/pkg/logger"
	"userregistry/pkg/metrics"
	"userregistry/pkg/otel"
	"userregistry/pkg/sysinfo"
	"userregistry/pkg/user"
	"userregistry/pkg/validate"
)

const publishTimeout = 2 * time.Second

// Handler serves the registry endpoints. It keeps no request state of its own.
type Handler struct {
	store   user.Store
	metrics *metrics.Metrics
	stats   sysinfo.Provider
	events  events.Publisher
	log     *logger.Logger
}

// New creates a Handler. A nil publisher disables lifecycle events.
func New(store user.Store, m *metrics.Metrics, stats sysinfo.Provider, pub events.Publisher, log *logger.Logger) *Handler {
	if pub == nil {
		pub = events.Nop{}
	}
	return &Handler{store: store, metrics: m, stats: stats, events: pub, log: log}
}

// Routes registers the registry routes on r.
func (h *Handler) Routes(r *mux.Router) {
	r.HandleFunc("/health", h.health).Methods(http.MethodGet)
	r.HandleFunc("/stats", h.getStats).Methods(http.MethodGet)
	r.HandleFunc("/getusers", h.listUsers).Methods(http.MethodGet)
	r.HandleFunc("/adduser", h.addUser).Methods(http.MethodPost)
	r.HandleFunc("/deluser", h.deleteUserByBody).Methods(http.MethodPost)
	r.HandleFunc("/clearusers", h.clearUsersByBody).Methods(http.MethodPost)

	users := r.PathPrefix("/users").Subrouter()
	users.HandleFunc("", h.listUsers).Methods(http.MethodGet)
	users.HandleFunc("", h.addUser).Methods(http.MethodPost)
	users.HandleFunc("", h.clearUsersByQuery).Methods(http.MethodDelete)
	users.HandleFunc("/{id}", h.getUser).Methods(http.MethodGet)
	users.HandleFunc("/{id}", h.deleteUserByPath).Methods(http.MethodDelete)
}

// health reports liveness.
// @Summary Health check
// @Produce json
// @Success 200 {object} api.HealthResponse
// @Router /health [get]
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	h.respond(r.Context(), w, http.StatusOK, HealthResponse{Message: "OK"})
}

// getStats reports the user count and runtime figures.
// @Summary Runtime statistics
// @Produce json
// @Success 200 {object} api.StatsResponse
// @Router /stats [get]
func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "getStats")
	defer span.End()

	st := h.stats.Collect(ctx)
	h.metrics.SetSystemMemoryTotal(st.MemoryTotalBytes)

	h.respond(ctx, w, http.StatusOK, StatsResponse{
		CPUUsage:         st.CPUUsage,
		ProcessorCount:   st.ProcessorCount,
		OSVersion:        st.OSVersion,
		MemoryTotalBytes: st.MemoryTotalBytes,
		WorkingSetBytes:  st.WorkingSetBytes,
		NumUsers:         h.store.Count(),
	})
}

// listUsers returns every user in insertion order.
// @Summary List users
// @Produce json
// @Success 200 {array} user.User
// @Router /getusers [get]
// @Router /users [get]
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "listUsers")
	defer span.End()

	users := h.store.Snapshot()
	span.SetAttributes(attribute.Int("users.count", len(users)))
	h.respond(ctx, w, http.StatusOK, users)
}

// getUser returns a single user.
// @Summary Get user
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} user.User
// @Failure 400 {object} api.Problem
// @Failure 404 {object} api.Problem
// @Router /users/{id} [get]
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "getUser")
	defer span.End()

	id, errs := parseIntParam("id", mux.Vars(r)["id"])
	if errs == nil {
		errs = DeleteRequest{ID: id}.Validate()
	}
	if !errs.Empty() {
		h.problem(ctx, w, validationProblem(errs))
		return
	}

	u, err := h.store.Find(*id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			h.problem(ctx, w, notFoundProblem(fmt.Sprintf("User with id %d was not found.", *id)))
			return
		}
		h.log.Error(ctx, "find user", "error", err)
		h.problem(ctx, w, Problem{Title: "Internal Server Error", Status: http.StatusInternalServerError})
		return
	}
	h.respond(ctx, w, http.StatusOK, u)
}

// addUser validates and registers a new user.
// @Summary Add user
// @Accept json
// @Produce json
// @Param user body api.AddUserRequest true "User"
// @Success 200 {object} api.AddUserResponse
// @Failure 400 {object} api.Problem
// @Router /adduser [post]
// @Router /users [post]
func (h *Handler) addUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "addUser")
	defer span.End()

	var req AddUserRequest
	errs := decodeJSON(w, r, &req)
	if errs == nil {
		errs = req.Validate()
	}
	if !errs.Empty() {
		h.metrics.FailedUserAdds.Inc()
		h.log.Info(ctx, "add user rejected", "errors", errs.Error())
		h.problem(ctx, w, validationProblem(errs))
		return
	}

	u := h.store.Add(req.Fields())
	count := h.store.Count()
	h.metrics.SuccessfulUserAdds.Inc()
	h.metrics.SetActiveUsers(count)
	span.SetAttributes(attribute.Int("user.id", u.ID))

	h.log.Info(ctx, "user added", "id", u.ID)
	h.publish(ctx, events.UserAdded(u, count))
	h.respond(ctx, w, http.StatusOK, AddUserResponse{ID: u.ID})
}

// deleteUserByPath removes the user named in the path.
// @Summary Delete user
// @Param id path int true "User ID"
// @Success 204
// @Failure 400 {object} api.Problem
// @Failure 404 {object} api.Problem
// @Router /users/{id} [delete]
func (h *Handler) deleteUserByPath(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "deleteUser")
	defer span.End()

	id, errs := parseIntParam("id", mux.Vars(r)["id"])
	h.deleteUser(ctx, w, DeleteRequest{ID: id}, errs, http.StatusNoContent)
}

// deleteUserByBody removes the user named in the body.
// @Summary Delete user
// @Accept json
// @Param request body api.DeleteRequest true "User ID"
// @Success 200
// @Failure 400 {object} api.Problem
// @Failure 404 {object} api.Problem
// @Router /deluser [post]
func (h *Handler) deleteUserByBody(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "deleteUser")
	defer span.End()

	var req DeleteRequest
	errs := decodeJSON(w, r, &req)
	h.deleteUser(ctx, w, req, errs, http.StatusOK)
}

func (h *Handler) deleteUser(ctx context.Context, w http.ResponseWriter, req DeleteRequest, errs validate.Errors, status int) {
	if errs == nil {
		errs = req.Validate()
	}
	if !errs.Empty() {
		h.metrics.FailedUserDeletes.Inc()
		h.problem(ctx, w, validationProblem(errs))
		return
	}

	id := *req.ID
	if !h.store.Remove(id) {
		h.metrics.FailedUserDeletes.Inc()
		h.log.Info(ctx, "delete user rejected", "id", id, "reason", "not found")
		h.problem(ctx, w, notFoundProblem(fmt.Sprintf("User with id %d was not found.", id)))
		return
	}

	count := h.store.Count()
	h.metrics.SuccessfulUserDeletes.Inc()
	h.metrics.SetActiveUsers(count)

	h.log.Info(ctx, "user deleted", "id", id)
	h.publish(ctx, events.UserDeleted(id, count))
	w.WriteHeader(status)
}

// clearUsersByBody empties the registry when numUsers matches.
// @Summary Clear users
// @Accept json
// @Param request body api.ClearRequest true "Expected number of users"
// @Success 200
// @Failure 400 {object} api.Problem
// @Router /clearusers [post]
func (h *Handler) clearUsersByBody(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "clearUsers")
	defer span.End()

	var req ClearRequest
	errs := decodeJSON(w, r, &req)
	h.clearUsers(ctx, w, req, errs, http.StatusOK)
}

// clearUsersByQuery empties the registry when the numUsers query matches.
// @Summary Clear users
// @Param numUsers query int true "Expected number of users"
// @Success 204
// @Failure 400 {object} api.Problem
// @Router /users [delete]
func (h *Handler) clearUsersByQuery(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "clearUsers")
	defer span.End()

	n, errs := parseIntParam("numUsers", r.URL.Query().Get("numUsers"))
	h.clearUsers(ctx, w, ClearRequest{NumUsers: n}, errs, http.StatusNoContent)
}

func (h *Handler) clearUsers(ctx context.Context, w http.ResponseWriter, req ClearRequest, errs validate.Errors, status int) {
	if errs == nil {
		errs = req.Validate()
	}
	if !errs.Empty() {
		h.metrics.FailedUserClears.Inc()
		h.problem(ctx, w, validationProblem(errs))
		return
	}

	expected := *req.NumUsers
	if err := h.store.Clear(expected); err != nil {
		h.metrics.FailedUserClears.Inc()

		var mismatch *user.CountMismatchError
		if !errors.As(err, &mismatch) {
			h.log.Error(ctx, "clear users", "error", err)
			h.problem(ctx, w, Problem{Title: "Internal Server Error", Status: http.StatusInternalServerError})
			return
		}

		h.log.Info(ctx, "clear users rejected", "expected", mismatch.Expected, "actual", mismatch.Actual)
		detail := validate.Errors{}
		detail.Add("numUsers", fmt.Sprintf("Expected %d users, but %d are registered.", mismatch.Expected, mismatch.Actual))
		p := validationProblem(detail)
		p.Expected = &mismatch.Expected
		p.Actual = &mismatch.Actual
		h.problem(ctx, w, p)
		return
	}

	count := h.store.Count()
	h.metrics.SuccessfulUserClears.Inc()
	h.metrics.SetActiveUsers(count)

	h.log.Info(ctx, "users cleared", "removed", expected)
	h.publish(ctx, events.UsersCleared(expected, count))
	w.WriteHeader(status)
}

func (h *Handler) routeNotFound(w http.ResponseWriter, r *http.Request) {
	h.problem(r.Context(), w, notFoundProblem(fmt.Sprintf("No route matches %s %s.", r.Method, r.URL.Path)))
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.problem(r.Context(), w, Problem{
		Title:  "Method Not Allowed",
		Status: http.StatusMethodNotAllowed,
		Detail: fmt.Sprintf("%s is not supported on %s.", r.Method, r.URL.Path),
	})
}

// publish sends e without letting the client's cancellation or a slow broker
// affect the response.
func (h *Handler) publish(ctx context.Context, e events.Event) {
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := h.events.Publish(pctx, e); err != nil {
		h.log.Warn(ctx, "publish event", "type", e.Type, "error", err)
	}
}

func (h *Handler) respond(ctx context.Context, w http.ResponseWriter, status int, v any) {
	if err := writeJSON(w, status, v); err != nil {
		h.log.Error(ctx, "write response", "error", err)
	}
}

func (h *Handler) problem(ctx context.Context, w http.ResponseWriter, p Problem) {
	if err := writeProblem(w, p); err != nil {
		h.log.Error(ctx, "write problem", "error", err)
	}
}
