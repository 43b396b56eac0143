package routes

import (
	"encoding/json"
	"errors"
	"net/http"

	"warbler/warbler/middlewares"
	"warbler/warbler/types"
)

// handleJSON wraps a handler returning (payload, error) and takes care
// of encoding and of mapping domain errors to HTTP statuses.
func handleJSON(handler func(r *http.Request) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := handler(r)
		if err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(res)
	}
}

// writeError maps the domain error taxonomy onto HTTP statuses. Every
// member is recoverable: the client gets a JSON body it can surface and
// the request cycle ends cleanly.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, types.ErrInvalidInput),
		errors.Is(err, types.ErrInvalidPassword),
		errors.Is(err, types.ErrSelfLike),
		errors.Is(err, types.ErrSelfFollow):
		status = http.StatusBadRequest
	case errors.Is(err, types.ErrDuplicateIdentity):
		status = http.StatusConflict
	case errors.Is(err, types.ErrNotOwner):
		status = http.StatusForbidden
	case errors.Is(err, types.ErrNotFound):
		status = http.StatusNotFound
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

// currentUserID pulls the identity the auth middleware injected.
func currentUserID(r *http.Request) (uint, bool) {
	id, ok := r.Context().Value(middlewares.UserIDKey).(uint)
	return id, ok
}
