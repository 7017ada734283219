// internal/controller/procedure.go
package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	appErrors "github.com/unclebandit/influencer-portal/internal/errors"
)

// maxBodyBytes caps mutation bodies.
const maxBodyBytes = 1 << 20

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

type dataResponse struct {
	Data any `json:"data"`
}

// Query adapts a read procedure to a GET handler. Input comes from the JSON
// "input" query parameter or, failing that, from plain query parameters.
func Query[In, Out any](fn func(context.Context, In) (Out, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in In
		if err := decodeQuery(r, &in); err != nil {
			WriteError(w, r, appErrors.NewValidation("input", err.Error()))
			return
		}
		out, err := fn(r.Context(), in)
		if err != nil {
			WriteError(w, r, err)
			return
		}
		WriteJSON(w, http.StatusOK, dataResponse{Data: out})
	}
}

// Mutation adapts a write procedure to a POST handler reading a JSON body.
func Mutation[In, Out any](status int, fn func(context.Context, In) (Out, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in In
		if err := decodeBody(r, &in); err != nil {
			WriteError(w, r, appErrors.NewValidation("input", err.Error()))
			return
		}
		out, err := fn(r.Context(), in)
		if err != nil {
			WriteError(w, r, err)
			return
		}
		WriteJSON(w, status, dataResponse{Data: out})
	}
}

func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return errors.New("invalid JSON body")
	}
	return nil
}

func decodeQuery(r *http.Request, dst any) error {
	q := r.URL.Query()
	if raw := q.Get("input"); raw != "" {
		if err := json.Unmarshal([]byte(raw), dst); err != nil {
			return errors.New("invalid JSON input")
		}
		return nil
	}
	if len(q) == 0 {
		return nil
	}

	// plain parameters take the JSON type of the field they land in
	kinds := fieldKinds(reflect.TypeOf(dst))
	fields := make(map[string]any, len(q))
	for key := range q {
		v := q.Get(key)
		switch kinds[key] {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
			fields[key] = json.Number(v)
		case reflect.Bool:
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s must be a boolean", key)
			}
			fields[key] = b
		default:
			fields[key] = v
		}
	}
	body, err := json.Marshal(fields)
	if err != nil {
		return errors.New("invalid query parameters")
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return errors.New("invalid query parameters")
	}
	return nil
}

// fieldKinds maps the json names of a struct's fields to their kinds,
// looking through pointers.
func fieldKinds(t reflect.Type) map[string]reflect.Kind {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	kinds := map[string]reflect.Kind{}
	if t.Kind() != reflect.Struct {
		return kinds
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}
		ft := f.Type
		for ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		kinds[name] = ft.Kind()
	}
	return kinds
}

// StatusFor maps application errors onto HTTP status codes and error codes.
func StatusFor(err error) (int, string) {
	var (
		validation *appErrors.ErrValidation
		notFound   *appErrors.ErrNotFound
		conflict   *appErrors.ErrConflict
		constraint *appErrors.ErrConstraint
	)
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest, "BAD_REQUEST"
	case errors.As(err, &notFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.As(err, &conflict):
		return http.StatusConflict, "CONFLICT"
	case errors.As(err, &constraint):
		return http.StatusUnprocessableEntity, "UNPROCESSABLE_CONTENT"
	}
	return http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"
}

// WriteError writes the error envelope. Internal errors are logged and their
// message is not exposed.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := StatusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Error().Err(err).
			Str("path", r.URL.Path).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("procedure failed")
		message = "internal server error"
	}
	WriteJSON(w, status, errorResponse{Error: errorBody{Code: code, Message: message}})
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("failed to encode response")
	}
}
