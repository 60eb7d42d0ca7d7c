package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog"

	"github.com/shoeppe/catalog-api/app/api"
)

// Recover turns a panic in a handler into a 500 JSON response.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				var errMsg string
				if e, ok := rec.(error); ok {
					errMsg = e.Error()
				} else {
					errMsg = fmt.Sprintf("%v", rec)
				}
				zerolog.Ctx(r.Context()).Error().
					Str("panic", errMsg).
					Bytes("stack", debug.Stack()).
					Msg("recovered from panic")

				api.WriteError(w, r, http.StatusInternalServerError, "Internal Server Error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
