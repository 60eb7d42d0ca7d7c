package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/shoeppe/catalog-api/models"
)

// HandleError writes the response for err. Validation, lookup and constraint
// failures become 4xx responses; anything else is logged and answered with
// a 500 carrying only message.
func HandleError(w http.ResponseWriter, r *http.Request, err error, message string) {
	var invalid ValidationErrors
	var notFound *models.NotFoundError

	switch {
	case errors.As(err, &invalid):
		WriteJSON(w, r, http.StatusBadRequest, invalid)
	case errors.As(err, &notFound):
		WriteError(w, r, http.StatusNotFound, notFound.Error())
	case errors.Is(err, models.ErrDuplicateCategoryName):
		WriteJSON(w, r, http.StatusBadRequest, map[string]string{
			"name": "name is already used by another category",
		})
	case errors.Is(err, models.ErrUnknownCategory):
		WriteJSON(w, r, http.StatusBadRequest, map[string]string{
			"category": "category does not exist",
		})
	case errors.Is(err, models.ErrReferentialIntegrity):
		BadRequest(w, r, "operation rejected by a foreign key constraint")
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg(message)
		WriteError(w, r, http.StatusInternalServerError, message)
	}
}

// PathID parses the {id} route parameter.
func PathID(r *http.Request) (uint, error) {
	raw := chi.URLParam(r, "id")
	if raw == "" {
		return 0, errors.New("required path parameter 'id' is missing")
	}
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return 0, fmt.Errorf("path parameter 'id' must be a non-negative integer, got %q", raw)
	}
	return uint(id), nil
}
