package categories

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shoeppe/catalog-api/app/api"
	"github.com/shoeppe/catalog-api/models"
)

type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type CategoryProvider interface {
	GetAllCategories(ctx context.Context) ([]models.Category, error)
	GetCategoryByID(ctx context.Context, id uint) (*models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) error
	UpdateCategory(ctx context.Context, id uint, name string) (*models.Category, error)
	DeleteCategory(ctx context.Context, id uint) error
}

type categoryInput struct {
	Name string `json:"name" validate:"min=1,max=50"`
}

type CategoryHandler struct {
	repo CategoryProvider
}

func NewCategoryHandler(r CategoryProvider) *CategoryHandler {
	return &CategoryHandler{repo: r}
}

// NewCategoryResponse renders a category without its product collection.
func NewCategoryResponse(c *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:   c.ID,
		Name: c.Name,
	}
}

func (h *CategoryHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.GetAllCategories(r.Context())
	if err != nil {
		api.HandleError(w, r, err, "failed to fetch categories")
		return
	}

	response := make([]CategoryResponse, len(categories))
	for i := range categories {
		response[i] = NewCategoryResponse(&categories[i])
	}

	api.WriteJSON(w, r, http.StatusOK, response)
}

func (h *CategoryHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r)
	if err != nil {
		api.BadRequest(w, r, err.Error())
		return
	}

	category, err := h.repo.GetCategoryByID(r.Context(), id)
	if err != nil {
		api.HandleError(w, r, err, "failed to fetch category")
		return
	}

	api.WriteJSON(w, r, http.StatusOK, NewCategoryResponse(category))
}

func (h *CategoryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeInput(w, r)
	if !ok {
		return
	}

	category := &models.Category{Name: input.Name}
	if err := h.repo.CreateCategory(r.Context(), category); err != nil {
		api.HandleError(w, r, err, "failed to create category")
		return
	}

	api.WriteJSON(w, r, http.StatusCreated, NewCategoryResponse(category))
}

func (h *CategoryHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r)
	if err != nil {
		api.BadRequest(w, r, err.Error())
		return
	}

	input, ok := decodeInput(w, r)
	if !ok {
		return
	}

	category, err := h.repo.UpdateCategory(r.Context(), id, input.Name)
	if err != nil {
		api.HandleError(w, r, err, "failed to update category")
		return
	}

	api.WriteJSON(w, r, http.StatusOK, NewCategoryResponse(category))
}

// HandleDelete removes the category together with its products. Unknown ids
// are answered with 204 as well.
func (h *CategoryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r)
	if err != nil {
		api.BadRequest(w, r, err.Error())
		return
	}

	if err := h.repo.DeleteCategory(r.Context(), id); err != nil {
		api.HandleError(w, r, err, "failed to delete category")
		return
	}

	api.NoContent(w)
}

func decodeInput(w http.ResponseWriter, r *http.Request) (*categoryInput, bool) {
	var input categoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.BadRequest(w, r, "Invalid JSON body")
		return nil, false
	}

	if err := api.Validate(input); err != nil {
		api.HandleError(w, r, err, "failed to validate category")
		return nil, false
	}

	return &input, true
}
