package products

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/shoeppe/catalog-api/app/api"
	"github.com/shoeppe/catalog-api/app/categories"
	"github.com/shoeppe/catalog-api/models"
)

// ProductResponse is the wire form of a product. The embedded category never
// carries its own product list.
type ProductResponse struct {
	ID          uint                        `json:"id"`
	Name        string                      `json:"name"`
	Description *string                     `json:"description"`
	Price       json.Number                 `json:"price"`
	Rating      json.Number                 `json:"rating"`
	Category    categories.CategoryResponse `json:"category"`
}

type ProductProvider interface {
	GetAllProducts(ctx context.Context) ([]models.Product, error)
	GetProductByID(ctx context.Context, id uint) (*models.Product, error)
	CreateProduct(ctx context.Context, p *models.Product) error
	UpdateProduct(ctx context.Context, id uint, input *models.Product) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
}

type categoryRef struct {
	ID uint `json:"id"`
}

type productInput struct {
	Name        string           `json:"name" validate:"required,max=100"`
	Description *string          `json:"description" validate:"omitempty,min=1,max=2000"`
	Price       *decimal.Decimal `json:"price" validate:"required,gte=0,lte=99999999.99"`
	Rating      *decimal.Decimal `json:"rating" validate:"required,gt=0,lte=99.9"`
	Category    *categoryRef     `json:"category" validate:"required"`
}

func (in *productInput) toModel() *models.Product {
	return &models.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price.Round(models.PriceScale),
		Rating:      in.Rating.Round(models.RatingScale),
		CategoryID:  in.Category.ID,
	}
}

type ProductHandler struct {
	repo ProductProvider
}

func NewProductHandler(r ProductProvider) *ProductHandler {
	return &ProductHandler{
		repo: r,
	}
}

func NewProductResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       json.Number(p.Price.StringFixed(models.PriceScale)),
		Rating:      json.Number(p.Rating.StringFixed(models.RatingScale)),
		Category:    categories.NewCategoryResponse(&p.Category),
	}
}

func (h *ProductHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	res, err := h.repo.GetAllProducts(r.Context())
	if err != nil {
		api.HandleError(w, r, err, "failed to fetch products")
		return
	}

	products := make([]ProductResponse, len(res))
	for i := range res {
		products[i] = NewProductResponse(&res[i])
	}

	api.WriteJSON(w, r, http.StatusOK, products)
}

func (h *ProductHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r)
	if err != nil {
		api.BadRequest(w, r, err.Error())
		return
	}

	product, err := h.repo.GetProductByID(r.Context(), id)
	if err != nil {
		api.HandleError(w, r, err, "failed to fetch product")
		return
	}

	api.WriteJSON(w, r, http.StatusOK, NewProductResponse(product))
}

func (h *ProductHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeInput(w, r)
	if !ok {
		return
	}

	product := input.toModel()
	if err := h.repo.CreateProduct(r.Context(), product); err != nil {
		api.HandleError(w, r, err, "failed to create product")
		return
	}

	api.WriteJSON(w, r, http.StatusCreated, NewProductResponse(product))
}

// HandleUpdate replaces every mutable field of the product; the id in the
// path is kept.
func (h *ProductHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r)
	if err != nil {
		api.BadRequest(w, r, err.Error())
		return
	}

	input, ok := decodeInput(w, r)
	if !ok {
		return
	}

	product, err := h.repo.UpdateProduct(r.Context(), id, input.toModel())
	if err != nil {
		api.HandleError(w, r, err, "failed to update product")
		return
	}

	api.WriteJSON(w, r, http.StatusOK, NewProductResponse(product))
}

func (h *ProductHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r)
	if err != nil {
		api.BadRequest(w, r, err.Error())
		return
	}

	if err := h.repo.DeleteProduct(r.Context(), id); err != nil {
		api.HandleError(w, r, err, "failed to delete product")
		return
	}

	api.NoContent(w)
}

func decodeInput(w http.ResponseWriter, r *http.Request) (*productInput, bool) {
	var input productInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.BadRequest(w, r, "Invalid JSON body")
		return nil, false
	}

	var invalid api.ValidationErrors
	if err := api.Validate(input); err != nil && !errors.As(err, &invalid) {
		api.HandleError(w, r, err, "failed to validate product")
		return nil, false
	}

	// rules run on the submitted values; a rating must also stay positive
	// at the precision it is stored with
	if input.Rating != nil && !input.Rating.Round(models.RatingScale).IsPositive() {
		if invalid == nil {
			invalid = api.ValidationErrors{}
		}
		if _, seen := invalid["rating"]; !seen {
			invalid["rating"] = "rating must be greater than 0"
		}
	}

	if len(invalid) > 0 {
		api.HandleError(w, r, invalid, "failed to validate product")
		return nil, false
	}

	return &input, true
}
