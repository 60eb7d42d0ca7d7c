package models

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductsRepository struct {
	db *gorm.DB
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

// GetAllProducts returns every product in id order with its category loaded.
func (r *ProductsRepository) GetAllProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Order("id").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductsRepository) GetProductByID(ctx context.Context, id uint) (*Product, error) {
	if !validID(id) {
		return nil, &NotFoundError{Entity: "product", ID: id}
	}

	var product Product
	if err := r.db.WithContext(ctx).
		Preload("Category").
		First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "product", ID: id}
		}
		return nil, err // Other DB error
	}
	return &product, nil
}

// CreateProduct inserts p and reloads it with its category.
// Only p.CategoryID is used to link the category; p.Category is never written.
func (r *ProductsRepository) CreateProduct(ctx context.Context, p *Product) error {
	if !validID(p.CategoryID) {
		return ErrUnknownCategory
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(p).Error; err != nil {
			return translateProductError(err)
		}
		return tx.Preload("Category").First(p, p.ID).Error
	})
}

// UpdateProduct replaces every mutable field of product id with the values in input.
func (r *ProductsRepository) UpdateProduct(ctx context.Context, id uint, input *Product) (*Product, error) {
	if !validID(id) {
		return nil, &NotFoundError{Entity: "product", ID: id}
	}

	var product Product
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "product", ID: id}
			}
			return err
		}

		if !validID(input.CategoryID) {
			return ErrUnknownCategory
		}

		product.Name = input.Name
		product.Description = input.Description
		product.Price = input.Price
		product.Rating = input.Rating
		product.CategoryID = input.CategoryID
		product.Category = Category{}

		if err := tx.Omit(clause.Associations).Save(&product).Error; err != nil {
			return translateProductError(err)
		}
		return tx.Preload("Category").First(&product, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes product id. Deleting a missing product is not an error.
func (r *ProductsRepository) DeleteProduct(ctx context.Context, id uint) error {
	if !validID(id) {
		return nil
	}
	return r.db.WithContext(ctx).Delete(&Product{}, id).Error
}

func translateProductError(err error) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return ErrUnknownCategory
	}
	return err
}
