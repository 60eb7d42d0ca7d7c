package models

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoriesRepository struct {
	db *gorm.DB
}

func NewCategoriesRepository(db *gorm.DB) *CategoriesRepository {
	return &CategoriesRepository{
		db: db,
	}
}

func (r *CategoriesRepository) GetAllCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := r.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoriesRepository) GetCategoryByID(ctx context.Context, id uint) (*Category, error) {
	if !validID(id) {
		return nil, &NotFoundError{Entity: "category", ID: id}
	}

	var category Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "category", ID: id}
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoriesRepository) CreateCategory(ctx context.Context, category *Category) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(category).Error; err != nil {
		return translateCategoryError(err)
	}
	return nil
}

// UpdateCategory renames category id. Its products are left untouched.
func (r *CategoriesRepository) UpdateCategory(ctx context.Context, id uint, name string) (*Category, error) {
	if !validID(id) {
		return nil, &NotFoundError{Entity: "category", ID: id}
	}

	var category Category
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&category, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "category", ID: id}
			}
			return err
		}

		category.Name = name
		if err := tx.Omit(clause.Associations).Save(&category).Error; err != nil {
			return translateCategoryError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes category id together with every product that
// references it. Deleting a missing category is not an error.
func (r *CategoriesRepository) DeleteCategory(ctx context.Context, id uint) error {
	if !validID(id) {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&Product{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&Category{}, id).Error; err != nil {
			return translateCategoryError(err)
		}
		return nil
	})
}

func translateCategoryError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateCategoryName
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrReferentialIntegrity
	default:
		return err
	}
}
