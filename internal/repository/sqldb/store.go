package sqldb

import (
	"context"

	"github.com/ShivChilu/chicken-shop/internal/domain"
	"github.com/ShivChilu/chicken-shop/internal/repository"

	"gorm.io/gorm"
)

// Migrate creates or updates the tables backing the store.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.Category{}, &domain.Product{}, &domain.Order{}, &domain.Pincode{})
}

// NewStore wires all repositories onto one gorm handle. The handle should be
// opened with TranslateError so unique violations map to ErrDuplicate.
func NewStore(db *gorm.DB) *repository.Store {
	return &repository.Store{
		Categories: NewCategoryRepository(db),
		Products:   NewProductRepository(db),
		Orders:     NewOrderRepository(db),
		Pincodes:   NewPincodeRepository(db),
		Close: func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	}
}
