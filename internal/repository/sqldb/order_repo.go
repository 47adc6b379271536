package sqldb

import (
	"context"
	"fmt"
	"strings"

	"github.com/ShivChilu/chicken-shop/internal/domain"
	"github.com/ShivChilu/chicken-shop/internal/repository"

	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func (r *orderRepo) List(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error) {
	q := r.db.WithContext(ctx).Model(&domain.Order{})
	if f.Date != "" {
		q = q.Where("created_at LIKE ? ESCAPE '!'", likeEscaper.Replace(f.Date)+"%")
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	out := []domain.Order{}
	if err := q.Order("created_at DESC").Limit(repository.OrderLimit).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return out, nil
}

func (r *orderRepo) Save(ctx context.Context, order *domain.Order) error {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return fmt.Errorf("save order: %w", translate(err))
	}
	return nil
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (bool, error) {
	// MySQL reports zero affected rows when the value is unchanged, so
	// existence is checked separately.
	var n int64
	if err := r.db.WithContext(ctx).Model(&domain.Order{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, fmt.Errorf("find order: %w", err)
	}
	if n == 0 {
		return false, nil
	}
	if err := r.db.WithContext(ctx).Model(&domain.Order{}).Where("id = ?", id).Update("status", status).Error; err != nil {
		return false, fmt.Errorf("update order status: %w", err)
	}
	return true, nil
}
