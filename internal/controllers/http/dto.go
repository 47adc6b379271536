package http

import (
	"bytes"
	"encoding/json"

	"github.com/ShivChilu/chicken-shop/internal/domain"
	"github.com/ShivChilu/chicken-shop/internal/services"
)

type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Image string `json:"image"`
}

type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Price       *float64 `json:"price" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Image       string   `json:"image"`
	InStock     *bool    `json:"in_stock"`
	Description string   `json:"description"`
	Unit        string   `json:"unit"`
}

func (r CreateProductRequest) toInput() services.NewProduct {
	return services.NewProduct{
		Name:        r.Name,
		Price:       r.Price,
		Category:    r.Category,
		Image:       r.Image,
		InStock:     r.InStock,
		Description: r.Description,
		Unit:        r.Unit,
	}
}

// UpdateProductRequest fields left out of the body stay unchanged.
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Image       *string  `json:"image"`
	InStock     *bool    `json:"in_stock"`
	Description *string  `json:"description"`
	Unit        *string  `json:"unit"`
}

func (r UpdateProductRequest) toPatch() domain.ProductPatch {
	return domain.ProductPatch{
		Name:        r.Name,
		Price:       r.Price,
		Category:    r.Category,
		Image:       r.Image,
		InStock:     r.InStock,
		Description: r.Description,
		Unit:        r.Unit,
	}
}

type OrderItemRequest struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Unit      string  `json:"unit"`
}

type CreateOrderRequest struct {
	CustomerName string             `json:"customer_name" binding:"required"`
	Phone        string             `json:"phone" binding:"required"`
	Address      string             `json:"address" binding:"required"`
	Pincode      string             `json:"pincode" binding:"required"`
	Items        []OrderItemRequest `json:"items" binding:"required"`
	Total        *float64           `json:"total" binding:"required"`
	PaymentMode  string             `json:"payment_mode"`
}

func (r CreateOrderRequest) toInput() services.CreateOrderInput {
	items := make([]domain.OrderItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = domain.OrderItem(it)
	}
	return services.CreateOrderInput{
		CustomerName: r.CustomerName,
		Phone:        r.Phone,
		Address:      r.Address,
		Pincode:      r.Pincode,
		Items:        items,
		Total:        r.Total,
		PaymentMode:  r.PaymentMode,
	}
}

type UpdateStatusRequest struct {
	Status domain.OrderStatus `json:"status" binding:"required"`
}

type UpdateStatusResponse struct {
	Success bool               `json:"success"`
	Status  domain.OrderStatus `json:"status"`
}

type CreatePincodeRequest struct {
	Code   string `json:"code" binding:"required"`
	Active *bool  `json:"active"`
}

type VerifyPincodeResponse struct {
	Valid bool `json:"valid"`
}

// AdminVerifyRequest takes the pin as a JSON string or number. A number
// keeps its literal digits. Anything else, including a missing pin, is
// compared as given and fails verification.
type AdminVerifyRequest struct {
	Pin json.RawMessage `json:"pin"`
}

func (r AdminVerifyRequest) pin() string {
	raw := bytes.TrimSpace(r.Pin)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}
