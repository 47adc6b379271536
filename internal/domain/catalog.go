package domain

const DefaultUnit = "500g"

type Category struct {
	ID        string `json:"id" bson:"id" gorm:"primaryKey;size:36"`
	Name      string `json:"name" bson:"name" gorm:"not null"`
	Image     string `json:"image" bson:"image"`
	CreatedAt string `json:"created_at" bson:"created_at" gorm:"size:32"`
}

// Product.Category holds a category name by convention; it is not checked
// against existing categories.
type Product struct {
	ID          string  `json:"id" bson:"id" gorm:"primaryKey;size:36"`
	Name        string  `json:"name" bson:"name" gorm:"not null"`
	Price       float64 `json:"price" bson:"price" gorm:"not null"`
	Category    string  `json:"category" bson:"category" gorm:"index"`
	Image       string  `json:"image" bson:"image"`
	InStock     bool    `json:"in_stock" bson:"in_stock"`
	Description string  `json:"description" bson:"description"`
	Unit        string  `json:"unit" bson:"unit"`
	CreatedAt   string  `json:"created_at" bson:"created_at" gorm:"size:32"`
}

// ProductPatch carries a partial product update. Nil fields keep their
// stored value.
type ProductPatch struct {
	Name        *string
	Price       *float64
	Category    *string
	Image       *string
	InStock     *bool
	Description *string
	Unit        *string
}

// Fields returns the set fields keyed by their stored column/field name.
func (p ProductPatch) Fields() map[string]any {
	out := map[string]any{}
	if p.Name != nil {
		out["name"] = *p.Name
	}
	if p.Price != nil {
		out["price"] = *p.Price
	}
	if p.Category != nil {
		out["category"] = *p.Category
	}
	if p.Image != nil {
		out["image"] = *p.Image
	}
	if p.InStock != nil {
		out["in_stock"] = *p.InStock
	}
	if p.Description != nil {
		out["description"] = *p.Description
	}
	if p.Unit != nil {
		out["unit"] = *p.Unit
	}
	return out
}

type Pincode struct {
	ID     string `json:"id" bson:"id" gorm:"primaryKey;size:36"`
	Code   string `json:"code" bson:"code" gorm:"size:16;uniqueIndex;not null"`
	Active bool   `json:"active" bson:"active"`
}
