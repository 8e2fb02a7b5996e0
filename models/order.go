package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusExpired   OrderStatus = "expired"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is a purchase in progress or completed. Pending orders count
// against quotas only until Expires; checkout flows own all writes.
type Order struct {
	ID      uint        `gorm:"primaryKey"`
	EventID uint        `gorm:"not null;index"`
	Status  OrderStatus `gorm:"not null"`
	Expires time.Time   `gorm:"not null"`

	Positions []OrderPosition `gorm:"foreignKey:OrderID"`
}

func (o *Order) TableName() string {
	return "orders"
}

// OrderPosition is one purchased unit within an order. VariationID is nil
// for items without properties.
type OrderPosition struct {
	ID          uint            `gorm:"primaryKey"`
	OrderID     uint            `gorm:"not null;index"`
	Order       Order           `gorm:"foreignKey:OrderID"`
	ItemID      uint            `gorm:"not null;index"`
	Item        Item            `gorm:"foreignKey:ItemID"`
	VariationID *uint           `gorm:"index"`
	Variation   *ItemVariation  `gorm:"foreignKey:VariationID"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

func (p *OrderPosition) TableName() string {
	return "order_positions"
}
