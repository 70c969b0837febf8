package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CategorySports        = "sports"
	CategoryRetro         = "retro"
	CategoryHomeKit       = "home-kit"
	CategoryPlayerEdition = "player-edition"
	CategoryFootballBoots = "football-boots"
	CategoryNone          = "none"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

const (
	OrderedByWebsite = "website"
	OrderedByBkash   = "bkash"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

func ValidCategory(c string) bool {
	switch c {
	case CategorySports, CategoryRetro, CategoryHomeKit, CategoryPlayerEdition, CategoryFootballBoots, CategoryNone:
		return true
	}
	return false
}

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

func ValidOrderChannel(c string) bool {
	return c == OrderedByWebsite || c == OrderedByBkash
}

type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"not null"             json:"name"`
	Model       string    `gorm:"not null"             json:"model"`
	Price       float64   `gorm:"not null"             json:"price"`
	Discount    float64   `gorm:"default:0"            json:"discount"`
	Image       string    `gorm:"not null"             json:"image"`
	Description string    `gorm:"not null"             json:"description"`
	Category    string    `gorm:"not null;index"       json:"category"`
	CreatedAt   time.Time `gorm:"index"                json:"createdAt"`
}

func (p *Product) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type ComboProduct struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string     `gorm:"not null"             json:"name"`
	Model       string     `gorm:"not null"             json:"model"`
	Price       float64    `gorm:"not null"             json:"price"`
	Discount    float64    `gorm:"default:0"            json:"discount"`
	Description string     `gorm:"not null"             json:"description"`
	Images      StringList `gorm:"type:text;not null"   json:"images"`
	CreatedAt   time.Time  `gorm:"index"                json:"createdAt"`
}

func (p *ComboProduct) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type Banner struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Image     string    `gorm:"not null"             json:"image"`
	Caption   string    `gorm:"not null"             json:"caption"`
	CreatedAt time.Time `gorm:"index"                json:"createdAt"`
}

func (b *Banner) BeforeCreate(*gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

type Order struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"   json:"id"`
	ProductID     uuid.UUID `gorm:"type:uuid;index;not null" json:"productId"`
	ProductName   string    `gorm:"not null"               json:"productName"`
	Quantity      int       `gorm:"not null"               json:"quantity"`
	TotalPrice    float64   `gorm:"not null"               json:"totalPrice"`
	BuyerName     string    `gorm:"not null"               json:"buyerName"`
	BuyerEmail    string    `gorm:"index;not null"         json:"buyerEmail"`
	Phone         string    `gorm:"not null"               json:"phone"`
	Address       string    `gorm:"not null"               json:"address"`
	Status        string    `gorm:"not null;default:pending" json:"status"`
	TransactionID *string   `json:"transactionId"`
	OrderedBy     string    `gorm:"not null;default:website" json:"orderedBy"`
	CreatedAt     time.Time `gorm:"index"                  json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (o *Order) BeforeCreate(*gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"    json:"id"`
	Name      string    `gorm:"not null"                json:"name"`
	Photo     string    `json:"photo"`
	Phone     string    `json:"phone"`
	Email     string    `gorm:"uniqueIndex;not null"    json:"email"`
	Password  string    `gorm:"not null"                json:"-"`
	Role      string    `gorm:"not null;default:user"   json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func All() []any {
	return []any{&Product{}, &ComboProduct{}, &Banner{}, &Order{}, &User{}}
}
