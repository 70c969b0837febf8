package transport

type CreateProductRequest struct {
	Name        string  `json:"name"`
	Model       string  `json:"model"`
	Price       *Number `json:"price"`
	Discount    *Number `json:"discount"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}

type UpdateProductRequest struct {
	Name        *string `json:"name"`
	Model       *string `json:"model"`
	Price       *Number `json:"price"`
	Discount    *Number `json:"discount"`
	Image       *string `json:"image"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
}

type CreateComboRequest struct {
	Name        string   `json:"name"`
	Model       string   `json:"model"`
	Price       *Number  `json:"price"`
	Discount    *Number  `json:"discount"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

type UpdateComboRequest struct {
	Name        *string  `json:"name"`
	Model       *string  `json:"model"`
	Price       *Number  `json:"price"`
	Discount    *Number  `json:"discount"`
	Description *string  `json:"description"`
	Images      []string `json:"images"`
}

type CreateBannerRequest struct {
	Image   string `json:"image"`
	Caption string `json:"caption"`
}

type UpdateBannerRequest struct {
	Image   *string `json:"image"`
	Caption *string `json:"caption"`
}

type CreateOrderRequest struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    *Number `json:"quantity"`
	TotalPrice  *Number `json:"totalPrice"`
	BuyerName   string  `json:"buyerName"`
	BuyerEmail  string  `json:"buyerEmail"`
	Phone       string  `json:"phone"`
	Address     string  `json:"address"`
	OrderedBy   string  `json:"orderedBy"`
}

type PatchOrderRequest struct {
	Status        *string `json:"status"`
	TransactionID *string `json:"transactionId"`
}

type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Photo    string `json:"photo"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
