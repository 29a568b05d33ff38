package products

import "productCatalog/internal/domain"

// ListResponse — ответ GET /products.
type ListResponse struct {
	Time     string           `json:"time"`
	Products []domain.Product `json:"products"`
	Count    int64            `json:"count"`
}

// DetailResponse — ответ GET /products/:id.
type DetailResponse struct {
	Time    string          `json:"time"`
	Product *domain.Product `json:"product"`
}

// ErrorResponse — тело ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}
