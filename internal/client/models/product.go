package models

type Product struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	ImageURL    string           `json:"imageUrl,omitempty"`
	IsPublished bool             `json:"isPublished"`
	OrderIndex  int              `json:"orderIndex"`
	Features    []ProductFeature `json:"features"`
	CreatedAt   string           `json:"createdAt"`
	UpdatedAt   string           `json:"updatedAt"`
}

type ProductFeature struct {
	ID             string `json:"id"`
	ProductID      string `json:"productId"`
	Subtitle       string `json:"subtitle"`
	SubDescription string `json:"subDescription"`
	OrderIndex     int    `json:"orderIndex"`
	CreatedAt      string `json:"createdAt"`
}
