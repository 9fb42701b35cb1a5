package services

import (
	"context"
	"fmt"

	"github.com/epicrobotics/academy-cli/internal/client/api"
	"github.com/epicrobotics/academy-cli/internal/client/models"
)

type ProductInput struct {
	Title       string         `json:"title,omitempty"`
	Description string         `json:"description,omitempty"`
	ImageURL    string         `json:"imageUrl,omitempty"`
	OrderIndex  *int           `json:"orderIndex,omitempty"`
	IsPublished *bool          `json:"isPublished,omitempty"`
	Features    []FeatureInput `json:"features,omitempty"`
}

type FeatureInput struct {
	Subtitle       string `json:"subtitle,omitempty"`
	SubDescription string `json:"subDescription,omitempty"`
	OrderIndex     int    `json:"orderIndex"`
}

type FeatureOrder struct {
	FeatureID  string `json:"featureId"`
	OrderIndex int    `json:"orderIndex"`
}

// ProductService manages the marketing product catalog and its nested
// feature lists.
type ProductService struct {
	api *api.Client
}

func NewProductService(client *api.Client) *ProductService {
	return &ProductService{api: client}
}

// List returns published products; includeAll additionally returns drafts
// (the backend restricts that to admins).
func (s *ProductService) List(ctx context.Context, includeAll bool) ([]models.Product, error) {
	path := "/products"
	if includeAll {
		path += "?includeAll=true"
	}
	var products []models.Product
	if err := s.api.Get(ctx, path, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductService) Get(ctx context.Context, productID string) (*models.Product, error) {
	var product models.Product
	if err := s.api.Get(ctx, "/products/"+productID, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) Create(ctx context.Context, data ProductInput) (*models.Product, error) {
	var product models.Product
	if err := s.api.Post(ctx, "/products", data, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) Update(ctx context.Context, productID string, data ProductInput) (*models.Product, error) {
	var product models.Product
	if err := s.api.Put(ctx, "/products/"+productID, data, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) Delete(ctx context.Context, productID string) (*models.Message, error) {
	var msg models.Message
	if err := s.api.Delete(ctx, "/products/"+productID, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *ProductService) AddFeature(ctx context.Context, productID string, data FeatureInput) (*models.ProductFeature, error) {
	var feature models.ProductFeature
	if err := s.api.Post(ctx, fmt.Sprintf("/products/%s/features", productID), data, &feature); err != nil {
		return nil, err
	}
	return &feature, nil
}

func (s *ProductService) UpdateFeature(ctx context.Context, featureID string, data FeatureInput) (*models.ProductFeature, error) {
	var feature models.ProductFeature
	if err := s.api.Put(ctx, "/products/features/"+featureID, data, &feature); err != nil {
		return nil, err
	}
	return &feature, nil
}

func (s *ProductService) DeleteFeature(ctx context.Context, featureID string) (*models.Message, error) {
	var msg models.Message
	if err := s.api.Delete(ctx, "/products/features/"+featureID, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *ProductService) ReorderFeatures(ctx context.Context, productID string, orders []FeatureOrder) (*models.Message, error) {
	var msg models.Message
	body := map[string][]FeatureOrder{"featureOrders": orders}
	if err := s.api.Put(ctx, fmt.Sprintf("/products/%s/features/reorder", productID), body, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
