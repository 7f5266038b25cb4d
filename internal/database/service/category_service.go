package service

import (
	"log/slog"

	"github.com/thdihan/rangva-server/internal/database/models"
	"github.com/thdihan/rangva-server/internal/database/query"
	"github.com/thdihan/rangva-server/internal/database/repository"
)

// CategoryFilterKeys are the query parameters the category list accepts
// besides pagination.
var CategoryFilterKeys = []string{"searchTerm", "name"}

// CreateCategoryInput is the payload for creating a category.
type CreateCategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// UpdateCategoryInput is the partial-update payload for a category.
type UpdateCategoryInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

// CategoryService defines the interface for category business logic
type CategoryService interface {
	Create(input CreateCategoryInput) (*models.Category, error)
	List(params map[string]string, opts query.Options) ([]models.Category, int64, error)
	Get(id string) (*models.Category, error)
	Update(id string, input UpdateCategoryInput) (*models.Category, error)
	Delete(id string) (*models.Category, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// NewCategoryService creates a new category service instance
func NewCategoryService(categoryRepo repository.CategoryRepository, logger *slog.Logger) CategoryService {
	return &categoryService{categoryRepo: categoryRepo, logger: logger}
}

func (s *categoryService) Create(input CreateCategoryInput) (*models.Category, error) {
	s.logger.Info("📝 [CategoryService] Creating category", "name", input.Name)

	category := &models.Category{
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		s.logger.Error("❌ [CategoryService] Failed to create category", "error", err)
		return nil, err
	}

	s.logger.Info("✅ [CategoryService] Category created successfully", "category_id", category.ID)
	return category, nil
}

func (s *categoryService) List(params map[string]string, opts query.Options) ([]models.Category, int64, error) {
	filter := query.Filter{
		SearchTerm:   params["searchTerm"],
		SearchFields: []string{"name", "description"},
		Equals:       map[string]interface{}{},
	}
	if name, ok := params["name"]; ok {
		filter.Equals["name"] = name
	}

	return s.categoryRepo.List(filter, opts)
}

func (s *categoryService) Get(id string) (*models.Category, error) {
	return s.categoryRepo.FindByID(id)
}

func (s *categoryService) Update(id string, input UpdateCategoryInput) (*models.Category, error) {
	s.logger.Info("📝 [CategoryService] Updating category", "category_id", id)

	fields := map[string]interface{}{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Image != nil {
		fields["image"] = *input.Image
	}

	return s.categoryRepo.Update(id, fields)
}

func (s *categoryService) Delete(id string) (*models.Category, error) {
	s.logger.Info("🗑️ [CategoryService] Deleting category", "category_id", id)
	return s.categoryRepo.Delete(id)
}
