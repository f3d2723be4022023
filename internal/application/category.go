package application

import (
	"errors"

	"github.com/dasomcenter/dasom-api/internal/domain/category"
	"github.com/dasomcenter/dasom-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrSlugTaken        = errors.New("category slug already taken")
	ErrCategoryTooDeep  = errors.New("categories nest at most one level")
	ErrCategoryInUse    = errors.New("category still has children or posts")
)

type CategoryService struct {
	Repos *repository.Repos
}

func NewCategoryService(repos *repository.Repos) *CategoryService {
	return &CategoryService{Repos: repos}
}

func (s *CategoryService) Tree() ([]category.Node, error) {
	flat, err := s.Repos.Category.ListCategories()
	if err != nil {
		return nil, err
	}
	return category.BuildTree(flat), nil
}

func (s *CategoryService) Create(input category.CreateCategoryDTO) (category.Category, error) {
	if err := s.checkSlugFree(input.Slug, 0); err != nil {
		return category.Category{}, err
	}
	if input.ParentID != nil {
		parent, err := s.Repos.Category.GetCategoryByID(*input.ParentID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return category.Category{}, ErrCategoryNotFound
		}
		if err != nil {
			return category.Category{}, err
		}
		if parent.ParentID != nil {
			return category.Category{}, ErrCategoryTooDeep
		}
	}

	c := category.Category{
		ParentID:  input.ParentID,
		Name:      input.Name,
		Slug:      input.Slug,
		SortOrder: input.SortOrder,
	}
	return c, s.Repos.Category.SaveCategory(&c)
}

func (s *CategoryService) Update(id uint, input category.UpdateCategoryDTO) (category.Category, error) {
	c, err := s.Repos.Category.GetCategoryByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return category.Category{}, ErrCategoryNotFound
	}
	if err != nil {
		return category.Category{}, err
	}

	if input.Name != nil {
		c.Name = *input.Name
	}
	if input.Slug != nil && *input.Slug != c.Slug {
		if err := s.checkSlugFree(*input.Slug, id); err != nil {
			return category.Category{}, err
		}
		c.Slug = *input.Slug
	}
	if input.SortOrder != nil {
		c.SortOrder = *input.SortOrder
	}
	return c, s.Repos.Category.SaveCategory(&c)
}

func (s *CategoryService) Delete(id uint) error {
	if _, err := s.Repos.Category.GetCategoryByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}

	children, err := s.Repos.Category.CountChildren(id)
	if err != nil {
		return err
	}
	posts, err := s.Repos.Post.CountByCategory(id)
	if err != nil {
		return err
	}
	if children > 0 || posts > 0 {
		return ErrCategoryInUse
	}
	return s.Repos.Category.DeleteCategory(id)
}

func (s *CategoryService) checkSlugFree(slug string, selfID uint) error {
	existing, err := s.Repos.Category.GetCategoryBySlug(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.CID != selfID {
		return ErrSlugTaken
	}
	return nil
}
