package application

import (
	"errors"

	"github.com/dasomcenter/dasom-api/internal/domain/post"
	"github.com/dasomcenter/dasom-api/internal/repository"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

var ErrPostNotFound = errors.New("post not found")

type PostService struct {
	Repos *repository.Repos
}

func NewPostService(repos *repository.Repos) *PostService {
	return &PostService{Repos: repos}
}

func (s *PostService) List(q post.ListQuery) ([]post.Post, int64, error) {
	return s.Repos.Post.ListPosts(q)
}

// Get returns a published post and counts the view. Admin reads go through
// GetAny and leave the counter alone.
func (s *PostService) Get(id uint) (post.Post, error) {
	p, err := s.Repos.Post.GetPostByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return post.Post{}, ErrPostNotFound
	}
	if err != nil {
		return post.Post{}, err
	}
	if !p.Published {
		return post.Post{}, ErrPostNotFound
	}
	if err := s.Repos.Post.IncrementViewCount(id); err != nil {
		return post.Post{}, err
	}
	p.ViewCount++
	return p, nil
}

func (s *PostService) GetAny(id uint) (post.Post, error) {
	p, err := s.Repos.Post.GetPostByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return post.Post{}, ErrPostNotFound
	}
	return p, err
}

func (s *PostService) Create(authorID uint, input post.CreatePostDTO) (post.Post, error) {
	kind := post.KindPost
	if input.Kind != "" {
		kind = input.Kind
	}
	published := true
	if input.Published != nil {
		published = *input.Published
	}

	p := post.Post{
		CategoryID:  input.CategoryID,
		Kind:        kind,
		Title:       input.Title,
		Content:     input.Content,
		Pinned:      input.Pinned,
		Published:   published,
		Attachments: pq.StringArray(input.Attachments),
		AuthorID:    authorID,
	}
	return p, s.Repos.Post.SavePost(&p)
}

func (s *PostService) Update(id uint, input post.UpdatePostDTO) (post.Post, error) {
	p, err := s.Repos.Post.GetPostByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return post.Post{}, ErrPostNotFound
	}
	if err != nil {
		return post.Post{}, err
	}

	if input.CategoryID != nil {
		p.CategoryID = input.CategoryID
	}
	if input.Title != nil {
		p.Title = *input.Title
	}
	if input.Content != nil {
		p.Content = *input.Content
	}
	if input.Pinned != nil {
		p.Pinned = *input.Pinned
	}
	if input.Published != nil {
		p.Published = *input.Published
	}
	if input.Attachments != nil {
		p.Attachments = pq.StringArray(input.Attachments)
	}
	return p, s.Repos.Post.SavePost(&p)
}

func (s *PostService) Delete(id uint) error {
	if _, err := s.Repos.Post.GetPostByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	return s.Repos.Post.DeletePost(id)
}
