// Package repo is the stable, domain-typed surface the rest of newsctl
// depends on. It composes the API gateway with the DTO mappers so that no
// wire representation ever leaks past this boundary, and it is
// session-agnostic: credentials are the gateway's concern.
package repo

import (
	"context"

	"github.com/mcnews-project/newsctl/internal/api"
	"github.com/mcnews-project/newsctl/internal/domain"
)

// ArticleGateway is the slice of the API client the article repository
// consumes.
type ArticleGateway interface {
	ListArticles(ctx context.Context, opts api.ListArticlesOptions) ([]api.ArticleDTO, error)
	GetArticle(ctx context.Context, id int) (*api.ArticleDTO, error)
	CreateArticle(ctx context.Context, payload api.ArticleCreateDTO) (*api.ArticleDTO, error)
	UpdateArticle(ctx context.Context, id int, payload api.ArticleUpdateDTO) (*api.ArticleDTO, error)
	DeleteArticle(ctx context.Context, id int) error
	ListTags(ctx context.Context) ([]api.TagDTO, error)
	CreateTag(ctx context.Context, name string) (*api.TagDTO, error)
	ListAuthors(ctx context.Context) ([]api.AuthorDTO, error)
}

// ArticleRepository exposes article, tag and author operations in domain
// terms.
type ArticleRepository struct {
	gw ArticleGateway
}

// NewArticleRepository wraps a gateway in the domain-typed facade.
func NewArticleRepository(gw ArticleGateway) *ArticleRepository {
	return &ArticleRepository{gw: gw}
}

// GetArticles returns a page of articles matching the filters.
func (r *ArticleRepository) GetArticles(ctx context.Context, opts ListOptions) ([]domain.Article, error) {
	dtos, err := r.gw.ListArticles(ctx, opts.wire())
	if err != nil {
		return nil, err
	}

	articles := make([]domain.Article, 0, len(dtos))
	for _, dto := range dtos {
		articles = append(articles, articleFromDTO(dto))
	}
	return articles, nil
}

// GetArticle returns a single article by id.
func (r *ArticleRepository) GetArticle(ctx context.Context, id int) (domain.Article, error) {
	dto, err := r.gw.GetArticle(ctx, id)
	if err != nil {
		return domain.Article{}, err
	}
	return articleFromDTO(*dto), nil
}

// CreateArticle creates an article from the text fields of the given
// value and returns the server's snapshot of it.
func (r *ArticleRepository) CreateArticle(ctx context.Context, a domain.Article) (domain.Article, error) {
	dto, err := r.gw.CreateArticle(ctx, createDTO(a))
	if err != nil {
		return domain.Article{}, err
	}
	return articleFromDTO(*dto), nil
}

// UpdateArticle pushes the article's editable text fields and returns the
// server's snapshot.
func (r *ArticleRepository) UpdateArticle(ctx context.Context, a domain.Article) (domain.Article, error) {
	dto, err := r.gw.UpdateArticle(ctx, a.ID, updateDTO(a))
	if err != nil {
		return domain.Article{}, err
	}
	return articleFromDTO(*dto), nil
}

// DeleteArticle removes an article by id.
func (r *ArticleRepository) DeleteArticle(ctx context.Context, id int) error {
	return r.gw.DeleteArticle(ctx, id)
}

// GetTags returns every tag known to the server.
func (r *ArticleRepository) GetTags(ctx context.Context) ([]domain.Tag, error) {
	dtos, err := r.gw.ListTags(ctx)
	if err != nil {
		return nil, err
	}

	tags := make([]domain.Tag, 0, len(dtos))
	for _, dto := range dtos {
		tags = append(tags, tagFromDTO(dto))
	}
	return tags, nil
}

// CreateTag registers a new tag name.
func (r *ArticleRepository) CreateTag(ctx context.Context, name string) (domain.Tag, error) {
	dto, err := r.gw.CreateTag(ctx, name)
	if err != nil {
		return domain.Tag{}, err
	}
	return tagFromDTO(*dto), nil
}

// GetAuthors returns the user directory.
func (r *ArticleRepository) GetAuthors(ctx context.Context) ([]domain.Author, error) {
	dtos, err := r.gw.ListAuthors(ctx)
	if err != nil {
		return nil, err
	}

	authors := make([]domain.Author, 0, len(dtos))
	for _, dto := range dtos {
		authors = append(authors, authorFromDTO(dto))
	}
	return authors, nil
}

// AuthGateway is the slice of the API client the auth repository
// consumes.
type AuthGateway interface {
	Login(ctx context.Context, login, password string) (string, error)
	Register(ctx context.Context, req api.RegisterRequest) (*api.UserDTO, error)
	GetCurrentUser(ctx context.Context) (*api.UserDTO, error)
	UpdateProfile(ctx context.Context, form api.UpdateProfileForm) (*api.UserDTO, error)
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error
	ExportProfilePDF(ctx context.Context) ([]byte, error)
}

// AuthRepository exposes authentication and self-profile operations in
// domain terms.
type AuthRepository struct {
	gw AuthGateway
}

// NewAuthRepository wraps a gateway in the domain-typed facade.
func NewAuthRepository(gw AuthGateway) *AuthRepository {
	return &AuthRepository{gw: gw}
}

// Login exchanges credentials for a bearer token.
func (r *AuthRepository) Login(ctx context.Context, login, password string) (string, error) {
	return r.gw.Login(ctx, login, password)
}

// Register creates a user account and returns the stored profile.
func (r *AuthRepository) Register(ctx context.Context, u domain.User, password string) (domain.User, error) {
	dto, err := r.gw.Register(ctx, registerRequest(u, password))
	if err != nil {
		return domain.User{}, err
	}
	return userFromDTO(*dto), nil
}

// CurrentUser returns the authenticated user's profile.
func (r *AuthRepository) CurrentUser(ctx context.Context) (domain.User, error) {
	dto, err := r.gw.GetCurrentUser(ctx)
	if err != nil {
		return domain.User{}, err
	}
	return userFromDTO(*dto), nil
}

// UpdateProfile pushes a partial profile update and returns the stored
// profile.
func (r *AuthRepository) UpdateProfile(ctx context.Context, update ProfileUpdate) (domain.User, error) {
	dto, err := r.gw.UpdateProfile(ctx, update.wire())
	if err != nil {
		return domain.User{}, err
	}
	return userFromDTO(*dto), nil
}

// ChangePassword replaces the authenticated user's password.
func (r *AuthRepository) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	return r.gw.ChangePassword(ctx, oldPassword, newPassword)
}

// ExportProfilePDF returns the profile rendered as raw PDF bytes.
func (r *AuthRepository) ExportProfilePDF(ctx context.Context) ([]byte, error) {
	return r.gw.ExportProfilePDF(ctx)
}
