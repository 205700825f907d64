package repo

import (
	"strings"

	"github.com/mcnews-project/newsctl/internal/api"
	"github.com/mcnews-project/newsctl/internal/domain"
)

// Mapping between wire DTOs and domain entities. These are pure, total
// functions; every entity handed to callers has passed through here.

func articleFromDTO(dto api.ArticleDTO) domain.Article {
	tags := make([]domain.Tag, 0, len(dto.Tags))
	for _, t := range dto.Tags {
		tags = append(tags, tagFromDTO(t))
	}

	return domain.Article{
		ID:         dto.ArticleID,
		AuthorID:   dto.Author.UserID,
		Title:      dto.Title,
		Body:       dto.Body,
		Image:      deref(dto.Image),
		StatusID:   dto.Status.StatusID,
		CreatedAt:  dto.CreatedAt,
		Tags:       tags,
		AuthorName: strings.TrimSpace(dto.Author.FirstName + " " + dto.Author.LastName),
	}
}

func tagFromDTO(dto api.TagDTO) domain.Tag {
	return domain.Tag{ID: dto.TagID, Name: dto.Name}
}

func authorFromDTO(dto api.AuthorDTO) domain.Author {
	return domain.Author{
		UserID:     dto.UserID,
		FirstName:  dto.FirstName,
		LastName:   dto.LastName,
		MiddleName: deref(dto.MiddleName),
		BirthDate:  dto.BirthDate,
		GenderID:   dto.GenderID,
		Email:      dto.Email,
		Login:      dto.Login,
		CreatedAt:  dto.CreatedAt,
	}
}

func userFromDTO(dto api.UserDTO) domain.User {
	return domain.User{
		UserID:     dto.UserID,
		FirstName:  dto.FirstName,
		LastName:   dto.LastName,
		MiddleName: deref(dto.MiddleName),
		BirthDate:  dto.BirthDate,
		GenderID:   dto.GenderID,
		Email:      dto.Email,
		Login:      dto.Login,
		Photo:      deref(dto.Photo),
		CreatedAt:  dto.CreatedAt,
	}
}

// createDTO builds the creation payload from an article. Derived fields
// (author name) are stripped; tags and image are never invented here —
// callers supply them explicitly through the multipart path when the edit
// intent includes them.
func createDTO(a domain.Article) api.ArticleCreateDTO {
	return api.ArticleCreateDTO{
		AuthorID: a.AuthorID,
		Title:    a.Title,
		Body:     a.Body,
		StatusID: a.StatusID,
	}
}

// updateDTO builds the update payload from an article, transmitting the
// editable text fields only. A nil field in the result means "leave
// unchanged" server-side; this function never sets TagIDs or Image, so a
// round trip through articleFromDTO and back cannot introduce them.
func updateDTO(a domain.Article) api.ArticleUpdateDTO {
	title := a.Title
	body := a.Body
	statusID := a.StatusID
	return api.ArticleUpdateDTO{
		Title:    &title,
		Body:     &body,
		StatusID: &statusID,
	}
}

func registerRequest(u domain.User, password string) api.RegisterRequest {
	req := api.RegisterRequest{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		BirthDate: u.BirthDate,
		GenderID:  u.GenderID,
		Email:     u.Email,
		Login:     u.Login,
		Password:  password,
	}
	if u.MiddleName != "" {
		req.MiddleName = &u.MiddleName
	}
	return req
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ListOptions filters an article listing. Nil/empty optional filters are
// omitted from the request entirely.
type ListOptions struct {
	Skip   int
	Limit  int
	Status *int
	Search string
	TagID  *int
}

func (o ListOptions) wire() api.ListArticlesOptions {
	return api.ListArticlesOptions{
		Skip:   o.Skip,
		Limit:  o.Limit,
		Status: o.Status,
		Search: o.Search,
		TagID:  o.TagID,
	}
}

// ProfileUpdate carries the profile fields to change. Nil fields are left
// unchanged server-side; Photo is raw JPEG bytes, nil when not replacing.
type ProfileUpdate struct {
	FirstName  *string
	LastName   *string
	MiddleName *string
	Email      *string
	Photo      []byte
}

func (p ProfileUpdate) wire() api.UpdateProfileForm {
	return api.UpdateProfileForm{
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		MiddleName: p.MiddleName,
		Email:      p.Email,
		Photo:      p.Photo,
	}
}
