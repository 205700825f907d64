package api

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// DefaultPageLimit is the page size used when the caller does not supply
// one.
const DefaultPageLimit = 100

// ListArticlesOptions are the filters for the article listing. Nil/empty
// optional filters are omitted from the query string entirely rather than
// sent as empty values.
type ListArticlesOptions struct {
	Skip   int
	Limit  int
	Status *int
	Search string
	TagID  *int
}

// query renders the options as URL query parameters.
func (o ListArticlesOptions) query() (url.Values, error) {
	if o.Skip < 0 {
		return nil, fmt.Errorf("skip must be non-negative, got %d", o.Skip)
	}
	limit := o.Limit
	if limit == 0 {
		limit = DefaultPageLimit
	}
	if limit < 0 {
		return nil, fmt.Errorf("limit must be positive, got %d", limit)
	}

	q := url.Values{}
	q.Set("skip", strconv.Itoa(o.Skip))
	q.Set("limit", strconv.Itoa(limit))
	if o.Status != nil {
		q.Set("status", strconv.Itoa(*o.Status))
	}
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	if o.TagID != nil {
		q.Set("tag_id", strconv.Itoa(*o.TagID))
	}
	return q, nil
}

// ListArticles fetches a page of articles matching the given filters.
func (c *Client) ListArticles(ctx context.Context, opts ListArticlesOptions) ([]ArticleDTO, error) {
	q, err := opts.query()
	if err != nil {
		return nil, err
	}

	var dtos []ArticleDTO
	if err := c.getJSON(ctx, "/articles", q, &dtos); err != nil {
		return nil, err
	}
	return dtos, nil
}

// GetArticle fetches a single article by id.
func (c *Client) GetArticle(ctx context.Context, id int) (*ArticleDTO, error) {
	var dto ArticleDTO
	if err := c.getJSON(ctx, "/articles/"+strconv.Itoa(id), nil, &dto); err != nil {
		return nil, err
	}
	return &dto, nil
}

// CreateArticle creates an article from a pure JSON payload. Use
// CreateArticleMultipart when an image attachment is involved.
func (c *Client) CreateArticle(ctx context.Context, payload ArticleCreateDTO) (*ArticleDTO, error) {
	var dto ArticleDTO
	if err := c.sendJSON(ctx, http.MethodPost, "/articles/", payload, &dto); err != nil {
		return nil, err
	}
	return &dto, nil
}

// UpdateArticle updates an article from a pure JSON payload. Nil payload
// fields are left unchanged server-side.
func (c *Client) UpdateArticle(ctx context.Context, id int, payload ArticleUpdateDTO) (*ArticleDTO, error) {
	var dto ArticleDTO
	if err := c.sendJSON(ctx, http.MethodPut, "/articles/"+strconv.Itoa(id), payload, &dto); err != nil {
		return nil, err
	}
	return &dto, nil
}

// DeleteArticle deletes an article by id. Deleting an id that is already
// gone surfaces a KindNotFound error.
func (c *Client) DeleteArticle(ctx context.Context, id int) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/articles/"+strconv.Itoa(id), nil, nil, "")
	if err != nil {
		return err
	}
	return c.doJSON(req, nil)
}

// ArticleImageFilename is the filename reported for article image parts.
const ArticleImageFilename = "article_image.jpg"

// CreateArticleForm is the multipart payload for article creation with an
// optional image attachment.
type CreateArticleForm struct {
	Title    string
	Body     string
	AuthorID int
	StatusID int
	TagIDs   []int
	Image    []byte // raw JPEG bytes, nil when no attachment
}

// CreateArticleMultipart creates an article via a multipart submission.
// Tag ids travel as a JSON array string ("[]" when empty); the image, when
// present, is a single image/jpeg part.
func (c *Client) CreateArticleMultipart(ctx context.Context, form CreateArticleForm) (*ArticleDTO, error) {
	var mf multipartForm
	mf.addField("title", form.Title)
	mf.addField("body", form.Body)
	mf.addInt("author_id", form.AuthorID)
	mf.addInt("status_id", form.StatusID)
	mf.addTagIDs(form.TagIDs)
	if form.Image != nil {
		mf.attach("image", ArticleImageFilename, "image/jpeg", form.Image)
	}

	return c.sendArticleForm(ctx, http.MethodPost, "/articles/", &mf)
}

// UpdateArticleForm is the multipart payload for partial article updates.
// Nil fields are omitted and left unchanged server-side; a non-nil TagIDs
// slice replaces the tag set (empty slice clears it).
type UpdateArticleForm struct {
	Title    *string
	Body     *string
	StatusID *int
	TagIDs   []int
	Image    []byte
}

// UpdateArticleMultipart updates an article via a multipart submission,
// transmitting only the fields the caller set.
func (c *Client) UpdateArticleMultipart(ctx context.Context, id int, form UpdateArticleForm) (*ArticleDTO, error) {
	var mf multipartForm
	if form.Title != nil {
		mf.addField("title", *form.Title)
	}
	if form.Body != nil {
		mf.addField("body", *form.Body)
	}
	if form.StatusID != nil {
		mf.addInt("status_id", *form.StatusID)
	}
	if form.TagIDs != nil {
		mf.addTagIDs(form.TagIDs)
	}
	if form.Image != nil {
		mf.attach("image", ArticleImageFilename, "image/jpeg", form.Image)
	}

	return c.sendArticleForm(ctx, http.MethodPut, "/articles/"+strconv.Itoa(id), &mf)
}

func (c *Client) sendArticleForm(ctx context.Context, method, path string, mf *multipartForm) (*ArticleDTO, error) {
	body, contentType, err := mf.encode()
	if err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, method, path, nil, bytes.NewReader(body), contentType)
	if err != nil {
		return nil, err
	}

	var dto ArticleDTO
	if err := c.doJSON(req, &dto); err != nil {
		return nil, err
	}
	return &dto, nil
}
