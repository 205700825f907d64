package api

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"strings"
)

// ListAuthors fetches the read-only user directory.
func (c *Client) ListAuthors(ctx context.Context) ([]AuthorDTO, error) {
	var dtos []AuthorDTO
	if err := c.getJSON(ctx, "/users/", nil, &dtos); err != nil {
		return nil, err
	}
	return dtos, nil
}

// GetCurrentUser fetches the authenticated user's profile.
func (c *Client) GetCurrentUser(ctx context.Context) (*UserDTO, error) {
	var dto UserDTO
	if err := c.getJSON(ctx, "/users/me", nil, &dto); err != nil {
		return nil, err
	}
	return &dto, nil
}

// ProfilePhotoFilename is the filename reported for profile photo parts.
const ProfilePhotoFilename = "profile_photo.jpg"

// UpdateProfileForm is the multipart payload for profile updates. All
// fields are optional; nil fields are omitted and left unchanged
// server-side.
type UpdateProfileForm struct {
	FirstName  *string
	LastName   *string
	MiddleName *string
	Email      *string
	Photo      []byte // raw JPEG bytes, nil when no attachment
}

// UpdateProfile updates the authenticated user's profile via a multipart
// submission, transmitting only the fields the caller set.
func (c *Client) UpdateProfile(ctx context.Context, form UpdateProfileForm) (*UserDTO, error) {
	var mf multipartForm
	if form.FirstName != nil {
		mf.addField("first_name", *form.FirstName)
	}
	if form.LastName != nil {
		mf.addField("last_name", *form.LastName)
	}
	if form.MiddleName != nil {
		mf.addField("middle_name", *form.MiddleName)
	}
	if form.Email != nil {
		mf.addField("email", *form.Email)
	}
	if form.Photo != nil {
		mf.attach("photo", ProfilePhotoFilename, "image/jpeg", form.Photo)
	}

	body, contentType, err := mf.encode()
	if err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPut, "/users/me", nil, bytes.NewReader(body), contentType)
	if err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := c.doJSON(req, &dto); err != nil {
		return nil, err
	}
	return &dto, nil
}

// ChangePassword replaces the authenticated user's password. The server
// expects a form-encoded body with the old and new values.
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	form := url.Values{}
	form.Set("old", oldPassword)
	form.Set("new", newPassword)

	req, err := c.newRequest(ctx, http.MethodPut, "/users/me/password", nil,
		strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
	if err != nil {
		return err
	}
	return c.doJSON(req, nil)
}

// ExportProfilePDF fetches the authenticated user's profile rendered as a
// PDF and returns the raw bytes.
func (c *Client) ExportProfilePDF(ctx context.Context) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/users/me/pdf", nil, nil, "")
	if err != nil {
		return nil, err
	}
	return c.do(req)
}
