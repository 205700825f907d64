package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userJSON = `{"UserId": 2, "FirstName": "Alice", "LastName": "Liddell",
	"MiddleName": null, "BirthDate": "1999-04-01", "GenderId": 2,
	"Email": "a@example.com", "Login": "alice", "Photo": null,
	"CreatedAt": "2026-01-01T00:00:00"}`

func TestUpdateProfile_PartialFields(t *testing.T) {
	var form map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/users/me", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		form = r.MultipartForm.Value
		w.Write([]byte(userJSON))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil, testLogger())

	email := "new@example.com"
	_, err := client.UpdateProfile(context.Background(), UpdateProfileForm{Email: &email})
	require.NoError(t, err)

	assert.Equal(t, []string{"new@example.com"}, form["email"])
	assert.NotContains(t, form, "first_name")
	assert.NotContains(t, form, "last_name")
	assert.NotContains(t, form, "middle_name")
}

func TestUpdateProfile_PhotoPart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))

		file, header, err := r.FormFile("photo")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, ProfilePhotoFilename, header.Filename)
		assert.Equal(t, "image/jpeg", header.Header.Get("Content-Type"))
		data, _ := io.ReadAll(file)
		assert.Equal(t, []byte{0xFF, 0xD8}, data)

		w.Write([]byte(userJSON))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil, testLogger())

	first := "Alice"
	_, err := client.UpdateProfile(context.Background(), UpdateProfileForm{
		FirstName: &first,
		Photo:     []byte{0xFF, 0xD8},
	})
	require.NoError(t, err)
}

func TestChangePassword_FormEncoding(t *testing.T) {
	var contentType, body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/users/me/password", r.URL.Path)
		contentType = r.Header.Get("Content-Type")
		data, _ := io.ReadAll(r.Body)
		body = string(data)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil, testLogger())

	err := client.ChangePassword(context.Background(), "old&pass", "new pass")
	require.NoError(t, err)

	assert.Equal(t, "application/x-www-form-urlencoded", contentType)
	assert.Equal(t, "new=new+pass&old=old%26pass", body)
}

func TestChangePassword_WrongOldPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"Old password is incorrect"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil, testLogger())

	err := client.ChangePassword(context.Background(), "wrong", "next")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindValidation))
	assert.Contains(t, err.Error(), "Old password is incorrect")
}

func TestExportProfilePDF_RawBytes(t *testing.T) {
	pdf := []byte("%PDF-1.7 fake")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/me/pdf", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		w.Write(pdf)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil, testLogger())

	data, err := client.ExportProfilePDF(context.Background())
	require.NoError(t, err)
	assert.Equal(t, pdf, data)
}

func TestGetCurrentUser_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil, testLogger())

	_, err := client.GetCurrentUser(context.Background())
	require.Error(t, err)
	assert.True(t, IsKind(err, KindUnauthorized))
}

func TestListAuthors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/", r.URL.Path)
		w.Write([]byte(`[{"UserId": 1, "FirstName": "A", "LastName": "B",
			"BirthDate": "2000-01-01", "GenderId": 1, "Email": "x@example.com",
			"Login": "ab", "CreatedAt": ""}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil, testLogger())

	authors, err := client.ListAuthors(context.Background())
	require.NoError(t, err)
	require.Len(t, authors, 1)
	assert.Equal(t, "ab", authors[0].Login)
}
