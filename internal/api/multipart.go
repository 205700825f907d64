package api

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strconv"
	"strings"
)

// multipartForm accumulates text fields and at most one binary attachment
// for a multipart/form-data request. Field order is preserved.
type multipartForm struct {
	fields []formField
	file   *filePart
}

type formField struct {
	name  string
	value string
}

type filePart struct {
	field       string
	filename    string
	contentType string
	data        []byte
}

func (f *multipartForm) addField(name, value string) {
	f.fields = append(f.fields, formField{name: name, value: value})
}

func (f *multipartForm) addInt(name string, value int) {
	f.addField(name, strconv.Itoa(value))
}

// addTagIDs encodes tag ids as a JSON array string, "[]" when empty —
// the server expects the list as a single text field.
func (f *multipartForm) addTagIDs(ids []int) {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.Itoa(id))
	}
	f.addField("tag_ids", "["+strings.Join(parts, ",")+"]")
}

func (f *multipartForm) attach(field, filename, contentType string, data []byte) {
	f.file = &filePart{field: field, filename: filename, contentType: contentType, data: data}
}

// encode renders the form and returns the body plus the Content-Type
// header value carrying the boundary.
func (f *multipartForm) encode() ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, field := range f.fields {
		if err := w.WriteField(field.name, field.value); err != nil {
			return nil, "", fmt.Errorf("writing form field %s: %w", field.name, err)
		}
	}

	if f.file != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.file.field, f.file.filename))
		h.Set("Content-Type", f.file.contentType)

		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("creating file part %s: %w", f.file.field, err)
		}
		if _, err := part.Write(f.file.data); err != nil {
			return nil, "", fmt.Errorf("writing file part %s: %w", f.file.field, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("finalizing multipart body: %w", err)
	}

	return buf.Bytes(), w.FormDataContentType(), nil
}
