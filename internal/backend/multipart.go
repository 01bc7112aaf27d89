package backend

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
)

// form accumulates text fields and file parts for a multipart/form-data
// request body. Empty values are skipped so optional fields stay off the
// wire.
type form struct {
	fields []formField
	files  []filePart
}

type formField struct {
	name  string
	value string
}

type filePart struct {
	name   string
	avatar *Avatar
}

func (f *form) Set(name, value string) {
	if value == "" {
		return
	}
	f.fields = append(f.fields, formField{name: name, value: value})
}

func (f *form) SetBool(name string, v bool) {
	if v {
		f.Set(name, "1")
		return
	}
	f.Set(name, "0")
}

func (f *form) File(name string, a *Avatar) {
	if a == nil || a.Reader == nil {
		return
	}
	f.files = append(f.files, filePart{name: name, avatar: a})
}

// encode writes the accumulated parts and returns the body together with its
// Content-Type (which carries the boundary).
func (f *form) encode() (string, *bytes.Buffer, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, field := range f.fields {
		if err := w.WriteField(field.name, field.value); err != nil {
			return "", nil, fmt.Errorf("write field %q: %w", field.name, err)
		}
	}

	for _, file := range f.files {
		part, err := w.CreatePart(fileHeader(file.name, file.avatar))
		if err != nil {
			return "", nil, fmt.Errorf("create file part %q: %w", file.name, err)
		}
		if _, err := io.Copy(part, file.avatar.Reader); err != nil {
			return "", nil, fmt.Errorf("copy file part %q: %w", file.name, err)
		}
	}

	if err := w.Close(); err != nil {
		return "", nil, fmt.Errorf("close multipart writer: %w", err)
	}
	return w.FormDataContentType(), &buf, nil
}

func fileHeader(field string, a *Avatar) textproto.MIMEHeader {
	filename := a.Filename
	if filename == "" {
		filename = "avatar"
	}
	contentType := a.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		escapeQuotes(field), escapeQuotes(filename)))
	h.Set("Content-Type", contentType)
	return h
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
