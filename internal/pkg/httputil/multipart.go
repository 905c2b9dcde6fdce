// Package httputil holds small HTTP helpers shared by the REST API and the CLI.
package httputil

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/url"
	"strings"
)

// EncodeMultipart writes one file part named field followed by plain form fields
func EncodeMultipart(field, fileName string, content []byte, fields map[string]string) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			return nil, "", fmt.Errorf("failed to write form field %s: %w", k, err)
		}
	}

	part, err := writer.CreateFormFile(field, fileName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return nil, "", fmt.Errorf("failed to write file content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart writer: %w", err)
	}

	return &buf, writer.FormDataContentType(), nil
}

// SafeNext returns next when it is a local absolute path, otherwise fallback.
// Scheme relative and absolute URLs are rejected so logins cannot redirect off site.
func SafeNext(next, fallback string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return fallback
	}
	u, err := url.Parse(next)
	if err != nil || u.IsAbs() || u.Host != "" {
		return fallback
	}
	return next
}

// AttachmentDisposition builds a Content-Disposition header value
func AttachmentDisposition(fileName string, inline bool) string {
	disposition := "attachment"
	if inline {
		disposition = "inline"
	}
	if fileName == "" {
		return disposition
	}
	return fmt.Sprintf("%s; filename=%q", disposition, strings.ReplaceAll(fileName, "\"", ""))
}
