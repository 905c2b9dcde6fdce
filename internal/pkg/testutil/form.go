package testutil

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/Brownie-08/Portfolio/internal/pkg/httputil"
	"github.com/stretchr/testify/require"
)

// CreateUploadRequestBody builds a multipart body with one file under "file" and extra text fields.
// It returns the body and its content type.
func CreateUploadRequestBody(t *testing.T, fileName string, fileContent []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	body, contentType, err := httputil.EncodeMultipart("file", fileName, fileContent, fields)
	require.NoError(t, err)

	return body, contentType
}

// CreateEmptyForm creates an empty multipart form for testing
func CreateEmptyForm() *multipart.Form {
	return &multipart.Form{
		File:  make(map[string][]*multipart.FileHeader),
		Value: make(map[string][]string),
	}
}
