package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dapittriandi/simdor-service/pkg/filestorage"
)

type stubStorage struct {
	deleteErr error
	deleted   []string
}

func (s *stubStorage) Store(context.Context, io.Reader, string, string) (*filestorage.StoredFile, error) {
	return nil, fmt.Errorf("not implemented")
}

func (s *stubStorage) Delete(_ context.Context, publicID string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, publicID)
	return nil
}

func performDeleteFile(t *testing.T, storage filestorage.FileStorage, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/delete-file", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	ctrl := NewUploadController(storage, zap.NewNop())
	require.NoError(t, ctrl.DeleteFile(c))
	return rec
}

func TestDeleteFileSuccess(t *testing.T) {
	storage := &stubStorage{}
	rec := performDeleteFile(t, storage, `{"publicId":"simdor/ord-1/doc"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "File successfully deleted", body["result"])
	assert.Equal(t, []string{"simdor/ord-1/doc"}, storage.deleted)
}

func TestDeleteFileMissingPublicID(t *testing.T) {
	rec := performDeleteFile(t, &stubStorage{}, `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "publicId is required", body["error"])
}

func TestDeleteFileStorageFailure(t *testing.T) {
	storage := &stubStorage{deleteErr: fmt.Errorf("media host unreachable")}
	rec := performDeleteFile(t, storage, `{"publicId":"simdor/ord-1/doc"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
	assert.Contains(t, body["details"], "unreachable")
}
