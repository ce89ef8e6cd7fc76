package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/validvar/dev-tooling/fileutil"
)

// DownloadFile streams the body of a GET request to the destination path
// in chunkSize-byte chunks, creating parent directories as needed. It is
// deliberately best-effort: every failure (network, status, filesystem)
// is reported as false and never propagates. A chunkSize <= 0 selects the
// 8 KiB default.
func (c *Client) DownloadFile(ctx context.Context, url, dest string, chunkSize int) bool {
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}

	httpReq, err := c.buildRequest(ctx, Request{Method: http.MethodGet, Path: url})
	if err != nil {
		return false
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false
	}

	if err := fileutil.EnsureDir(filepath.Dir(dest)); err != nil {
		return false
	}
	f, err := os.Create(dest)
	if err != nil {
		return false
	}

	buf := make([]byte, chunkSize)
	_, copyErr := io.CopyBuffer(f, resp.Body, buf)
	closeErr := f.Close()
	return copyErr == nil && closeErr == nil
}

// UploadFile issues a multipart POST with the file at filePath bound to
// fieldName, plus any additional form fields. The file handle is released
// on every exit path. A missing or unreadable file propagates as an error.
func (c *Client) UploadFile(ctx context.Context, path, filePath, fieldName string, fields map[string]string) (*Response, error) {
	if fieldName == "" {
		fieldName = "file"
	}

	f, err := os.Open(filePath)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("open upload file: %v", err))
	}
	defer func() { _ = f.Close() }()

	body := &MultipartBody{
		Fields: fields,
		Files: []FileField{{
			FieldName: fieldName,
			FileName:  filepath.Base(filePath),
			Reader:    f,
		}},
	}

	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: body})
}
