package client

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

// ObjectStore - uploads binary blobs to the external object storage and hands
// back a publicly resolvable URL. Uploading to an existing key overwrites it.
type ObjectStore interface {
	Upload(ctx context.Context, bucket string, key string, contentType string, data []byte) (string, error)
}

type ObjectStoreClient struct {
	baseURL    string
	httpClient HTTPClient
}

func NewObjectStore(baseURL string, client HTTPClient) *ObjectStoreClient {
	return &ObjectStoreClient{
		baseURL:    baseURL,
		httpClient: client,
	}
}

func (c *ObjectStoreClient) Upload(ctx context.Context, bucket string, key string, contentType string, data []byte) (string, error) {
	url := c.baseURL + "/" + bucket + "/" + key
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(data))
	if err != nil {
		return "", errors.Wrap(err, "build upload request")
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "upload object")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", errors.Errorf("object store returned %d: %s", resp.StatusCode, string(body))
	}

	return url, nil
}
