package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

var ErrUnexpectedStatus = errors.New("unexpected status")

const DefaultHubURL = "https://huggingface.co"

// HubAPI downloads files from a Hugging Face style model repository.
type HubAPI struct {
	baseURL  string
	revision string
	token    string
	client   *http.Client
}

func NewHubAPI(baseURL, revision, token string) *HubAPI {
	if baseURL == "" {
		baseURL = DefaultHubURL
	}
	if revision == "" {
		revision = "main"
	}
	return &HubAPI{
		baseURL:  strings.TrimRight(baseURL, "/"),
		revision: revision,
		token:    token,
		client:   http.DefaultClient,
	}
}

func (h *HubAPI) FileURL(repoID, filename string) string {
	return fmt.Sprintf("%s/%s/resolve/%s/%s",
		h.baseURL,
		escapeSegments(repoID),
		url.PathEscape(h.revision),
		escapeSegments(filename),
	)
}

// Download streams filename from repoID. The caller closes the body.
func (h *HubAPI) Download(ctx context.Context, repoID, filename string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.FileURL(repoID, filename), nil)
	if err != nil {
		return nil, err
	}
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s %s", ErrUnexpectedStatus, filename, resp.Status)
	}

	return resp.Body, nil
}

func escapeSegments(p string) string {
	parts := strings.Split(p, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}
