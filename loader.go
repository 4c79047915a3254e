// SPDX-License-Identifier: EPL-2.0

package audmix

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Loader resolves a source reference to its encoded bytes.
type Loader interface {
	Open(ctx context.Context, ref string) (io.ReadCloser, error)
}

// FileLoader reads refs as slash separated paths below Root. An empty Root
// means the working directory.
type FileLoader struct {
	Root string
}

func (l FileLoader) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := filepath.FromSlash(ref)
	if l.Root != "" && !filepath.IsAbs(name) {
		name = filepath.Join(l.Root, name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", ref, err)
	}
	return f, nil
}

// HTTPLoader fetches refs with GET. Relative refs are resolved against
// BaseURL; absolute URLs are used as they are.
type HTTPLoader struct {
	Client  *http.Client
	BaseURL string
}

func (l HTTPLoader) resolve(ref string) (string, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	if u.IsAbs() || l.BaseURL == "" {
		return u.String(), nil
	}

	base, err := url.Parse(strings.TrimSuffix(l.BaseURL, "/") + "/")
	if err != nil {
		return "", err
	}
	return base.ResolveReference(u).String(), nil
}

func (l HTTPLoader) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	target, err := l.resolve(ref)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", ref, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", ref, err)
	}

	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", ref, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		if resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("fetch %s: %s: %w", ref, resp.Status, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("fetch %s: unexpected status %s", ref, resp.Status)
	}

	return resp.Body, nil
}
