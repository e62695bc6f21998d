// Package webhook envía cada cambio como POST JSON a una URL fija.
package webhook

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"pet-health/internal/domain/store"
	"pet-health/internal/platform/httpclient"
)

type Sink struct {
	client  *httpclient.Client
	url     string
	headers map[string]string
}

// New valida la URL. token, si no es vacío, viaja como Bearer.
func New(url, token string, timeout time.Duration, opts ...httpclient.Option) (*Sink, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, errors.New("webhook url required")
	}
	opts = append([]httpclient.Option{httpclient.WithUserAgent("pet-health")}, opts...)
	c, err := httpclient.New(timeout, opts...)
	if err != nil {
		return nil, err
	}

	s := &Sink{client: c, url: url, headers: map[string]string{}}
	if t := strings.TrimSpace(token); t != "" {
		s.headers["Authorization"] = "Bearer " + t
	}
	return s, nil
}

func (s *Sink) Name() string { return "webhook" }

func (s *Sink) Send(ctx context.Context, c store.Change) error {
	return s.client.DoJSON(ctx, http.MethodPost, s.url, s.headers, c, nil)
}
