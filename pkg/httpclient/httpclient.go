package httpclient

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/pokedex-nft/common/errs"
	"github.com/gaze-network/pokedex-nft/pkg/logger"
	"github.com/valyala/fasthttp"
)

type Config struct {
	// Enable debug mode, every request is logged.
	Debug bool

	// Default headers
	Headers map[string]string

	// Timeout bounds a single request. Zero means only the context deadline applies.
	Timeout time.Duration
}

type Client struct {
	baseURL *url.URL
	Config
}

func New(baseURL string, config ...Config) (*Client, error) {
	parsedBaseURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "can't parse base url")
	}
	if parsedBaseURL.Scheme == "" || parsedBaseURL.Host == "" {
		return nil, errors.Wrapf(errs.InvalidArgument, "base url %q must be absolute", baseURL)
	}
	var cf Config
	if len(config) > 0 {
		cf = config[0]
	}
	if len(cf.Headers) == 0 {
		cf.Headers = make(map[string]string)
	}
	return &Client{
		baseURL: parsedBaseURL,
		Config:  cf,
	}, nil
}

type RequestOptions struct {
	path   string
	method string
	Body   []byte
	Query  url.Values
	Header map[string]string
}

type HttpResponse struct {
	URL string
	fasthttp.Response
}

// IsSuccess reports a 2xx status.
func (r *HttpResponse) IsSuccess() bool {
	code := r.StatusCode()
	return code >= 200 && code < 300
}

func (r *HttpResponse) UnmarshalBody(out any) error {
	body, err := r.BodyUncompressed()
	if err != nil {
		return errors.Wrapf(err, "can't uncompress body from %v", r.URL)
	}
	contentType := strings.ToLower(string(r.Header.ContentType()))
	switch {
	case strings.HasPrefix(contentType, "application/json"):
		if err := json.Unmarshal(body, out); err != nil {
			return errors.Wrapf(err, "can't unmarshal json body from %s", r.URL)
		}
		return nil
	case strings.HasPrefix(contentType, "text/plain"):
		return errors.Errorf("can't unmarshal plain text %q", string(body))
	default:
		return errors.Errorf("unsupported content type: %s, contents: %v", contentType, string(body))
	}
}

// resolveURL joins p to the base url. Absolute urls (e.g. links returned by the API itself) are used as is.
func (h *Client) resolveURL(p string, query url.Values) (string, error) {
	var target *url.URL
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		u, err := url.Parse(p)
		if err != nil {
			return "", errors.Wrapf(err, "can't parse url %q", p)
		}
		target = u
	} else {
		target = h.BaseURL()
		target.Path = path.Join(target.Path, p)
	}
	if len(query) > 0 {
		merged := target.Query()
		for k, values := range query {
			for _, v := range values {
				merged.Add(k, v)
			}
		}
		target.RawQuery = merged.Encode()
	}
	return target.String(), nil
}

// deadline picks the earliest of the context deadline and the configured timeout.
func (h *Client) deadline(ctx context.Context) (time.Time, bool) {
	deadline, ok := ctx.Deadline()
	if h.Timeout > 0 {
		if timeout := time.Now().Add(h.Timeout); !ok || timeout.Before(deadline) {
			return timeout, true
		}
	}
	return deadline, ok
}

func (h *Client) request(ctx context.Context, reqOptions RequestOptions) (*HttpResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "context done before request")
	}

	url, err := h.resolveURL(reqOptions.path, reqOptions.Query)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	start := time.Now()
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer func() {
		if h.Debug {
			logger.DebugContext(ctx, "Finished make request",
				slog.String("package", "httpclient"),
				slog.String("method", reqOptions.method),
				slog.String("url", url),
				slog.Duration("duration", time.Since(start)),
				slog.Int("status_code", resp.StatusCode()),
				slog.Int("resp_content_length", len(resp.Body())),
			)
		}
		fasthttp.ReleaseResponse(resp)
		fasthttp.ReleaseRequest(req)
	}()

	req.Header.SetMethod(reqOptions.method)
	for k, v := range h.Headers {
		req.Header.Set(k, v)
	}
	for k, v := range reqOptions.Header {
		req.Header.Set(k, v)
	}
	req.SetRequestURI(url)
	if reqOptions.Body != nil {
		req.Header.SetContentType("application/json")
		req.SetBody(reqOptions.Body)
	}

	if deadline, ok := h.deadline(ctx); ok {
		err = fasthttp.DoDeadline(req, resp, deadline)
	} else {
		err = fasthttp.Do(req, resp)
	}
	if err != nil {
		if errors.Is(err, fasthttp.ErrTimeout) {
			return nil, errors.Mark(errors.Wrapf(err, "url: %s", url), errs.Timeout)
		}
		return nil, errors.Mark(errors.Wrapf(err, "url: %s", url), errs.Network)
	}

	httpResponse := HttpResponse{
		URL: url,
	}
	resp.CopyTo(&httpResponse.Response)

	return &httpResponse, nil
}

// BaseURL returns the cloned base URL of the client.
func (h *Client) BaseURL() *url.URL {
	u := *h.baseURL
	return &u
}

func (h *Client) Do(ctx context.Context, method, path string, reqOptions RequestOptions) (*HttpResponse, error) {
	reqOptions.path = path
	reqOptions.method = method
	return h.request(ctx, reqOptions)
}

func (h *Client) Get(ctx context.Context, path string, reqOptions RequestOptions) (*HttpResponse, error) {
	return h.Do(ctx, fasthttp.MethodGet, path, reqOptions)
}

func (h *Client) Post(ctx context.Context, path string, reqOptions RequestOptions) (*HttpResponse, error) {
	return h.Do(ctx, fasthttp.MethodPost, path, reqOptions)
}
