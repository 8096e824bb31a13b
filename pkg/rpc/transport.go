package rpc

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// httpTransport performs one synchronous authenticated POST per call
// and hands the raw response body back to the codec. It owns nothing
// beyond the injected http.Client: no retries, no caching, no
// connection management of its own. Cancellation and timeouts are
// whatever the context and the http.Client impose.
type httpTransport struct {
	endpoint *url.URL
	username string
	password string
	httpc    *http.Client
}

// post sends body to the daemon and returns the response body bytes
// verbatim. The HTTP status code is deliberately not inspected: the
// envelope codec alone classifies the outcome, so a 500 carrying a
// well-formed success envelope is still a success.
func (t *httpTransport) post(ctx context.Context, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingRequest, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.ContentLength = int64(len(body))
	req.SetBasicAuth(t.username, t.password)

	resp, err := t.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSendingRequest, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingResponse, err)
	}

	return raw, nil
}
