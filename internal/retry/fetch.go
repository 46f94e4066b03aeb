package retry

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// FetchFunc performs one HTTP request with retries. prepare is called on a
// fresh request before every attempt, so request bodies are rebuilt each
// time.
type FetchFunc func(ctx context.Context, method, url string, prepare func(*resty.Request)) (*resty.Response, error)

// RetryableFetch wraps client so that transport failures and non-2xx
// responses become [*NetworkError] values and are retried per
// [IsRetryable]. opts override the executor defaults for every request made
// through the returned function.
//
// On failure the response of the last attempt, if any, is returned together
// with the error so callers can read the status and error body.
func (e *Executor) RetryableFetch(client *resty.Client, opts ...Option) FetchFunc {
	return func(ctx context.Context, method, url string, prepare func(*resty.Request)) (*resty.Response, error) {
		var last *resty.Response
		resp, err := Do(ctx, e, method+" "+url, func(ctx context.Context) (*resty.Response, error) {
			last = nil
			req := client.R().SetContext(ctx)
			if prepare != nil {
				prepare(req)
			}

			resp, err := req.Execute(method, url)
			last = resp
			if err != nil {
				if ne := Classify(err); ne != nil {
					return nil, ne
				}
				return nil, &NetworkError{Code: CodeNetworkError, Err: err}
			}

			if !resp.IsSuccess() {
				return resp, &NetworkError{
					Status:  resp.StatusCode(),
					Message: fmt.Sprintf("HTTP %d: %s", resp.StatusCode(), http.StatusText(resp.StatusCode())),
				}
			}

			return resp, nil
		}, opts...)
		if err != nil {
			return last, err
		}
		return resp, nil
	}
}
