package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so callers get the full resty API.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent resty client with the given per-request
// timeout and a JSON Accept header. A zero timeout leaves resty's default.
//
//	client := utils.NewHTTPClient(10 * time.Second)
//	resp, err := client.R().Get("https://api.example.com/api/health")
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	c := resty.New().SetHeader("Accept", "application/json")
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &HTTPClient{Client: c}
}
