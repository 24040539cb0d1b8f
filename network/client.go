// Package network provides the HTTP client shared by every request to the media server.
package network

import (
	"net/http"
	"time"
)

// Client is the shared HTTP client. Its timeout is replaced by Configure.
var Client = &http.Client{
	Timeout:   time.Minute,
	Transport: newTransport(),
}

// Configure sets the client timeout; non-positive values keep the current one.
func Configure(timeout time.Duration) {
	if timeout > 0 {
		Client.Timeout = timeout
	}
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 32
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	return t
}
