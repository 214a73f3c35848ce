package remote

import "time"

const (
	providerName       = "remote"
	defaultHTTPTimeout = 10 * time.Second
	maxErrorBody       = 512
)
