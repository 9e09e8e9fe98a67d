package services

import (
	"net/http"
	"time"
)

const externalHTTPTimeout = 30 * time.Second

// ExternalHTTPClient is shared by all provider clients. Timeouts beyond
// this are left to the providers' own limits.
var ExternalHTTPClient = &http.Client{
	Timeout: externalHTTPTimeout,
}
