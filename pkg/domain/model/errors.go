package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrMalformedResponse = goerr.New("malformed search response")
)
