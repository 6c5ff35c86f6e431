package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrOpen   = errors.New("store open failed")
	ErrAppend = errors.New("store append failed")
	ErrScan   = errors.New("store scan failed")
	ErrClosed = errors.New("store is closed")
)
