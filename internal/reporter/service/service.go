package service

import "errors"

var (
	// ErrPriceUnavailable means every price attempt failed; the report cannot continue.
	ErrPriceUnavailable = errors.New("price data unavailable")
	// ErrNoNews means the search failed or returned nothing.
	ErrNoNews = errors.New("no news available")
)
