package httputil

import (
	"github.com/gin-gonic/gin"
)

// RequestHost returns the host the request was made against, honoring
// the x-forwarded-* headers a reverse proxy sets.
//
// The scheme defaults to http and only switches to https
// if the x-forwarded-proto header is set to "https".
func RequestHost(c *gin.Context) string {
	scheme := "http"
	if c.Request.Header.Get("x-forwarded-proto") == "https" {
		scheme = "https"
	}

	// We can reasonably expect a reverse proxy to set x-forwarded-host
	// as it is a de-facto standard.
	//
	// If it is set, we use it to construct the links and use the
	// x-forwarded-prefix header as prefix. If that is unset,
	// fall back to "/api"
	//
	// If no proxy is detected, don’t do anything.
	host := c.Request.Host
	var forwardedPrefix string

	xForwardedHost := c.Request.Header.Get("x-forwarded-host")
	if xForwardedHost != "" {
		host = xForwardedHost

		forwardedPrefix = c.Request.Header.Get("x-forwarded-prefix")

		if forwardedPrefix == "" {
			forwardedPrefix = "/api"
		}
	}

	return scheme + "://" + host + forwardedPrefix
}

// RequestPathV1 returns the URL with the prefix for API v1.
func RequestPathV1(c *gin.Context) string {
	return RequestHost(c) + "/v1"
}
