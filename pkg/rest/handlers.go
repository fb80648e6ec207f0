package rest

import (
	"encoding/base64"
	"net/http"
)

// Handler decorates outgoing requests, typically with credentials
type Handler interface {
	PrepareRequest(req *http.Request)
}

// HandlerFunc adapts a function to the Handler interface
type HandlerFunc func(req *http.Request)

// PrepareRequest calls f(req)
func (f HandlerFunc) PrepareRequest(req *http.Request) {
	f(req)
}

// BearerToken authenticates with an OAuth/AAD bearer token
func BearerToken(token string) Handler {
	return HandlerFunc(func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	})
}

// Basic authenticates with a username and password
func Basic(username, password string) Handler {
	return HandlerFunc(func(req *http.Request) {
		req.SetBasicAuth(username, password)
	})
}

// PersonalAccessToken authenticates with a PAT. The service ignores the user part.
func PersonalAccessToken(token string) Handler {
	encoded := base64.StdEncoding.EncodeToString([]byte("PAT:" + token))
	return HandlerFunc(func(req *http.Request) {
		req.Header.Set("Authorization", "Basic "+encoded)
	})
}
