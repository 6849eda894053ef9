package httpkit

import (
	"net/http"

	phttp "wordlebot/internal/platform/net/http"
	"wordlebot/internal/platform/net/http/bind"
)

// Get mounts a body-less handler under GET
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, phttp.NoBodyHandler(h))
}

// Post mounts a body-less handler under POST
func Post(r Router, path string, h func(*http.Request) (any, error)) {
	r.Post(path, phttp.NoBodyHandler(h))
}

// PostJSON mounts a handler whose body binds and validates into T
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, phttp.JSONHandler(h))
}

// Param validates a path parameter against a validator tag and returns it
func Param(r *http.Request, name, tag string) (string, error) {
	v := r.PathValue(name)
	if v == "" {
		v = chiParam(r, name)
	}
	if err := bind.Var(name, v, tag); err != nil {
		return "", err
	}
	return v, nil
}
