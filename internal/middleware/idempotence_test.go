package middleware

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldSkipIdempotence(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		skip   bool
	}{
		{name: "login", method: http.MethodPost, path: "/api/v1/auth/login", skip: true},
		{name: "login trailing slash", method: http.MethodPost, path: "/api/v1/auth/login/", skip: true},
		{name: "generate repeats change nothing", method: http.MethodPost, path: "/api/v1/alternatives/generate", skip: true},
		{name: "generate mixed case", method: http.MethodPost, path: "/API/v1/Alternatives/Generate", skip: true},
		{name: "entry create guarded", method: http.MethodPost, path: "/api/v1/entries", skip: false},
		{name: "review guarded", method: http.MethodPost, path: "/api/v1/review", skip: false},
		{name: "delete not exempt", method: http.MethodDelete, path: "/api/v1/alternatives/generate", skip: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.skip, shouldSkipIdempotence(tt.method, tt.path))
		})
	}
}
