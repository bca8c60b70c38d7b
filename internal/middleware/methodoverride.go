package middleware

import (
	"net/http"
	"strings"
)

// MethodOverride lets plain HTML forms issue PUT/PATCH/DELETE by POSTing
// a _method field. Only urlencoded POSTs are inspected; multipart bodies
// pass through untouched.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost &&
			strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
			switch override := r.PostFormValue("_method"); override {
			case http.MethodPut, http.MethodPatch, http.MethodDelete:
				r.Method = override
			}
		}
		next.ServeHTTP(w, r)
	})
}
