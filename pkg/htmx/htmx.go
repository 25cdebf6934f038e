package htmx

import "net/http"

// IsHxRequest reports whether the request was issued by htmx.
func IsHxRequest(r *http.Request) bool {
	return r.Header.Get("Hx-Request") == "true"
}

// IsBoosted reports whether the request came from an hx-boost element.
func IsBoosted(r *http.Request) bool {
	return r.Header.Get("Hx-Boosted") == "true"
}

// Redirect instructs htmx to perform a client-side redirect.
func Redirect(w http.ResponseWriter, path string) {
	w.Header().Set("Hx-Redirect", path)
}

// Retarget overrides the target element for the response.
func Retarget(w http.ResponseWriter, target string) {
	w.Header().Set("Hx-Retarget", target)
}
