package middleware

import (
	"net/http"
	"strings"

	"github.com/elnormous/contenttype"

	"github.com/sambbaron/posts/internal/utils"
)

const jsonMIME = "application/json"

var jsonMediaType = contenttype.NewMediaType(jsonMIME)

// Negotiate rejects requests that cannot accept a JSON reply (406) and
// bodies that are not declared as JSON (415). Accept is checked first.
func Negotiate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		if !AcceptsJSON(r) {
			utils.WriteError(w, r, utils.NewError(utils.NotAcceptable,
				"Request must accept %s data", jsonMIME))
			return
		}

		if carriesBody(r.Method) && !IsJSON(r) {
			utils.WriteError(w, r, utils.NewError(utils.UnsupportedMediaType,
				"Request must contain %s data", jsonMIME))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func carriesBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	}
	return false
}

// AcceptsJSON reports whether the Accept header admits application/json.
// The most specific matching range decides, so "application/json;q=0, */*"
// refuses JSON. A request without an Accept header admits nothing.
func AcceptsJSON(r *http.Request) bool {
	if strings.TrimSpace(strings.Join(r.Header.Values("Accept"), "")) == "" {
		return false
	}
	_, _, err := contenttype.GetAcceptableMediaType(r, []contenttype.MediaType{jsonMediaType})
	return err == nil
}

// IsJSON reports whether the Content-Type header names application/json,
// ignoring parameters such as charset.
func IsJSON(r *http.Request) bool {
	if r.Header.Get("Content-Type") == "" {
		return false
	}
	mt, err := contenttype.GetMediaType(r)
	return err == nil && mt.Type == jsonMediaType.Type && mt.Subtype == jsonMediaType.Subtype
}
