package query

import "net/http"

func Str(r *http.Request, key string) (val string, present bool) {
	if !r.URL.Query().Has(key) {
		return "", false
	}
	return r.URL.Query().Get(key), true
}

func StrAny(r *http.Request, keys ...string) (val string, present bool) {
	for _, k := range keys {
		if v, ok := Str(r, k); ok {
			return v, true
		}
	}
	return "", false
}
