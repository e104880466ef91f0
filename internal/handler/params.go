package handler

import (
	"net/http"
	"strconv"
	"strings"
)

// SanitizedIntParam extracts an integer query parameter the way the
// storefront's forms expect: every character except digits and a sign is
// stripped before parsing, so "variant_id=%20123abc" still resolves to 123.
// An absent, empty, or unparseable value yields 0, which downstream code
// treats as "no selection".
func SanitizedIntParam(r *http.Request, name string) int64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}

	var sb strings.Builder
	for i, c := range raw {
		switch {
		case c >= '0' && c <= '9':
			sb.WriteRune(c)
		case (c == '-' || c == '+') && i == 0:
			sb.WriteRune(c)
		}
	}

	n, err := strconv.ParseInt(sb.String(), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
