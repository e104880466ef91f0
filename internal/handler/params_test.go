package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizedIntParam(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  int64
	}{
		{name: "plain integer", query: "variant_id=5", want: 5},
		{name: "absent parameter", query: "", want: 0},
		{name: "empty value", query: "variant_id=", want: 0},
		{name: "junk around digits is stripped", query: "variant_id=%20123abc", want: 123},
		{name: "pure junk", query: "variant_id=abc", want: 0},
		{name: "negative", query: "variant_id=-7", want: -7},
		{name: "plus sign", query: "variant_id=%2B7", want: 7},
		{name: "other parameters ignored", query: "color=blue&variant_id=9", want: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/product/1?"+tt.query, nil)
			assert.Equal(t, tt.want, SanitizedIntParam(r, "variant_id"))
		})
	}
}
