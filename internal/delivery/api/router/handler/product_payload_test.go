package handler

import (
	"encoding/json"
	"testing"

	"peterparts/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{raw: `49.99`, want: "49.99", wantOK: true},
		{raw: `"49.99"`, want: "49.99", wantOK: true},
		{raw: `" 12 "`, want: "12", wantOK: true},
		{raw: `1e2`, want: "100", wantOK: true},
		{raw: `0`, want: "0", wantOK: true},
		{raw: `""`},
		{raw: `"abc"`},
		{raw: `-1`},
		{raw: `null`},
		{raw: `true`},
		{raw: `[1]`},
		{raw: ``},
	}

	for _, tt := range tests {
		price, ok := parsePrice(json.RawMessage(tt.raw))
		assert.Equal(t, tt.wantOK, ok, tt.raw)
		if tt.wantOK {
			assert.Equal(t, tt.want, price.String(), tt.raw)
		}
	}
}

func TestParseStock(t *testing.T) {
	tests := []struct {
		raw    string
		want   int
		wantOK bool
	}{
		{raw: `5`, want: 5, wantOK: true},
		{raw: `"7"`, want: 7, wantOK: true},
		{raw: `12.9`, want: 12, wantOK: true},
		{raw: `"3.5"`, want: 3, wantOK: true},
		{raw: `-2`, want: -2, wantOK: true},
		{raw: `"12abc"`, want: 12, wantOK: true},
		{raw: `" -4 boxes"`, want: -4, wantOK: true},
		{raw: `"+9"`, want: 9, wantOK: true},
		{raw: `"1e3"`, want: 1, wantOK: true},
		{raw: `"many"`},
		{raw: `""`},
		{raw: `"-"`},
		{raw: `null`},
		{raw: `{}`},
		{raw: `1e100`},
	}

	for _, tt := range tests {
		stock, ok := parseStock(json.RawMessage(tt.raw))
		assert.Equal(t, tt.wantOK, ok, tt.raw)
		assert.Equal(t, tt.want, stock, tt.raw)
	}
}

func TestParseImages(t *testing.T) {
	images, ok := parseImages(json.RawMessage(`["a.png","b.png"]`))
	assert.True(t, ok)
	assert.Equal(t, []string{"a.png", "b.png"}, images)

	images, ok = parseImages(json.RawMessage(`[]`))
	assert.True(t, ok)
	assert.Equal(t, []string{}, images)

	for _, raw := range []string{``, `null`, `"a.png"`, `[1,2]`, `{"a":1}`} {
		_, ok := parseImages(json.RawMessage(raw))
		assert.False(t, ok, raw)
	}
}

func TestParseBrand(t *testing.T) {
	brand, ok := parseBrand(json.RawMessage(`"Kitchenaid"`))
	assert.True(t, ok)
	assert.Equal(t, entity.BrandKitchenaid, brand)

	for _, raw := range []string{`null`, `"Acme"`, `""`, `7`, `["Cuisinart"]`} {
		_, ok := parseBrand(json.RawMessage(raw))
		assert.False(t, ok, raw)
	}
}
