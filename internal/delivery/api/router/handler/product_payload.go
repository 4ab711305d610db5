package handler

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"peterparts/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Clients send price and stock either as JSON numbers or as numeric strings,
// so those fields are decoded by hand. A present null is never accepted.

var jsonNull = []byte("null")

func present(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) > 0
}

// parsePrice accepts a number or a non-empty numeric string, never negative.
func parsePrice(raw json.RawMessage) (decimal.Decimal, bool) {
	text, ok := numericText(raw)
	if !ok {
		return decimal.Decimal{}, false
	}

	price, err := decimal.NewFromString(text)
	if err != nil || price.IsNegative() {
		return decimal.Decimal{}, false
	}

	return price, true
}

// parseBrand accepts a string naming a known brand.
func parseBrand(raw json.RawMessage) (entity.Brand, bool) {
	var text string
	if bytes.Equal(bytes.TrimSpace(raw), jsonNull) || json.Unmarshal(raw, &text) != nil {
		return "", false
	}

	brand := entity.Brand(text)

	return brand, brand.IsValid()
}

// parseStock truncates a number to an integer. Strings are read like
// parseInt: leading digits count, trailing text is ignored ("12abc" is 12).
func parseStock(raw json.RawMessage) (int, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, false
		}

		return leadingInt(text)
	}

	text, ok := numericText(raw)
	if !ok {
		return 0, false
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	if value > math.MaxInt32 || value < math.MinInt32 {
		return 0, false
	}

	return int(math.Trunc(value)), true
}

// leadingInt parses an optionally signed run of leading digits.
func leadingInt(text string) (int, bool) {
	text = strings.TrimSpace(text)

	end := 0
	if end < len(text) && (text[end] == '+' || text[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	value, err := strconv.Atoi(text[:end])
	if err != nil || value > math.MaxInt32 || value < math.MinInt32 {
		return 0, false
	}

	return value, true
}

// parseImages accepts an array of strings only. Absent and null are rejected.
func parseImages(raw json.RawMessage) ([]string, bool) {
	if !present(raw) || bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return nil, false
	}

	var images []string
	if err := json.Unmarshal(raw, &images); err != nil {
		return nil, false
	}
	if images == nil {
		images = []string{}
	}

	return images, true
}

func numericText(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, jsonNull) {
		return "", false
	}

	if raw[0] == '"' {
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return "", false
		}
		text = strings.TrimSpace(text)

		return text, text != ""
	}

	var number json.Number
	if err := json.Unmarshal(raw, &number); err != nil {
		return "", false
	}

	return number.String(), true
}
