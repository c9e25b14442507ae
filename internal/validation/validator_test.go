package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	v := GetValidator().GetValidate()

	tests := []struct {
		name     string
		username string
		valid    bool
	}{
		{"simple", "trader123", true},
		{"with underscore and hyphen", "day_trader-99", true},
		{"minimum length", "abc", true},
		{"too short", "ab", false},
		{"too long", "abcdefghijklmnopqrstuvwxyz0123456789", false},
		{"empty", "", false},
		{"spaces", "trader 123", false},
		{"punctuation", "trader!", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.username, "username")
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateTickerSymbol(t *testing.T) {
	v := GetValidator().GetValidate()

	tests := []struct {
		name   string
		symbol string
		valid  bool
	}{
		{"uppercase", "AAPL", true},
		{"lowercase", "tsla", true},
		{"single letter", "F", true},
		{"surrounding whitespace", "  GOOGL  ", true},
		{"empty", "", false},
		{"digits", "AAPL1", false},
		{"too long", "ABCDEFGHI", false},
		{"punctuation", "BRK.A", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.symbol, "ticker_symbol")
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
