package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kabitalok/kabitalok-payments/internal/core/domain"
)

func TestFormatDMY(t *testing.T) {
	assert.Equal(t, "05-03-2026", domain.FormatDMY(time.Date(2026, 3, 5, 14, 30, 0, 0, time.Local)))
	assert.Equal(t, "31-12-2025", domain.FormatDMY(time.Date(2025, 12, 31, 0, 0, 0, 0, time.Local)))
}

func TestParseDMY(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
		want  time.Time
	}{
		{"canonical", "05-03-2026", true, time.Date(2026, 3, 5, 0, 0, 0, 0, time.Local)},
		{"unpadded", "5-3-2026", true, time.Date(2026, 3, 5, 0, 0, 0, 0, time.Local)},
		{"overflow day normalizes", "31-04-2026", true, time.Date(2026, 5, 1, 0, 0, 0, 0, time.Local)},
		{"overflow month normalizes", "01-13-2025", true, time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)},
		{"surrounding spaces", " 5 - 3 - 2026 ", true, time.Date(2026, 3, 5, 0, 0, 0, 0, time.Local)},
		{"two parts", "05-2026", false, time.Time{}},
		{"four parts", "05-03-20-26", false, time.Time{}},
		{"alpha part", "05-Mar-2026", false, time.Time{}},
		{"empty", "", false, time.Time{}},
		{"iso format", "2026/03/05", false, time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := domain.ParseDMY(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, got.Equal(tt.want), "got %v want %v", got, tt.want)
			}
		})
	}
}

func TestCanonicalDMY(t *testing.T) {
	got, ok := domain.CanonicalDMY("5-3-2026")
	assert.True(t, ok)
	assert.Equal(t, "05-03-2026", got)

	_, ok = domain.CanonicalDMY("not-a-date")
	assert.False(t, ok)
}
