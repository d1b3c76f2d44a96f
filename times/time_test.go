package times

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatReportTimestamp(t *testing.T) {
	newYork, _ := time.LoadLocation("America/New_York") // -5

	tests := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC), "2024-03-15T10:30:00.000000Z"},
		{time.Date(2024, 3, 15, 10, 30, 0, 123456000, time.UTC), "2024-03-15T10:30:00.123456Z"},
		{time.Date(2024, 3, 15, 5, 30, 0, 0, newYork), "2024-03-15T10:30:00.000000Z"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatReportTimestamp(tt.in))
	}
}

func TestFormatNullable(t *testing.T) {
	assert.Equal(t, "", FormatNullable(time.Time{}))
	assert.Equal(t, "2024-03-15T10:30:00Z", FormatNullable(time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)))
}
