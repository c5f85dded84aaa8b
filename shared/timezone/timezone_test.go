package timezone_test

import (
	"testing"
	"time"

	"ourstory/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(func() { timezone.Configure("UTC") })

	timezone.Configure("Asia/Jakarta")
	assert.Equal(t, "Asia/Jakarta", timezone.GetLocation().String())

	timezone.Configure("Mars/Olympus_Mons")
	assert.Equal(t, time.UTC, timezone.GetLocation())

	timezone.Configure("")
	assert.Equal(t, "UTC", timezone.GetLocation().String())
}

func TestNow(t *testing.T) {
	assert.False(t, timezone.Now().IsZero())
}

func TestDay(t *testing.T) {
	t.Cleanup(func() { timezone.Configure("UTC") })

	// 23:30 UTC is already the next day in Jakarta (UTC+7).
	instant := time.Date(2024, 6, 1, 23, 30, 0, 0, time.UTC)

	timezone.Configure("UTC")
	assert.Equal(t, "2024-06-01", timezone.Day(instant))

	timezone.Configure("Asia/Jakarta")
	assert.Equal(t, "2024-06-02", timezone.Day(instant))
}

func TestFormat(t *testing.T) {
	t.Cleanup(func() { timezone.Configure("UTC") })

	timezone.Configure("UTC")

	instant := time.Date(2024, 1, 1, 12, 0, 0, 5_000_000, time.UTC)
	assert.Equal(t, "2024-01-01T12:00:00.005Z", timezone.Format(instant, "2006-01-02T15:04:05.000Z07:00"))
}
