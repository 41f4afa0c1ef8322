package timezone_test

import (
	"testing"
	"time"

	"tick/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestNow(t *testing.T) {
	now := timezone.Now()

	assert.WithinDuration(t, time.Now(), now, time.Second)
}

func TestFormatRoundTrip(t *testing.T) {
	ts := time.Date(2024, time.March, 9, 12, 30, 0, 0, time.UTC)

	formatted := timezone.Format(ts, time.RFC3339)
	parsed, err := time.Parse(time.RFC3339, formatted)

	assert.NoError(t, err)
	assert.True(t, ts.Equal(parsed))
}
