package policy_test

import (
	"testing"
	"time"

	"github.com/amirasaad/banktransfer/pkg/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute, second int) time.Time {
	return time.Date(2024, 5, 1, hour, minute, second, 0, time.UTC)
}

func TestDefaultServiceWindow(t *testing.T) {
	t.Parallel()

	w := policy.DefaultServiceWindow
	w.Location = time.UTC

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"06:00 is open", at(6, 0, 0), true},
		{"22:00 is closed", at(22, 0, 0), false},
		{"05:59 exactly is closed", at(5, 59, 0), false},
		{"one second after begin is open", at(5, 59, 1), true},
		{"21:58:59 is open", at(21, 58, 59), true},
		{"21:59 exactly is closed", at(21, 59, 0), false},
		{"midnight is closed", at(0, 0, 0), false},
		{"noon is open", at(12, 0, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.Check(tt.at))
		})
	}
}

func TestServiceWindowAcrossMidnight(t *testing.T) {
	t.Parallel()

	w, err := policy.NewServiceWindow("22:00", "02:00", time.UTC)
	require.NoError(t, err)

	assert.True(t, w.Check(at(23, 30, 0)))
	assert.True(t, w.Check(at(0, 0, 0)))
	assert.True(t, w.Check(at(1, 59, 59)))
	assert.False(t, w.Check(at(2, 0, 0)))
	assert.False(t, w.Check(at(22, 0, 0)))
	assert.False(t, w.Check(at(12, 0, 0)))
}

func TestServiceWindowLocation(t *testing.T) {
	t.Parallel()

	plus3 := time.FixedZone("UTC+3", 3*60*60)
	w, err := policy.NewServiceWindow("05:59", "21:59", plus3)
	require.NoError(t, err)

	// 20:00 UTC is 23:00 at UTC+3.
	assert.False(t, w.Check(at(20, 0, 0)))
	// 04:00 UTC is 07:00 at UTC+3.
	assert.True(t, w.Check(at(4, 0, 0)))
}

func TestNewServiceWindow(t *testing.T) {
	t.Parallel()

	w, err := policy.NewServiceWindow("05:59", "21:59:30", nil)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Hour+59*time.Minute, w.Begin)
	assert.Equal(t, 21*time.Hour+59*time.Minute+30*time.Second, w.End)
	assert.Nil(t, w.Location)

	for _, bad := range []string{"", "25:00", "6am", "06"} {
		_, err := policy.NewServiceWindow(bad, "21:59", nil)
		assert.ErrorIs(t, err, policy.ErrInvalidClock, "begin %q", bad)
	}
}

func TestAlwaysOpenAndTimeFunc(t *testing.T) {
	t.Parallel()

	assert.True(t, policy.AlwaysOpen{}.Check(at(3, 0, 0)))

	closed := policy.TimeFunc(func(time.Time) bool { return false })
	assert.False(t, closed.Check(at(12, 0, 0)))
}
