package sales

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatPurchaseCode(t *testing.T) {
	assert.Equal(t, "PO-00001", FormatPurchaseCode(1))
	assert.Equal(t, "PO-00042", FormatPurchaseCode(42))
	assert.Equal(t, "PO-99999", FormatPurchaseCode(99999))
	// Beyond five digits the number keeps growing instead of wrapping.
	assert.Equal(t, "PO-100000", FormatPurchaseCode(100000))
}

func TestParsePurchaseCode(t *testing.T) {
	assert.Equal(t, 1, ParsePurchaseCode("PO-00001"))
	assert.Equal(t, 12345, ParsePurchaseCode("PO-12345"))
	assert.Equal(t, 0, ParsePurchaseCode(""))
	assert.Equal(t, 0, ParsePurchaseCode("PO-"))
	assert.Equal(t, 0, ParsePurchaseCode("XX-00001"))
	assert.Equal(t, 0, ParsePurchaseCode("garbage"))
}

func TestNextPurchaseCode(t *testing.T) {
	assert.Equal(t, "PO-00001", NextPurchaseCode(""))
	assert.Equal(t, "PO-00002", NextPurchaseCode("PO-00001"))
	assert.Equal(t, "PO-10000", NextPurchaseCode("PO-09999"))
}

func TestDayBounds(t *testing.T) {
	ts := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

	start := DayStart(ts)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), start)

	end := DayEnd(ts)
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, 59, end.Second())
	assert.True(t, end.After(ts))
}

func TestRangeBounds(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	start, end, ok := RangeBounds(RangeWeekly, now)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC), start)
	assert.True(t, end.After(now))

	start, _, ok = RangeBounds(RangeMonthly, now)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), start)

	start, _, ok = RangeBounds(RangeYearly, now)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), start)

	_, _, ok = RangeBounds("daily", now)
	assert.False(t, ok)
}
