package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("GET", "/bookings", "200", 0.5)

	count := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/bookings", "200"))
	assert.Equal(t, float64(1), count)
}

func TestRecordHTTPRequestMultiple(t *testing.T) {
	HTTPRequestsTotal.Reset()

	RecordHTTPRequest("POST", "/auth/login", "200", 0.1)
	RecordHTTPRequest("POST", "/auth/login", "200", 0.2)
	RecordHTTPRequest("POST", "/auth/login", "401", 0.05)

	successCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/auth/login", "200"))
	failCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/auth/login", "401"))

	assert.Equal(t, float64(2), successCount)
	assert.Equal(t, float64(1), failCount)
}

func TestRecordBookingOutcomes(t *testing.T) {
	before := testutil.ToFloat64(BookingsCreatedTotal)
	RecordBookingCreated()
	assert.Equal(t, before+1, testutil.ToFloat64(BookingsCreatedTotal))

	BookingRejectionsTotal.Reset()
	RecordBookingRejection("scheduling_conflict")
	RecordBookingRejection("scheduling_conflict")
	RecordBookingRejection("out_of_hours")

	assert.Equal(t, float64(2), testutil.ToFloat64(BookingRejectionsTotal.WithLabelValues("scheduling_conflict")))
	assert.Equal(t, float64(1), testutil.ToFloat64(BookingRejectionsTotal.WithLabelValues("out_of_hours")))
}

func TestRecordEmail(t *testing.T) {
	EmailsSentTotal.Reset()

	RecordEmail("booking_confirmation", "sent")

	count := testutil.ToFloat64(EmailsSentTotal.WithLabelValues("booking_confirmation", "sent"))
	assert.Equal(t, float64(1), count)
}
