package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "courtbooking_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "courtbooking_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "courtbooking_bookings_created_total",
			Help: "Total number of bookings created",
		},
	)

	BookingsDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "courtbooking_bookings_deleted_total",
			Help: "Total number of bookings deleted",
		},
	)

	BookingRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "courtbooking_booking_rejections_total",
			Help: "Total number of rejected booking requests, by reason",
		},
		[]string{"reason"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "courtbooking_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "courtbooking_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBookingCreated() {
	BookingsCreatedTotal.Inc()
}

func RecordBookingDeleted() {
	BookingsDeletedTotal.Inc()
}

func RecordBookingRejection(reason string) {
	BookingRejectionsTotal.WithLabelValues(reason).Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
