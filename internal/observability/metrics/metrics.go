package metrics

import "github.com/prometheus/client_golang/prometheus"

// SubmissionMetrics exposes counters for the booking/contact form flows.
type SubmissionMetrics struct {
	submissionsTotal *prometheus.CounterVec
	notifyFailures   *prometheus.CounterVec
}

func NewSubmissionMetrics(reg prometheus.Registerer) *SubmissionMetrics {
	m := &SubmissionMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "forms",
			Name:      "submissions_total",
			Help:      "Total form submissions processed",
		}, []string{"form", "status"}),
		notifyFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "forms",
			Name:      "notification_failures_total",
			Help:      "Total best-effort notification failures",
		}, []string{"channel"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.notifyFailures)
	return m
}

func (m *SubmissionMetrics) ObserveSubmission(form, status string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(form, status).Inc()
}

func (m *SubmissionMetrics) ObserveNotifyFailure(channel string) {
	if m == nil {
		return
	}
	m.notifyFailures.WithLabelValues(channel).Inc()
}
