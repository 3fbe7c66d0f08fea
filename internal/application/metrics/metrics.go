package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the application module.
type Metrics struct {
	Submitted        prometheus.Counter
	SubmitRejected   *prometheus.CounterVec
	StatusChanges    *prometheus.CounterVec
	SubmitDuration   prometheus.Histogram
	ListDuration     prometheus.Histogram
	WithoutEvaluator prometheus.Counter
}

var durationBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}

// New creates the module collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Submitted: factory.NewCounter(prometheus.CounterOpts{
			Name: "recruit_applications_submitted_total",
			Help: "Total number of applications created",
		}),
		SubmitRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "recruit_applications_rejected_submissions_total",
			Help: "Submissions refused before or during creation, by error code",
		}, []string{"code"}),
		StatusChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "recruit_application_status_changes_total",
			Help: "Status updates applied by reviewers, by target status",
		}, []string{"status"}),
		SubmitDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "recruit_application_submit_duration_seconds",
			Help:    "Duration of the submission protocol",
			Buckets: durationBuckets,
		}),
		ListDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "recruit_application_list_duration_seconds",
			Help:    "Duration of visible-page listing including enrichment",
			Buckets: durationBuckets,
		}),
		WithoutEvaluator: factory.NewCounter(prometheus.CounterOpts{
			Name: "recruit_applications_without_evaluator_total",
			Help: "Applications created for a specialty with no active director",
		}),
	}
}

func (m *Metrics) IncrementSubmitted() {
	m.Submitted.Inc()
}

func (m *Metrics) IncrementRejected(code string) {
	m.SubmitRejected.WithLabelValues(code).Inc()
}

func (m *Metrics) IncrementStatusChange(status string) {
	m.StatusChanges.WithLabelValues(status).Inc()
}

func (m *Metrics) IncrementWithoutEvaluator() {
	m.WithoutEvaluator.Inc()
}

// ObserveSubmit records the duration of a submission.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveSubmit(start time.Time) {
	m.SubmitDuration.Observe(time.Since(start).Seconds())
}

// ObserveList records the duration of a listing.
func (m *Metrics) ObserveList(start time.Time) {
	m.ListDuration.Observe(time.Since(start).Seconds())
}
