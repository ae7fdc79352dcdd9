package analytics

import (
	"time"

	"github.com/taskpulse/taskpulse/internal/models"
)

// DefaultHeatmapWeeks is the trailing window used when none is requested.
const DefaultHeatmapWeeks = 12

// DefaultTagLimit caps the ranked tag list when none is requested.
const DefaultTagLimit = 10

// DashboardOptions parameterize a full dashboard computation.
type DashboardOptions struct {
	From     *time.Time
	To       *time.Time
	Weeks    int
	TagLimit int
	Today    time.Time
}

// Dashboard bundles every derived view-model computed from one snapshot.
type Dashboard struct {
	Metrics    ProductivityMetrics         `json:"metrics"`
	Heatmap    HeatmapResult               `json:"heatmap"`
	Recurring  RecurringTaskStats          `json:"recurring"`
	Tags       []TagStats                  `json:"tags"`
	Priorities []PriorityDistributionEntry `json:"priorities"`
}

// BuildDashboard filters the snapshot by creation date and fans out to every
// analytics component. The components are independent of each other, so the
// order here is arbitrary.
func BuildDashboard(tasks []models.Task, opts DashboardOptions) Dashboard {
	if opts.Today.IsZero() {
		opts.Today = time.Now().UTC()
	}
	if opts.Weeks < 1 {
		opts.Weeks = DefaultHeatmapWeeks
	}
	if opts.TagLimit == 0 {
		opts.TagLimit = DefaultTagLimit
	}

	filtered := FilterByDateRange(tasks, opts.From, opts.To, DateFieldCreated)

	return Dashboard{
		Metrics:    CalculateProductivityMetrics(filtered, opts.Today),
		Heatmap:    CalculateHeatmap(filtered, opts.Weeks, opts.Today),
		Recurring:  GetRecurringTaskStats(filtered, opts.Today),
		Tags:       GetTagStats(filtered, opts.TagLimit),
		Priorities: CalculatePriorityDistribution(filtered),
	}
}
