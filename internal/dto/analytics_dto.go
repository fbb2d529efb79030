package dto

import "time"

// AnalyticsQuery captures the parameters of an analytics request after the
// transport layer has parsed them.
type AnalyticsQuery struct {
	Department  string `json:"department" validate:"omitempty,max=128"`
	Period      string `json:"period"`
	Granularity string `json:"granularity"`
}

// DepartmentStat aggregates training activity for a single department.
type DepartmentStat struct {
	Department         string `json:"department"`
	UserCount          int64  `json:"user_count"`
	CoursesCompleted   int64  `json:"courses_completed"`
	CoursesInProgress  int64  `json:"courses_in_progress"`
	PathsCompleted     int64  `json:"paths_completed"`
	PathsInProgress    int64  `json:"paths_in_progress"`
	CertificatesIssued int64  `json:"certificates_issued"`
	EventRegistrations int64  `json:"event_registrations"`
}

// CategoryStat summarises engagement with course and path definitions of one category.
type CategoryStat struct {
	Category                    string `json:"category"`
	TotalCourses                int64  `json:"total_courses"`
	TotalEnrollments            int64  `json:"total_enrollments"`
	AverageEnrollmentsPerCourse int64  `json:"average_enrollments_per_course"`
}

// TimeSeriesPoint holds the completion count of one reporting bucket.
type TimeSeriesPoint struct {
	Label       string `json:"label"`
	Completions int64  `json:"completions"`
}

// AnalyticsWindow echoes the resolved reporting window back to the caller.
type AnalyticsWindow struct {
	Period      string    `json:"period"`
	Granularity string    `json:"granularity"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
}

// AnalyticsSummary folds the scalar totals of an analytics response.
type AnalyticsSummary struct {
	TotalUsers              int64           `json:"total_users"`
	TotalCourseCompletions  int64           `json:"total_course_completions"`
	TotalCertificatesIssued int64           `json:"total_certificates_issued"`
	TotalEventRegistrations int64           `json:"total_event_registrations"`
	CompletionRate          float64         `json:"completion_rate"`
	DroppedRecords          int64           `json:"dropped_records"`
	GeneratedAt             time.Time       `json:"generated_at"`
	Window                  AnalyticsWindow `json:"window"`
}

// AnalyticsResponse is the full payload served to dashboards.
type AnalyticsResponse struct {
	DepartmentStats    []DepartmentStat  `json:"department_stats"`
	CategoryEngagement []CategoryStat    `json:"category_engagement"`
	TimeSeries         []TimeSeriesPoint `json:"time_series"`
	Summary            AnalyticsSummary  `json:"summary"`
	CacheHit           bool              `json:"cache_hit"`
}

// DepartmentListResponse serves the dashboard filter dropdown.
type DepartmentListResponse struct {
	Departments []string `json:"departments"`
}
