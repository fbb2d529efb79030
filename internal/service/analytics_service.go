package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/skillbase/skillbase-api/internal/dto"
	"github.com/skillbase/skillbase-api/internal/models"
	"github.com/skillbase/skillbase-api/internal/observability"
	"github.com/skillbase/skillbase-api/internal/repository"
)

// AnalyticsService computes role-gated, time-windowed training analytics.
type AnalyticsService interface {
	GetAnalytics(ctx context.Context, principal Principal, query dto.AnalyticsQuery) (dto.AnalyticsResponse, error)
}

// Options tunes the analytics service runtime behavior.
type Options struct {
	CacheTTL                time.Duration
	FetchTimeout            time.Duration
	BreakerFailureThreshold uint32
	BreakerOpenTimeout      time.Duration
}

type analyticsService struct {
	repo         repository.AnalyticsRepository
	cache        *redis.Client
	cacheTTL     time.Duration
	fetchTimeout time.Duration
	breaker      *gobreaker.CircuitBreaker[repository.ActivitySnapshot]
	logger       zerolog.Logger
	now          func() time.Time
}

// NewAnalyticsService constructs the aggregation engine. The circuit breaker
// converts a misbehaving store into fast failures instead of hung requests.
func NewAnalyticsService(repo repository.AnalyticsRepository, cache *redis.Client, opts Options, logger zerolog.Logger) AnalyticsService {
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = 10 * time.Second
	}
	if opts.BreakerFailureThreshold == 0 {
		opts.BreakerFailureThreshold = 5
	}
	if opts.BreakerOpenTimeout <= 0 {
		opts.BreakerOpenTimeout = 30 * time.Second
	}

	breaker := gobreaker.NewCircuitBreaker[repository.ActivitySnapshot](gobreaker.Settings{
		Name:    "analytics-fetch",
		Timeout: opts.BreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= opts.BreakerFailureThreshold
		},
	})

	return &analyticsService{
		repo:         repo,
		cache:        cache,
		cacheTTL:     opts.CacheTTL,
		fetchTimeout: opts.FetchTimeout,
		breaker:      breaker,
		logger:       logger.With().Str("component", "analytics_service").Logger(),
		now:          time.Now,
	}
}

func (s *analyticsService) GetAnalytics(ctx context.Context, principal Principal, query dto.AnalyticsQuery) (dto.AnalyticsResponse, error) {
	if err := authorize(principal); err != nil {
		return dto.AnalyticsResponse{}, err
	}

	department := scopedDepartment(principal, query.Department)
	window := resolveWindow(s.now(), query.Period, query.Granularity)

	cacheKey := analyticsCacheKey(department, window)
	tracer := otel.Tracer("github.com/skillbase/skillbase-api/internal/service/analytics")
	ctx, span := tracer.Start(ctx, "analytics.aggregate")
	span.SetAttributes(
		attribute.String("analytics.cache_key", cacheKey),
		attribute.String("analytics.period", window.Period),
		attribute.String("analytics.granularity", window.Granularity),
	)
	defer span.End()

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey).Result()
		if err == nil {
			var response dto.AnalyticsResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &response); unmarshalErr == nil {
				response.CacheHit = true
				span.SetAttributes(attribute.Bool("analytics.cache_hit", true))
				return response, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read analytics cache")
			span.RecordError(err)
		}
	}

	snapshot, err := s.breaker.Execute(func() (repository.ActivitySnapshot, error) {
		fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
		defer cancel()
		return s.repo.FetchActivity(fetchCtx, repository.ActivityFilter{
			Department: department,
			Since:      window.Start,
		})
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("activity fetch failed")
		span.RecordError(err)
		span.SetStatus(codes.Error, "activity_fetch_failed")
		return dto.AnalyticsResponse{}, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}

	response := s.buildResponse(window, snapshot)
	span.SetAttributes(
		attribute.Int("analytics.user_count", len(snapshot.Users)),
		attribute.Int("analytics.progress_records", len(snapshot.CourseProgress)+len(snapshot.PathProgress)),
		attribute.Int64("analytics.dropped_records", response.Summary.DroppedRecords),
	)

	if s.cache != nil {
		payload, err := json.Marshal(response)
		if err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store analytics cache")
				span.RecordError(err)
			}
		}
	}

	return response, nil
}

func analyticsCacheKey(department *string, window windowSpec) string {
	scope := "all"
	if department != nil {
		scope = *department
	}
	return fmt.Sprintf("analytics:v1:%s:%s:%s", scope, window.Period, window.Granularity)
}

// buildResponse folds the fetched snapshot into the response envelope. Pure
// in-memory computation; every derived value lives and dies with the request.
func (s *analyticsService) buildResponse(window windowSpec, snapshot repository.ActivitySnapshot) dto.AnalyticsResponse {
	userDepartments := make(map[uint]string, len(snapshot.Users))
	departments := make(map[string]*dto.DepartmentStat)
	for _, user := range snapshot.Users {
		label := user.DepartmentLabel()
		userDepartments[user.ID] = label
		stat, ok := departments[label]
		if !ok {
			stat = &dto.DepartmentStat{Department: label}
			departments[label] = stat
		}
		stat.UserCount++
	}

	var dropped int64
	departmentOf := func(userID uint) (*dto.DepartmentStat, bool) {
		label, ok := userDepartments[userID]
		if !ok {
			// Owning user is outside the filtered population; crediting a
			// visible department would misattribute the activity.
			dropped++
			return nil, false
		}
		return departments[label], true
	}

	series := make([]dto.TimeSeriesPoint, len(window.Labels))
	for i, label := range window.Labels {
		series[i] = dto.TimeSeriesPoint{Label: label}
	}
	recordCompletion := func(at time.Time) {
		if at.Before(window.Start) || at.After(window.End) {
			dropped++
			return
		}
		idx := window.bucketIndex(at)
		if idx < 0 {
			dropped++
			return
		}
		series[idx].Completions++
	}

	var totalCourseCompletions int64
	courseEnrollments := make(map[uint]int64, len(snapshot.Courses))
	for _, progress := range snapshot.CourseProgress {
		courseEnrollments[progress.CourseID]++
		stat, ok := departmentOf(progress.UserID)
		if !ok {
			continue
		}
		switch progress.Status {
		case models.ProgressStatusCompleted:
			stat.CoursesCompleted++
			totalCourseCompletions++
			recordCompletion(progress.UpdatedAt)
		case models.ProgressStatusInProgress:
			stat.CoursesInProgress++
		}
	}

	pathEnrollments := make(map[uint]int64, len(snapshot.Paths))
	for _, progress := range snapshot.PathProgress {
		pathEnrollments[progress.PathID]++
		stat, ok := departmentOf(progress.UserID)
		if !ok {
			continue
		}
		switch progress.Status {
		case models.ProgressStatusCompleted:
			stat.PathsCompleted++
			recordCompletion(progress.UpdatedAt)
		case models.ProgressStatusInProgress:
			stat.PathsInProgress++
		}
	}

	for _, certificate := range snapshot.Certificates {
		if stat, ok := departmentOf(certificate.UserID); ok {
			stat.CertificatesIssued++
		}
	}
	for _, registration := range snapshot.EventRegistrations {
		if stat, ok := departmentOf(registration.UserID); ok {
			stat.EventRegistrations++
		}
	}

	departmentStats := make([]dto.DepartmentStat, 0, len(departments))
	for _, stat := range departments {
		departmentStats = append(departmentStats, *stat)
	}
	sort.Slice(departmentStats, func(i, j int) bool {
		return departmentStats[i].Department < departmentStats[j].Department
	})

	categories := make(map[string]*dto.CategoryStat)
	categoryOf := func(label string) *dto.CategoryStat {
		stat, ok := categories[label]
		if !ok {
			stat = &dto.CategoryStat{Category: label}
			categories[label] = stat
		}
		return stat
	}
	for _, course := range snapshot.Courses {
		stat := categoryOf(course.CategoryLabel())
		stat.TotalCourses++
		stat.TotalEnrollments += courseEnrollments[course.ID]
	}
	for _, path := range snapshot.Paths {
		stat := categoryOf(path.CategoryLabel())
		stat.TotalCourses++
		stat.TotalEnrollments += pathEnrollments[path.ID]
	}

	categoryStats := make([]dto.CategoryStat, 0, len(categories))
	for _, stat := range categories {
		if stat.TotalCourses > 0 {
			stat.AverageEnrollmentsPerCourse = int64(math.Round(float64(stat.TotalEnrollments) / float64(stat.TotalCourses)))
		}
		categoryStats = append(categoryStats, *stat)
	}
	sort.Slice(categoryStats, func(i, j int) bool {
		return categoryStats[i].Category < categoryStats[j].Category
	})

	summary := dto.AnalyticsSummary{
		TotalUsers:              int64(len(snapshot.Users)),
		TotalCourseCompletions:  totalCourseCompletions,
		TotalCertificatesIssued: int64(len(snapshot.Certificates)),
		TotalEventRegistrations: int64(len(snapshot.EventRegistrations)),
		DroppedRecords:          dropped,
		GeneratedAt:             s.now(),
		Window: dto.AnalyticsWindow{
			Period:      window.Period,
			Granularity: window.Granularity,
			Start:       window.Start,
			End:         window.End,
		},
	}
	if summary.TotalUsers > 0 {
		rate := float64(totalCourseCompletions) / float64(summary.TotalUsers)
		summary.CompletionRate = math.Round(rate*100) / 100
	}

	if dropped > 0 {
		observability.DroppedRecords().Add(float64(dropped))
		s.logger.Debug().Int64("dropped_records", dropped).Msg("records outside bucket schema dropped")
	}

	return dto.AnalyticsResponse{
		DepartmentStats:    departmentStats,
		CategoryEngagement: categoryStats,
		TimeSeries:         series,
		Summary:            summary,
	}
}
