package services

import (
	"fmt"
	"time"

	"github.com/Deepanghsh/Smart-Ward-Admin/entity"
	"github.com/Deepanghsh/Smart-Ward-Admin/pkg/query"
	"github.com/Deepanghsh/Smart-Ward-Admin/repository"
)

// AnalyticsService serves the admin dashboard aggregations. All of
// them are the scope -> group -> aggregate path over an issues
// snapshot; no pagination.
type AnalyticsService struct {
	issues        *repository.IssueRepository
	users         *repository.UserRepository
	announcements *repository.AnnouncementRepository
	pipeline      *query.Pipeline[entity.Issue]
}

func NewAnalyticsService(
	issues *repository.IssueRepository,
	users *repository.UserRepository,
	announcements *repository.AnnouncementRepository,
) *AnalyticsService {
	return &AnalyticsService{
		issues:        issues,
		users:         users,
		announcements: announcements,
		pipeline:      query.NewPipeline(issueFields),
	}
}

func isResolved(i entity.Issue) bool {
	return i.Status == "resolved" || i.Status == "closed"
}

// resolutionHours is the measure averaged per group: whole hours from
// report to last update, defined only for resolved issues.
func resolutionHours(i entity.Issue) (float64, bool) {
	if !isResolved(i) {
		return 0, false
	}
	return float64(query.Hours(i.ReportedDate, i.UpdatedAt)), true
}

type DashboardStats struct {
	TotalIssues        int   `json:"totalIssues"`
	PendingIssues      int   `json:"pendingIssues"`
	ResolvedIssues     int   `json:"resolvedIssues"`
	TotalStudents      int64 `json:"totalStudents"`
	TotalAnnouncements int64 `json:"totalAnnouncements"`
}

func (s *AnalyticsService) Dashboard() (*DashboardStats, error) {
	issues, err := s.issues.FindAll()
	if err != nil {
		return nil, err
	}
	students, err := s.users.CountByRole("student")
	if err != nil {
		return nil, err
	}
	announcements, err := s.announcements.Count()
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalIssues:        len(issues),
		TotalStudents:      students,
		TotalAnnouncements: announcements,
	}
	for _, i := range issues {
		if isResolved(i) {
			stats.ResolvedIssues++
		} else {
			stats.PendingIssues++
		}
	}
	return stats, nil
}

// periodStart returns the inclusive lower bound for a trend period.
func periodStart(period string, now time.Time) (time.Time, error) {
	switch period {
	case "", "month":
		return now.AddDate(0, -1, 0), nil
	case "week":
		return now.AddDate(0, 0, -7), nil
	case "quarter":
		return now.AddDate(0, -3, 0), nil
	case "year":
		return now.AddDate(-1, 0, 0), nil
	default:
		return time.Time{}, fmt.Errorf("%w: invalid period %q", query.ErrInvalidArgument, period)
	}
}

// Trends buckets issues reported within the period by day.
func (s *AnalyticsService) Trends(period string) ([]query.Bucket, error) {
	start, err := periodStart(period, time.Now())
	if err != nil {
		return nil, err
	}

	issues, err := s.issues.FindAll()
	if err != nil {
		return nil, err
	}

	inPeriod := query.Filter(issues, func(i entity.Issue) bool {
		return !i.ReportedDate.Before(start)
	})
	// chronological keys: sort before grouping, first-seen order does the rest
	byDate := query.SortBy(inPeriod, issueFields["reportedDate"], query.OrderAsc)
	days := query.GroupBy(byDate, func(i entity.Issue) any {
		return i.ReportedDate.Format("2006-01-02")
	})
	return query.Aggregate(days, nil), nil
}

// Categories reports the issue distribution per category with the
// average resolution time of the resolved ones.
func (s *AnalyticsService) Categories() ([]query.Bucket, error) {
	issues, err := s.issues.FindAll()
	if err != nil {
		return nil, err
	}
	return s.pipeline.RunAggregate(issues, nil, "category", resolutionHours)
}

type HostelStat struct {
	Hostel     string `json:"hostel"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
	Resolved   int    `json:"resolved"`
}

// Hostels reports issue load and resolution progress per hostel.
func (s *AnalyticsService) Hostels() ([]HostelStat, error) {
	issues, err := s.issues.FindAll()
	if err != nil {
		return nil, err
	}

	groups := query.GroupBy(issues, issueFields["hostel"])
	stats := make([]HostelStat, 0, len(groups))
	for _, g := range groups {
		stat := HostelStat{
			Hostel:     g.Key,
			Count:      len(g.Records),
			Percentage: query.Percentage(len(g.Records), len(issues)),
		}
		for _, i := range g.Records {
			if isResolved(i) {
				stat.Resolved++
			}
		}
		stats = append(stats, stat)
	}
	return stats, nil
}
