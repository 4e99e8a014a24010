package analytics

import "time"

type Overview struct {
	Total                 int     `json:"total"`
	Pending               int     `json:"pending"`
	InProgress            int     `json:"in_progress"`
	Resolved              int     `json:"resolved"`
	ResolutionRate        float64 `json:"resolution_rate"`
	AverageProgress       float64 `json:"average_progress"`
	AverageResolutionDays float64 `json:"average_resolution_days"`
}

type PriorityBucket struct {
	Priority        string  `json:"priority"`
	Count           int     `json:"count"`
	Resolved        int     `json:"resolved"`
	AverageProgress float64 `json:"average_progress"`
	Percentage      float64 `json:"percentage"`
	ResolutionRate  float64 `json:"resolution_rate"`
}

type LocationPerformance struct {
	LocalID               uint    `json:"local_id"`
	LocalName             string  `json:"local_name"`
	Total                 int     `json:"total"`
	Pending               int     `json:"pending"`
	InProgress            int     `json:"in_progress"`
	Resolved              int     `json:"resolved"`
	AverageProgress       float64 `json:"average_progress"`
	ResolutionRate        float64 `json:"resolution_rate"`
	AverageResolutionDays float64 `json:"average_resolution_days"`
}

type AuthorPerformance struct {
	UserID         uint    `json:"user_id"`
	Name           string  `json:"name"`
	Created        int     `json:"created"`
	Resolved       int     `json:"resolved"`
	ResolutionRate float64 `json:"resolution_rate"`
}

type AssigneePerformance struct {
	UserID          uint    `json:"user_id"`
	Name            string  `json:"name"`
	Assigned        int     `json:"assigned"`
	Resolved        int     `json:"resolved"`
	AverageProgress float64 `json:"average_progress"`
	ResolutionRate  float64 `json:"resolution_rate"`
}

type UserPerformance struct {
	Authors   []AuthorPerformance   `json:"authors"`
	Assignees []AssigneePerformance `json:"assignees"`
}

type TimelinePoint struct {
	Period   string    `json:"period"`
	Start    time.Time `json:"start"`
	Total    int       `json:"total"`
	Resolved int       `json:"resolved"`
}

type EquipmentIssue struct {
	EquipamentoID   uint    `json:"equipamento_id"`
	Name            string  `json:"name"`
	Code            string  `json:"code"`
	LocalName       string  `json:"local_name"`
	Total           int     `json:"total"`
	Open            int     `json:"open"`
	Critical        int     `json:"critical"`
	Resolved        int     `json:"resolved"`
	AverageProgress float64 `json:"average_progress"`
	ResolutionRate  float64 `json:"resolution_rate"`
}

type ResponseStats struct {
	AverageHours float64 `json:"average_hours"`
	MinHours     float64 `json:"min_hours"`
	MaxHours     float64 `json:"max_hours"`
	Count        int     `json:"count"`
}

type ResponseTime struct {
	Overall    ResponseStats            `json:"overall"`
	ByPriority map[string]ResponseStats `json:"by_priority"`
}

type TrendMetric struct {
	Current   int     `json:"current"`
	Previous  int     `json:"previous"`
	Variation float64 `json:"variation"`
	Trend     string  `json:"trend"`
}

type Productivity struct {
	ReportsPerDay             float64            `json:"reports_per_day"`
	CompletionRate            float64            `json:"completion_rate"`
	ResolutionHoursByPriority map[string]float64 `json:"resolution_hours_by_priority"`
	TotalUpdates              int                `json:"total_updates"`
}

type Dashboard struct {
	Period               string                 `json:"period"`
	From                 time.Time              `json:"from"`
	To                   time.Time              `json:"to"`
	Overview             Overview               `json:"overview"`
	PriorityDistribution []PriorityBucket       `json:"priority_distribution"`
	LocationPerformance  []LocationPerformance  `json:"location_performance"`
	UserPerformance      UserPerformance        `json:"user_performance"`
	Timeline             []TimelinePoint        `json:"timeline"`
	EquipmentIssues      []EquipmentIssue       `json:"equipment_issues"`
	ResponseTime         ResponseTime           `json:"response_time"`
	Trends               map[string]TrendMetric `json:"trends"`
	Productivity         Productivity           `json:"productivity"`
	GeneratedAt          time.Time              `json:"generated_at"`
}

// EquipmentInfo names an equipment row for the issues table.
type EquipmentInfo struct {
	Name      string
	Code      string
	LocalName string
}

// Names resolves ids to display names. Missing entries render as empty strings.
type Names struct {
	Locals    map[uint]string
	Users     map[uint]string
	Equipment map[uint]EquipmentInfo
}
