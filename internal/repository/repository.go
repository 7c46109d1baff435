package repository

import (
	"time"

	"github.com/SeanSun10/ProjectManager/internal/models"
	"github.com/SeanSun10/ProjectManager/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(user *models.User) error

	FindByID(id uint64) (*models.User, error)

	FindByUsername(username string) (*models.User, error)

	FindByEmail(email string) (*models.User, error)
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	Create(project *models.Project) error

	FindByID(id uint64) (*models.Project, error)

	List(params utils.PaginationParams) ([]models.Project, error)

	Update(project *models.Project) error

	// Delete removes the project row only; child rows are not cascaded.
	Delete(id uint64) error
}

// SprintRepository defines the interface for sprint data access
type SprintRepository interface {
	Create(sprint *models.Sprint) error

	FindByID(id uint64) (*models.Sprint, error)

	List(params utils.PaginationParams) ([]models.Sprint, error)

	ListByProject(projectID uint64) ([]models.Sprint, error)

	Update(sprint *models.Sprint) error

	Delete(id uint64) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	Create(task *models.Task) error

	// FindByID loads a task with its project and assignee.
	FindByID(id uint64) (*models.Task, error)

	List(params utils.PaginationParams) ([]models.Task, error)

	ListByProject(projectID uint64, params utils.PaginationParams) ([]models.Task, error)

	ListBySprint(sprintID uint64) ([]models.Task, error)

	Update(task *models.Task) error

	Delete(id uint64) error
}

// TeamMemberRepository defines the interface for team member and
// project membership data access
type TeamMemberRepository interface {
	Create(member *models.TeamMember) error

	FindByID(id uint64) (*models.TeamMember, error)

	List(params utils.PaginationParams) ([]models.TeamMember, error)

	Update(member *models.TeamMember) error

	Delete(id uint64) error

	AddProjectMember(pm *models.ProjectMember) error

	ListProjectMembers(projectID uint64) ([]models.ProjectMember, error)
}

// CostRepository defines the interface for cost record data access
type CostRepository interface {
	Create(cost *models.CostRecord) error

	FindByID(id uint64) (*models.CostRecord, error)

	List(params utils.PaginationParams) ([]models.CostRecord, error)

	ListByProject(projectID uint64) ([]models.CostRecord, error)

	// ListByProjectBetween returns records with from <= record_date < to.
	ListByProjectBetween(projectID uint64, from, to time.Time) ([]models.CostRecord, error)

	Update(cost *models.CostRecord) error

	Delete(id uint64) error
}

// ActivityRepository defines the interface for the append-only
// activity log
type ActivityRepository interface {
	Create(activity *models.Activity) error

	// List returns activities newest-first.
	List(params utils.PaginationParams) ([]models.Activity, error)

	// ListByContentSubstring returns activities whose content contains
	// the given text, newest-first.
	ListByContentSubstring(text string, params utils.PaginationParams) ([]models.Activity, error)
}

// CostBuckets holds per-type cost sums for one project.
type CostBuckets struct {
	Fixed float64
	Human float64
	Other float64
}

// TaskCounts holds per-project task counters.
type TaskCounts struct {
	Total      int64
	InProgress int64
	Completed  int64
}

// HourSums holds per-project estimated/actual hour totals.
type HourSums struct {
	Estimated float64
	Actual    float64
}

// StatusCount is one row of the task status distribution.
type StatusCount struct {
	Status string
	Count  int64
}

// StatsRepository defines the aggregate queries behind the statistics
// endpoints
type StatsRepository interface {
	// ProjectCostBuckets sums cost amounts into fixed/human/other.
	ProjectCostBuckets(projectID uint64) (CostBuckets, error)

	// ProjectTaskCounts counts a project's tasks, with in_progress and
	// completed broken out.
	ProjectTaskCounts(projectID uint64) (TaskCounts, error)

	// ProjectHourSums totals estimated and actual hours over a
	// project's tasks.
	ProjectHourSums(projectID uint64) (HourSums, error)

	// ProjectIDs returns the ids of all projects.
	ProjectIDs() ([]uint64, error)

	// CountProjectsWithStatus counts projects whose stored status
	// equals the given literal.
	CountProjectsWithStatus(status string) (int64, error)

	// CountTasksIn counts tasks belonging to the given projects,
	// optionally restricted to one status literal.
	CountTasksIn(projectIDs []uint64, status string) (int64, error)

	// SumTaskHoursIn totals hours over tasks in the given projects.
	SumTaskHoursIn(projectIDs []uint64) (HourSums, error)

	// TaskStatusCounts groups tasks in the given projects by status.
	TaskStatusCounts(projectIDs []uint64) ([]StatusCount, error)
}
