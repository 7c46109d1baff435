package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/SeanSun10/ProjectManager/internal/models"
	"github.com/SeanSun10/ProjectManager/internal/repository"
	"github.com/SeanSun10/ProjectManager/internal/utils"
)

var ErrTeamMemberNotFound = errors.New("team member not found")

// TeamMemberService handles team member business logic.
type TeamMemberService struct {
	memberRepo repository.TeamMemberRepository
}

// NewTeamMemberService creates a new TeamMemberService.
func NewTeamMemberService(memberRepo repository.TeamMemberRepository) *TeamMemberService {
	return &TeamMemberService{
		memberRepo: memberRepo,
	}
}

// CreateTeamMemberInput represents the fields for a new team member.
type CreateTeamMemberInput struct {
	Name          string
	Role          string
	MonthlySalary float64
	JoinDate      *time.Time
	LeaveDate     *time.Time
}

// Create persists a new team member. JoinDate defaults to now.
func (s *TeamMemberService) Create(input CreateTeamMemberInput) (*models.TeamMember, error) {
	joinDate := time.Now().UTC()
	if input.JoinDate != nil {
		joinDate = *input.JoinDate
	}

	member := &models.TeamMember{
		Name:          input.Name,
		Role:          input.Role,
		MonthlySalary: input.MonthlySalary,
		JoinDate:      joinDate,
		LeaveDate:     input.LeaveDate,
	}
	if err := s.memberRepo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create team member: %w", err)
	}
	return member, nil
}

// List returns team members with pagination.
func (s *TeamMemberService) List(params utils.PaginationParams) ([]models.TeamMember, error) {
	return s.memberRepo.List(params)
}

// Get returns one team member.
func (s *TeamMemberService) Get(id uint64) (*models.TeamMember, error) {
	member, err := s.memberRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamMemberNotFound
		}
		return nil, fmt.Errorf("failed to find team member: %w", err)
	}
	return member, nil
}

// UpdateTeamMemberInput carries a partial update; nil fields are left
// untouched.
type UpdateTeamMemberInput struct {
	Name          *string
	Role          *string
	MonthlySalary *float64
	JoinDate      *time.Time
	LeaveDate     *time.Time
}

// Update applies the provided fields to a team member.
func (s *TeamMemberService) Update(id uint64, input UpdateTeamMemberInput) (*models.TeamMember, error) {
	member, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		member.Name = *input.Name
	}
	if input.Role != nil {
		member.Role = *input.Role
	}
	if input.MonthlySalary != nil {
		member.MonthlySalary = *input.MonthlySalary
	}
	if input.JoinDate != nil {
		member.JoinDate = *input.JoinDate
	}
	if input.LeaveDate != nil {
		member.LeaveDate = input.LeaveDate
	}

	if err := s.memberRepo.Update(member); err != nil {
		return nil, fmt.Errorf("failed to update team member: %w", err)
	}
	return member, nil
}

// Delete deletes a team member.
func (s *TeamMemberService) Delete(id uint64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.memberRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete team member: %w", err)
	}
	return nil
}

// ProjectMemberInput represents the fields linking a member to a
// project.
type ProjectMemberInput struct {
	ProjectID            uint64
	MemberID             uint64
	AllocationPercentage float64
	StartDate            time.Time
	EndDate              *time.Time
}

// AddProjectMember links a team member to a project.
func (s *TeamMemberService) AddProjectMember(input ProjectMemberInput) (*models.ProjectMember, error) {
	pm := &models.ProjectMember{
		ProjectID:            input.ProjectID,
		MemberID:             input.MemberID,
		AllocationPercentage: input.AllocationPercentage,
		StartDate:            input.StartDate,
		EndDate:              input.EndDate,
	}
	if err := s.memberRepo.AddProjectMember(pm); err != nil {
		return nil, fmt.Errorf("failed to add project member: %w", err)
	}
	return pm, nil
}

// ListProjectMembers returns the memberships of one project.
func (s *TeamMemberService) ListProjectMembers(projectID uint64) ([]models.ProjectMember, error) {
	return s.memberRepo.ListProjectMembers(projectID)
}
