package repository

import (
	"gorm.io/gorm"

	"github.com/SeanSun10/ProjectManager/internal/database"
	"github.com/SeanSun10/ProjectManager/internal/models"
	"github.com/SeanSun10/ProjectManager/internal/utils"
)

// GormTeamMemberRepository is a GORM implementation of TeamMemberRepository
type GormTeamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository creates a new TeamMemberRepository
func NewTeamMemberRepository(db *gorm.DB) TeamMemberRepository {
	return &GormTeamMemberRepository{db: db}
}

// Create creates a new team member
func (r *GormTeamMemberRepository) Create(member *models.TeamMember) error {
	return r.db.Create(member).Error
}

// FindByID finds a team member by ID
func (r *GormTeamMemberRepository) FindByID(id uint64) (*models.TeamMember, error) {
	var member models.TeamMember
	if err := r.db.First(&member, id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// List retrieves team members with pagination
func (r *GormTeamMemberRepository) List(params utils.PaginationParams) ([]models.TeamMember, error) {
	var members []models.TeamMember
	if err := r.db.Scopes(database.Paginate(params)).Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// Update updates a team member
func (r *GormTeamMemberRepository) Update(member *models.TeamMember) error {
	return r.db.Save(member).Error
}

// Delete deletes a team member
func (r *GormTeamMemberRepository) Delete(id uint64) error {
	return r.db.Delete(&models.TeamMember{}, id).Error
}

// AddProjectMember links a team member to a project
func (r *GormTeamMemberRepository) AddProjectMember(pm *models.ProjectMember) error {
	return r.db.Create(pm).Error
}

// ListProjectMembers lists the memberships of one project
func (r *GormTeamMemberRepository) ListProjectMembers(projectID uint64) ([]models.ProjectMember, error) {
	var memberships []models.ProjectMember
	err := r.db.Preload("Member").
		Where("project_id = ?", projectID).
		Find(&memberships).Error
	if err != nil {
		return nil, err
	}
	return memberships, nil
}
