package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SeanSun10/ProjectManager/internal/constants"
	apierrors "github.com/SeanSun10/ProjectManager/internal/errors"
	"github.com/SeanSun10/ProjectManager/internal/services"
	"github.com/SeanSun10/ProjectManager/internal/utils"
)

type TeamMemberHandler struct {
	memberService *services.TeamMemberService
}

func NewTeamMemberHandler(memberService *services.TeamMemberService) *TeamMemberHandler {
	return &TeamMemberHandler{
		memberService: memberService,
	}
}

func respondTeamMemberError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrTeamMemberNotFound) {
		apierrors.NotFound(c, err.Error())
		return
	}
	apierrors.InternalError(c, "")
}

// CreateTeamMember creates a team member; join_date defaults to now
func (h *TeamMemberHandler) CreateTeamMember(c *gin.Context) {
	var req struct {
		Name          string     `json:"name" binding:"required"`
		Role          string     `json:"role"`
		MonthlySalary float64    `json:"monthly_salary"`
		JoinDate      *time.Time `json:"join_date"`
		LeaveDate     *time.Time `json:"leave_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	member, err := h.memberService.Create(services.CreateTeamMemberInput{
		Name:          req.Name,
		Role:          req.Role,
		MonthlySalary: req.MonthlySalary,
		JoinDate:      req.JoinDate,
		LeaveDate:     req.LeaveDate,
	})
	if err != nil {
		respondTeamMemberError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// ListTeamMembers returns team members with skip/limit pagination
func (h *TeamMemberHandler) ListTeamMembers(c *gin.Context) {
	params := utils.GetPaginationParams(c, constants.DefaultListLimit)

	members, err := h.memberService.List(params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch team members")
		return
	}

	c.JSON(http.StatusOK, members)
}

// GetTeamMember returns one team member by ID
func (h *TeamMemberHandler) GetTeamMember(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	member, err := h.memberService.Get(id)
	if err != nil {
		respondTeamMemberError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// UpdateTeamMember applies a partial update to a team member
func (h *TeamMemberHandler) UpdateTeamMember(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Name          *string    `json:"name"`
		Role          *string    `json:"role"`
		MonthlySalary *float64   `json:"monthly_salary"`
		JoinDate      *time.Time `json:"join_date"`
		LeaveDate     *time.Time `json:"leave_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	member, err := h.memberService.Update(id, services.UpdateTeamMemberInput{
		Name:          req.Name,
		Role:          req.Role,
		MonthlySalary: req.MonthlySalary,
		JoinDate:      req.JoinDate,
		LeaveDate:     req.LeaveDate,
	})
	if err != nil {
		respondTeamMemberError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// DeleteTeamMember deletes a team member
func (h *TeamMemberHandler) DeleteTeamMember(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.memberService.Delete(id); err != nil {
		respondTeamMemberError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddProjectMember links a team member to a project
func (h *TeamMemberHandler) AddProjectMember(c *gin.Context) {
	var req struct {
		ProjectID            uint64     `json:"project_id" binding:"required"`
		MemberID             uint64     `json:"member_id" binding:"required"`
		AllocationPercentage float64    `json:"allocation_percentage"`
		StartDate            time.Time  `json:"start_date" binding:"required"`
		EndDate              *time.Time `json:"end_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	pm, err := h.memberService.AddProjectMember(services.ProjectMemberInput{
		ProjectID:            req.ProjectID,
		MemberID:             req.MemberID,
		AllocationPercentage: req.AllocationPercentage,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
	})
	if err != nil {
		apierrors.InternalError(c, "Failed to add project member")
		return
	}

	c.JSON(http.StatusCreated, pm)
}

// ListProjectMembers returns the memberships of one project
func (h *TeamMemberHandler) ListProjectMembers(c *gin.Context) {
	projectID, ok := parseIDParam(c, "project_id")
	if !ok {
		return
	}

	members, err := h.memberService.ListProjectMembers(projectID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch project members")
		return
	}

	c.JSON(http.StatusOK, members)
}
