package services

import (
	"fmt"

	"github.com/SeanSun10/ProjectManager/internal/models"
	"github.com/SeanSun10/ProjectManager/internal/repository"
	"github.com/SeanSun10/ProjectManager/internal/utils"
)

// EntityKind identifies the entity types the activity log watches.
type EntityKind string

const (
	EntityProject EntityKind = "project"
	EntitySprint  EntityKind = "sprint"
	EntityTask    EntityKind = "task"
)

// ChangeRule describes, for one entity kind, which activity types get
// emitted and how their content is rendered. Creations always record;
// updates record only when the single watched field changed. Content
// embeds the entity's identity text, which is what the project
// activity feed later matches on.
type ChangeRule struct {
	// WatchedField is the field whose change triggers an update entry.
	WatchedField string

	CreatedType string
	UpdatedType string

	CreatedContent func(identity string) string
	UpdatedContent func(identity, oldValue, newValue string) string
}

var changeRules = map[EntityKind]ChangeRule{
	EntityProject: {
		WatchedField: "name",
		CreatedType:  "project_created",
		UpdatedType:  "project_updated",
		CreatedContent: func(name string) string {
			return fmt.Sprintf("created project %q", name)
		},
		UpdatedContent: func(_, oldName, newName string) string {
			return fmt.Sprintf("renamed project %q to %q", oldName, newName)
		},
	},
	EntitySprint: {
		WatchedField: "name",
		CreatedType:  "sprint_created",
		UpdatedType:  "sprint_updated",
		CreatedContent: func(name string) string {
			return fmt.Sprintf("created sprint %q", name)
		},
		UpdatedContent: func(_, oldName, newName string) string {
			return fmt.Sprintf("renamed sprint %q to %q", oldName, newName)
		},
	},
	EntityTask: {
		WatchedField: "status",
		CreatedType:  "task_created",
		UpdatedType:  "task_updated",
		CreatedContent: func(title string) string {
			return fmt.Sprintf("created task %q", title)
		},
		UpdatedContent: func(title, _, newStatus string) string {
			return fmt.Sprintf("updated task %q status to %q", title, newStatus)
		},
	},
}

// RuleFor exposes the change rule of one entity kind.
func RuleFor(kind EntityKind) (ChangeRule, bool) {
	rule, ok := changeRules[kind]
	return rule, ok
}

// ActivityService appends immutable activity log entries.
type ActivityService struct {
	activityRepo repository.ActivityRepository
}

// NewActivityService creates a new ActivityService.
func NewActivityService(activityRepo repository.ActivityRepository) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
	}
}

// Record appends an activity entry. Storage errors propagate; nothing
// is retried or swallowed.
func (s *ActivityService) Record(userID uint64, activityType, content string) (*models.Activity, error) {
	activity := &models.Activity{
		UserID:  userID,
		Type:    activityType,
		Content: content,
	}
	if err := s.activityRepo.Create(activity); err != nil {
		return nil, fmt.Errorf("failed to record activity: %w", err)
	}
	return activity, nil
}

// RecordCreated records a creation entry for the given entity kind.
func (s *ActivityService) RecordCreated(userID uint64, kind EntityKind, identity string) (*models.Activity, error) {
	rule, ok := changeRules[kind]
	if !ok {
		return nil, fmt.Errorf("no change rule for entity kind %q", kind)
	}
	return s.Record(userID, rule.CreatedType, rule.CreatedContent(identity))
}

// RecordWatchedChange records an update entry when the watched field
// of the given entity kind changed. It returns (nil, nil) when the
// value is unchanged; changes to any other field never reach here.
func (s *ActivityService) RecordWatchedChange(userID uint64, kind EntityKind, identity, oldValue, newValue string) (*models.Activity, error) {
	rule, ok := changeRules[kind]
	if !ok {
		return nil, fmt.Errorf("no change rule for entity kind %q", kind)
	}
	if oldValue == newValue {
		return nil, nil
	}
	return s.Record(userID, rule.UpdatedType, rule.UpdatedContent(identity, oldValue, newValue))
}

// List returns activities newest-first.
func (s *ActivityService) List(params utils.PaginationParams) ([]models.Activity, error) {
	return s.activityRepo.List(params)
}
