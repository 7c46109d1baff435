package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/SeanSun10/ProjectManager/internal/models"
	"github.com/SeanSun10/ProjectManager/internal/utils"
)

func TestRuleFor(t *testing.T) {
	rule, ok := RuleFor(EntityProject)
	require.True(t, ok)
	require.Equal(t, "name", rule.WatchedField)
	require.Equal(t, "project_created", rule.CreatedType)

	rule, ok = RuleFor(EntityTask)
	require.True(t, ok)
	require.Equal(t, "status", rule.WatchedField)
	require.Equal(t, "task_updated", rule.UpdatedType)

	_, ok = RuleFor(EntityKind("milestone"))
	require.False(t, ok)
}

func TestActivityService_RecordCreated(t *testing.T) {
	db := newTestDB(t)
	svc := newActivityService(db)

	activity, err := svc.RecordCreated(1, EntityProject, "Apollo")
	require.NoError(t, err)
	require.Equal(t, "project_created", activity.Type)
	require.Contains(t, activity.Content, "Apollo")
	require.Equal(t, uint64(1), activity.UserID)

	activity, err = svc.RecordCreated(2, EntityTask, "Write docs")
	require.NoError(t, err)
	require.Equal(t, "task_created", activity.Type)
	require.Contains(t, activity.Content, "Write docs")

	require.Equal(t, int64(2), countActivities(t, db))
}

func TestActivityService_RecordWatchedChange(t *testing.T) {
	db := newTestDB(t)
	svc := newActivityService(db)

	activity, err := svc.RecordWatchedChange(1, EntityTask, "Write docs", "todo", "done")
	require.NoError(t, err)
	require.NotNil(t, activity)
	require.Equal(t, "task_updated", activity.Type)
	require.Contains(t, activity.Content, "Write docs")
	require.Contains(t, activity.Content, "done")

	require.Equal(t, int64(1), countActivities(t, db))
}

func TestActivityService_RecordWatchedChangeUnchanged(t *testing.T) {
	db := newTestDB(t)
	svc := newActivityService(db)

	activity, err := svc.RecordWatchedChange(1, EntityTask, "Write docs", "todo", "todo")
	require.NoError(t, err)
	require.Nil(t, activity)

	require.Equal(t, int64(0), countActivities(t, db))
}

func TestActivityService_ListPagination(t *testing.T) {
	db := newTestDB(t)
	svc := newActivityService(db)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		activity := &models.Activity{
			UserID:    1,
			Type:      "note",
			Content:   "entry",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(activity).Error)
	}

	first, err := svc.List(utils.PaginationParams{Skip: 0, Limit: 2})
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := svc.List(utils.PaginationParams{Skip: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, second, 2)

	// Newest first, no overlap across pages.
	require.True(t, first[0].CreatedAt.After(first[1].CreatedAt))
	require.True(t, first[1].CreatedAt.After(second[0].CreatedAt))
	for _, a := range first {
		for _, b := range second {
			require.NotEqual(t, a.ID, b.ID)
		}
	}
}
