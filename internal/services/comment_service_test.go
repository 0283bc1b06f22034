package services

import (
	"testing"

	"github.com/Ferrokwastaken/story-app-api/internal/dto"
	"github.com/Ferrokwastaken/story-app-api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentCreateAndList(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db)

	category := seedCategory(t, db, "Fantasy")
	story := seedStory(t, db, "The Long Road", category.ID)

	userUUID := uuid.New()
	comment, err := svc.Create(story.UUID, &dto.CreateCommentRequest{
		Content:  "great story",
		UserUUID: userUUID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, story.UUID, comment.StoryUUID)
	assert.Equal(t, userUUID, comment.UserUUID)
	assert.Zero(t, comment.Reports)

	comments, err := svc.ListForStory(story.UUID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "great story", comments[0].Content)

	_, err = svc.Create(uuid.New(), &dto.CreateCommentRequest{
		Content:  "orphan",
		UserUUID: userUUID.String(),
	})
	assert.ErrorIs(t, err, ErrStoryNotFound)
}

func TestCommentUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db)

	category := seedCategory(t, db, "Fantasy")
	story := seedStory(t, db, "The Long Road", category.ID)
	comment := seedComment(t, db, story.UUID, "first draft")

	content := "second draft"
	updated, err := svc.Update(comment.UUID, &dto.UpdateCommentRequest{Content: &content})
	require.NoError(t, err)
	assert.Equal(t, "second draft", updated.Content)

	_, err = svc.Update(uuid.New(), &dto.UpdateCommentRequest{Content: &content})
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestCommentReportIncrementsCounter(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db)

	category := seedCategory(t, db, "Fantasy")
	story := seedStory(t, db, "The Long Road", category.ID)
	comment := seedComment(t, db, story.UUID, "rude remark")

	req := &dto.CreateReportRequest{Reason: "abuse", UserUUID: uuid.NewString()}

	_, err := svc.Report(comment.UUID, req)
	require.NoError(t, err)
	_, err = svc.Report(comment.UUID, req)
	require.NoError(t, err)

	var reloaded models.Comment
	require.NoError(t, db.First(&reloaded, "uuid = ?", comment.UUID).Error)
	assert.Equal(t, 2, reloaded.Reports)

	// Each report is also a row of its own; the counter is not the source.
	var rows int64
	require.NoError(t, db.Model(&models.CommentReport{}).
		Where("comment_uuid = ?", comment.UUID).Count(&rows).Error)
	assert.EqualValues(t, 2, rows)
}

func TestCommentDeleteRemovesReports(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db)

	category := seedCategory(t, db, "Fantasy")
	story := seedStory(t, db, "The Long Road", category.ID)
	comment := seedComment(t, db, story.UUID, "rude remark")

	_, err := svc.Report(comment.UUID, &dto.CreateReportRequest{
		Reason:   "abuse",
		UserUUID: uuid.NewString(),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(comment.UUID))

	var rows int64
	require.NoError(t, db.Model(&models.CommentReport{}).
		Where("comment_uuid = ?", comment.UUID).Count(&rows).Error)
	assert.Zero(t, rows)

	_, err = svc.Get(comment.UUID)
	assert.ErrorIs(t, err, ErrCommentNotFound)
}
