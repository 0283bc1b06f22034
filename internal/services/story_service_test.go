package services

import (
	"testing"

	"github.com/Ferrokwastaken/story-app-api/internal/dto"
	"github.com/Ferrokwastaken/story-app-api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestStoryCreateWithTags(t *testing.T) {
	db := newTestDB(t)
	svc := NewStoryService(db)

	category := seedCategory(t, db, "Fantasy")
	tag := seedTag(t, db, "adventure")

	story, err := svc.Create(&dto.StoryRequest{
		Title:      "The Long Road",
		CategoryID: category.ID,
		Tags:       []uint{tag.ID},
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, story.UUID)

	// Author-chosen tags are attached approved, skipping moderation.
	status, ok := pivotStatus(t, db, story.UUID, tag.ID)
	require.True(t, ok)
	assert.Equal(t, models.TagStatusApproved, status)
}

func TestStoryCreateValidatesReferences(t *testing.T) {
	db := newTestDB(t)
	svc := NewStoryService(db)

	category := seedCategory(t, db, "Fantasy")

	_, err := svc.Create(&dto.StoryRequest{Title: "Orphan", CategoryID: category.ID + 99})
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	_, err = svc.Create(&dto.StoryRequest{
		Title:      "Bad Tag",
		CategoryID: category.ID,
		Tags:       []uint{12345},
	})
	assert.ErrorIs(t, err, ErrTagNotFound)

	// The failed tag sync rolls the story back too.
	var stories int64
	require.NoError(t, db.Model(&models.Story{}).Count(&stories).Error)
	assert.Zero(t, stories)
}

func TestStoryGetIncludesDerivedFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewStoryService(db)

	category := seedCategory(t, db, "Fantasy")
	story := seedStory(t, db, "The Long Road", category.ID)
	tag := seedTag(t, db, "adventure")
	seedComment(t, db, story.UUID, "first!")

	require.NoError(t, db.Create(&models.StoryTag{
		StoryUUID: story.UUID,
		TagID:     tag.ID,
		Status:    models.TagStatusApproved,
	}).Error)

	_, err := svc.Rate(story.UUID, 4)
	require.NoError(t, err)
	_, err = svc.Rate(story.UUID, 2)
	require.NoError(t, err)

	detail, err := svc.Get(story.UUID)
	require.NoError(t, err)
	assert.Equal(t, story.Title, detail.Title)
	require.NotNil(t, detail.Category)
	require.Len(t, detail.Tags, 1)
	assert.Equal(t, tag.Name, detail.Tags[0].Name)
	require.Len(t, detail.Comments, 1)
	require.NotNil(t, detail.AverageRating)
	assert.InDelta(t, 3.0, *detail.AverageRating, 0.001)
}

func TestStoryGetOnlyApprovedTagsVisible(t *testing.T) {
	db := newTestDB(t)
	svc := NewStoryService(db)

	category := seedCategory(t, db, "Fantasy")
	story := seedStory(t, db, "The Long Road", category.ID)
	pending := seedTag(t, db, "pending-tag")

	require.NoError(t, db.Create(&models.StoryTag{
		StoryUUID: story.UUID,
		TagID:     pending.ID,
		Status:    models.TagStatusPending,
	}).Error)

	detail, err := svc.Get(story.UUID)
	require.NoError(t, err)
	assert.Empty(t, detail.Tags)
	assert.Nil(t, detail.AverageRating)
}

func TestStoryListFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewStoryService(db)

	fantasy := seedCategory(t, db, "Fantasy")
	scifi := seedCategory(t, db, "Sci-Fi")
	seedStory(t, db, "The Long Road", fantasy.ID)
	seedStory(t, db, "Starfall", scifi.ID)

	items, total, err := svc.List(StoryFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, items, 2)

	items, total, err = svc.List(StoryFilter{Title: "Star"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, "Starfall", items[0].Title)

	items, total, err = svc.List(StoryFilter{CategoryID: fantasy.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, "The Long Road", items[0].Title)
	require.NotNil(t, items[0].Category)
	assert.Equal(t, "Fantasy", items[0].Category.Name)
	assert.NotEmpty(t, items[0].CreatedAtFormatted)
}

func TestStoryUpdateResyncsTags(t *testing.T) {
	db := newTestDB(t)
	svc := NewStoryService(db)

	category := seedCategory(t, db, "Fantasy")
	story := seedStory(t, db, "The Long Road", category.ID)
	oldTag := seedTag(t, db, "old")
	newTag := seedTag(t, db, "new")
	pendingTag := seedTag(t, db, "queued")

	require.NoError(t, db.Create(&models.StoryTag{
		StoryUUID: story.UUID, TagID: oldTag.ID, Status: models.TagStatusApproved,
	}).Error)
	require.NoError(t, db.Create(&models.StoryTag{
		StoryUUID: story.UUID, TagID: pendingTag.ID, Status: models.TagStatusPending,
	}).Error)

	updated, err := svc.Update(story.UUID, &dto.StoryRequest{
		Title:      "The Longer Road",
		CategoryID: category.ID,
		Tags:       []uint{newTag.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, "The Longer Road", updated.Title)

	_, ok := pivotStatus(t, db, story.UUID, oldTag.ID)
	assert.False(t, ok, "replaced approved tag should be gone")

	status, ok := pivotStatus(t, db, story.UUID, newTag.ID)
	require.True(t, ok)
	assert.Equal(t, models.TagStatusApproved, status)

	// The moderation queue is not an author's to clear.
	status, ok = pivotStatus(t, db, story.UUID, pendingTag.ID)
	require.True(t, ok)
	assert.Equal(t, models.TagStatusPending, status)
}

func TestStoryUpdateWithoutTagsLeavesPivotsAlone(t *testing.T) {
	db := newTestDB(t)
	svc := NewStoryService(db)

	category := seedCategory(t, db, "Fantasy")
	story := seedStory(t, db, "The Long Road", category.ID)
	tag := seedTag(t, db, "adventure")
	require.NoError(t, db.Create(&models.StoryTag{
		StoryUUID: story.UUID, TagID: tag.ID, Status: models.TagStatusApproved,
	}).Error)

	_, err := svc.Update(story.UUID, &dto.StoryRequest{
		Title:      "Renamed",
		CategoryID: category.ID,
	})
	require.NoError(t, err)

	status, ok := pivotStatus(t, db, story.UUID, tag.ID)
	require.True(t, ok)
	assert.Equal(t, models.TagStatusApproved, status)
}

func TestStoryDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	svc := NewStoryService(db)

	category := seedCategory(t, db, "Fantasy")
	story := seedStory(t, db, "The Long Road", category.ID)
	tag := seedTag(t, db, "adventure")
	comment := seedComment(t, db, story.UUID, "first!")

	require.NoError(t, db.Create(&models.StoryTag{
		StoryUUID: story.UUID, TagID: tag.ID, Status: models.TagStatusPending,
	}).Error)
	require.NoError(t, db.Create(&models.StoryReport{
		StoryUUID: story.UUID, UserUUID: uuid.New(), Reason: "spam",
		Status: models.ReportStatusPending,
	}).Error)
	require.NoError(t, db.Create(&models.CommentReport{
		CommentUUID: comment.UUID, Reason: "abuse",
	}).Error)
	_, err := svc.Rate(story.UUID, 5)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(story.UUID))

	for _, probe := range []struct {
		name  string
		model interface{}
	}{
		{"comments", &models.Comment{}},
		{"comment reports", &models.CommentReport{}},
		{"pivots", &models.StoryTag{}},
		{"story reports", &models.StoryReport{}},
		{"ratings", &models.StoryRating{}},
	} {
		var rows int64
		require.NoError(t, db.Model(probe.model).Count(&rows).Error)
		assert.Zero(t, rows, "expected no %s after story deletion", probe.name)
	}

	err = db.First(&models.Story{}, "uuid = ?", story.UUID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// The tag itself survives; only the attachment is gone.
	require.NoError(t, db.First(&models.Tag{}, tag.ID).Error)
}

func TestStoryReport(t *testing.T) {
	db := newTestDB(t)
	svc := NewStoryService(db)

	category := seedCategory(t, db, "Fantasy")
	story := seedStory(t, db, "The Long Road", category.ID)

	reporter := uuid.NewString()
	report, err := svc.Report(story.UUID, &dto.CreateReportRequest{
		Reason:   "plagiarism",
		UserUUID: reporter,
	})
	require.NoError(t, err)
	assert.Equal(t, story.UUID, report.StoryUUID)
	assert.Equal(t, reporter, report.UserUUID.String())
	assert.Equal(t, models.ReportStatusPending, report.Status)

	_, err = svc.Report(uuid.New(), &dto.CreateReportRequest{
		Reason:   "plagiarism",
		UserUUID: reporter,
	})
	assert.ErrorIs(t, err, ErrStoryNotFound)
}

func TestStoryRateBounds(t *testing.T) {
	db := newTestDB(t)
	svc := NewStoryService(db)

	category := seedCategory(t, db, "Fantasy")
	story := seedStory(t, db, "The Long Road", category.ID)

	record, err := svc.Rate(story.UUID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, record.Rating)

	_, err = svc.Rate(uuid.New(), 3)
	assert.ErrorIs(t, err, ErrStoryNotFound)
}
