package services

import (
	"testing"

	"github.com/Ferrokwastaken/story-app-api/internal/dto"
	"github.com/Ferrokwastaken/story-app-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagCreateRejectsDuplicateName(t *testing.T) {
	db := newTestDB(t)
	svc := NewTagService(db)

	_, err := svc.Create(&dto.CreateTagRequest{Name: "adventure"})
	require.NoError(t, err)

	_, err = svc.Create(&dto.CreateTagRequest{Name: "adventure"})
	assert.ErrorIs(t, err, ErrTagTaken)
}

func TestTagDeleteRefusedWhilePivotsExist(t *testing.T) {
	db := newTestDB(t)
	svc := NewTagService(db)

	category := seedCategory(t, db, "Fantasy")
	story := seedStory(t, db, "The Long Road", category.ID)
	tag := seedTag(t, db, "adventure")

	// A pending attachment is enough to block deletion.
	require.NoError(t, db.Create(&models.StoryTag{
		StoryUUID: story.UUID,
		TagID:     tag.ID,
		Status:    models.TagStatusPending,
	}).Error)

	err := svc.Delete(tag.ID)
	assert.ErrorIs(t, err, ErrTagInUse)

	_, err = svc.Get(tag.ID)
	require.NoError(t, err)
}

func TestTagDeleteWhenUnused(t *testing.T) {
	db := newTestDB(t)
	svc := NewTagService(db)

	tag := seedTag(t, db, "adventure")

	require.NoError(t, svc.Delete(tag.ID))

	_, err := svc.Get(tag.ID)
	assert.ErrorIs(t, err, ErrTagNotFound)
}

func TestTagUpdateNameConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewTagService(db)

	tag := seedTag(t, db, "adventure")
	other := seedTag(t, db, "epic")

	taken := other.Name
	_, err := svc.Update(tag.ID, &dto.UpdateTagRequest{Name: &taken})
	assert.ErrorIs(t, err, ErrTagTaken)

	fresh := "quest"
	updated, err := svc.Update(tag.ID, &dto.UpdateTagRequest{Name: &fresh})
	require.NoError(t, err)
	assert.Equal(t, "quest", updated.Name)
}
