package services

import (
	"testing"

	"github.com/Ferrokwastaken/story-app-api/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryCreateRejectsDuplicateName(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)

	_, err := svc.Create(&dto.CreateCategoryRequest{Name: "Fantasy"})
	require.NoError(t, err)

	_, err = svc.Create(&dto.CreateCategoryRequest{Name: "Fantasy"})
	assert.ErrorIs(t, err, ErrCategoryTaken)
}

func TestCategoryUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)

	category := seedCategory(t, db, "Fantasy")
	other := seedCategory(t, db, "Sci-Fi")

	name := "High Fantasy"
	updated, err := svc.Update(category.ID, &dto.UpdateCategoryRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "High Fantasy", updated.Name)

	taken := other.Name
	_, err = svc.Update(category.ID, &dto.UpdateCategoryRequest{Name: &taken})
	assert.ErrorIs(t, err, ErrCategoryTaken)

	// Re-submitting the current name is not a conflict.
	same := "High Fantasy"
	_, err = svc.Update(category.ID, &dto.UpdateCategoryRequest{Name: &same})
	assert.NoError(t, err)
}

func TestCategoryDeleteRefusedWhileInUse(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)

	category := seedCategory(t, db, "Fantasy")
	seedStory(t, db, "The Long Road", category.ID)

	err := svc.Delete(category.ID)
	assert.ErrorIs(t, err, ErrCategoryInUse)

	// Still present after the refused delete.
	_, err = svc.Get(category.ID)
	require.NoError(t, err)
}

func TestCategoryDeleteWhenUnused(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)

	category := seedCategory(t, db, "Fantasy")

	require.NoError(t, svc.Delete(category.ID))

	_, err := svc.Get(category.ID)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCategoryGetUnknown(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)

	_, err := svc.Get(42)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
