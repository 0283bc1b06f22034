package services

import (
	"testing"

	"github.com/Ferrokwastaken/story-app-api/internal/database"
	"github.com/Ferrokwastaken/story-app-api/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database per test. Max open conns is
// pinned to 1 so every query sees the same :memory: instance.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := models.Category{Name: name}
	require.NoError(t, db.Create(&category).Error)
	return &category
}

func seedStory(t *testing.T, db *gorm.DB, title string, categoryID uint) *models.Story {
	t.Helper()
	story := models.Story{Title: title, CategoryID: categoryID}
	require.NoError(t, db.Create(&story).Error)
	return &story
}

func seedTag(t *testing.T, db *gorm.DB, name string) *models.Tag {
	t.Helper()
	tag := models.Tag{Name: name}
	require.NoError(t, db.Create(&tag).Error)
	return &tag
}

func seedComment(t *testing.T, db *gorm.DB, storyUUID uuid.UUID, content string) *models.Comment {
	t.Helper()
	comment := models.Comment{
		StoryUUID: storyUUID,
		UserUUID:  uuid.New(),
		Content:   content,
	}
	require.NoError(t, db.Create(&comment).Error)
	return &comment
}

func seedUser(t *testing.T, db *gorm.DB, email, password, role string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{
		Name:     "Test User",
		Email:    email,
		Password: string(hash),
		Role:     role,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func pivotStatus(t *testing.T, db *gorm.DB, storyUUID uuid.UUID, tagID uint) (string, bool) {
	t.Helper()
	var pivot models.StoryTag
	err := db.Where("story_uuid = ? AND tag_id = ?", storyUUID, tagID).First(&pivot).Error
	if err != nil {
		return "", false
	}
	return pivot.Status, true
}
