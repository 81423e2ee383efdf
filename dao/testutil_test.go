package dao

import (
	"strconv"
	"testing"
	"time"

	"voteboard/models"
	"voteboard/pkg/snowflake"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// :memory: 每个连接是独立库, 限制单连接
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Status{},
		&models.Idea{},
		&models.Vote{},
		&models.Comment{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string, admin bool) *models.User {
	t.Helper()
	user := &models.User{
		ID:      snowflake.GenID(),
		Name:    name,
		Email:   name + "@example.com",
		IsAdmin: admin,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := &models.Category{ID: snowflake.GenID(), Name: name}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return category
}

func seedStatus(t *testing.T, db *gorm.DB, name, classes string) *models.Status {
	t.Helper()
	status := &models.Status{ID: snowflake.GenID(), Name: name, Classes: classes}
	if err := db.Create(status).Error; err != nil {
		t.Fatalf("seed status: %v", err)
	}
	return status
}

type ideaOpt func(*models.Idea)

func withCreatedAt(ts time.Time) ideaOpt {
	return func(i *models.Idea) { i.CreatedAt = ts }
}

func withSpamReports(n int) ideaOpt {
	return func(i *models.Idea) { i.SpamReports = n }
}

func seedIdea(t *testing.T, db *gorm.DB, title string, user *models.User, category *models.Category, status *models.Status, opts ...ideaOpt) *models.Idea {
	t.Helper()
	id := snowflake.GenID()
	idea := &models.Idea{
		ID:          id,
		UserID:      user.ID,
		CategoryID:  category.ID,
		StatusID:    status.ID,
		Title:       title,
		Slug:        title + "-" + strconv.FormatInt(id, 10),
		Description: "description of " + title,
		CreatedAt:   time.Now(),
	}
	for _, opt := range opts {
		opt(idea)
	}
	if err := db.Create(idea).Error; err != nil {
		t.Fatalf("seed idea %q: %v", title, err)
	}
	return idea
}

func seedVote(t *testing.T, db *gorm.DB, idea *models.Idea, user *models.User) {
	t.Helper()
	if err := db.Create(&models.Vote{IdeaID: idea.ID, UserID: user.ID}).Error; err != nil {
		t.Fatalf("seed vote: %v", err)
	}
}

func seedComment(t *testing.T, db *gorm.DB, idea *models.Idea, user *models.User, body string, spamReports int) *models.Comment {
	t.Helper()
	comment := &models.Comment{
		ID:          snowflake.GenID(),
		IdeaID:      idea.ID,
		UserID:      user.ID,
		Body:        body,
		SpamReports: spamReports,
		CreatedAt:   time.Now(),
	}
	if err := db.Create(comment).Error; err != nil {
		t.Fatalf("seed comment: %v", err)
	}
	return comment
}
