package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/okoak/evaluation-api/internal/models"
)

// openTestDB opens a per-test in-memory database with the full schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.EvaluationPeriod{},
		&models.EvaluationTopic{},
		&models.Indicator{},
		&models.EvidenceType{},
		&models.IndicatorEvidence{},
		&models.Assignment{},
		&models.EvaluationResult{},
		&models.VocationalCategory{},
		&models.OrgGroup{},
		&models.Department{},
		&models.VocationalField{},
		&models.DeptField{},
	))

	return db
}

func createUser(t *testing.T, db *gorm.DB, username string, role models.Role) models.User {
	t.Helper()

	user := models.User{Username: username, NameTH: "ชื่อ " + username, Role: role}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createPeriod(t *testing.T, db *gorm.DB, code string) models.EvaluationPeriod {
	t.Helper()

	period := models.EvaluationPeriod{
		Code:         code,
		NameTH:       "รอบ " + code,
		BuddhistYear: 2568,
		StartDate:    "2025-10-01",
		EndDate:      "2026-03-31",
	}
	require.NoError(t, db.Create(&period).Error)
	return period
}
