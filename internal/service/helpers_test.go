package service

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/okoak/evaluation-api/internal/models"
)

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

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

func seedUser(t *testing.T, db *gorm.DB, username string, role models.Role) models.User {
	t.Helper()

	user := models.User{Username: username, NameTH: "ชื่อ " + username, Role: role}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedPeriod(t *testing.T, db *gorm.DB, code string) models.EvaluationPeriod {
	t.Helper()

	period := models.EvaluationPeriod{
		Code:         code,
		NameTH:       "รอบการประเมิน " + code,
		BuddhistYear: 2568,
		StartDate:    "2025-10-01",
		EndDate:      "2026-03-31",
		IsActive:     true,
	}
	require.NoError(t, db.Create(&period).Error)
	return period
}

func seedTopic(t *testing.T, db *gorm.DB, code string) models.EvaluationTopic {
	t.Helper()

	topic := models.EvaluationTopic{Code: code, TitleTH: "ด้าน " + code, Weight: 50, Active: true}
	require.NoError(t, db.Create(&topic).Error)
	return topic
}

func seedIndicator(t *testing.T, db *gorm.DB, topicID uint, code string) models.Indicator {
	t.Helper()

	indicator := models.Indicator{
		TopicID:  topicID,
		Code:     code,
		NameTH:   "ตัวชี้วัด " + code,
		Type:     models.IndicatorTypeScore1To4,
		Weight:   1,
		MinScore: 1,
		MaxScore: 4,
		Active:   true,
	}
	require.NoError(t, db.Create(&indicator).Error)
	return indicator
}

func seedDepartment(t *testing.T, db *gorm.DB, code string) models.Department {
	t.Helper()

	category := models.VocationalCategory{NameTH: "ประเภทวิชา"}
	require.NoError(t, db.Create(&category).Error)
	group := models.OrgGroup{NameTH: "ฝ่ายวิชาการ"}
	require.NoError(t, db.Create(&group).Error)

	department := models.Department{
		Code:       code,
		NameTH:     "แผนก " + code,
		CategoryID: category.ID,
		OrgGroupID: group.ID,
	}
	require.NoError(t, db.Create(&department).Error)
	return department
}

func seedEvidenceType(t *testing.T, db *gorm.DB, code string) models.EvidenceType {
	t.Helper()

	evidenceType := models.EvidenceType{Code: code, NameTH: "หลักฐาน " + code}
	require.NoError(t, db.Create(&evidenceType).Error)
	return evidenceType
}
