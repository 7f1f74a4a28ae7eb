package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/okoak/evaluation-api/internal/models"
)

// DepartmentRow is a department joined with its category and org-group names.
type DepartmentRow struct {
	ID           uint   `json:"id"`
	Code         string `json:"code"`
	NameTH       string `json:"name_th"`
	CategoryID   uint   `json:"category_id"`
	OrgGroupID   uint   `json:"org_group_id"`
	CategoryName string `json:"category_name"`
	OrgGroupName string `json:"org_group_name"`
}

// DepartmentRepository defines the read-only department lookups.
type DepartmentRepository interface {
	List(ctx context.Context) ([]DepartmentRow, error)
	GetRow(ctx context.Context, id uint) (DepartmentRow, error)
	ListFields(ctx context.Context, deptID uint) ([]models.VocationalField, error)
}

type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository instantiates a GORM-backed repository.
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("departments AS d").
		Joins("JOIN vocational_categories AS vc ON vc.id = d.category_id").
		Joins("JOIN org_groups AS og ON og.id = d.org_group_id").
		Select("d.id, d.code, d.name_th, d.category_id, d.org_group_id, " +
			"vc.name_th AS category_name, og.name_th AS org_group_name")
}

func (r *departmentRepository) List(ctx context.Context) ([]DepartmentRow, error) {
	var rows []DepartmentRow
	if err := r.joined(ctx).Order("d.id DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *departmentRepository) GetRow(ctx context.Context, id uint) (DepartmentRow, error) {
	var row DepartmentRow
	result := r.joined(ctx).Where("d.id = ?", id).Scan(&row)
	if result.Error != nil {
		return DepartmentRow{}, result.Error
	}
	if result.RowsAffected == 0 {
		return DepartmentRow{}, gorm.ErrRecordNotFound
	}

	return row, nil
}

func (r *departmentRepository) ListFields(ctx context.Context, deptID uint) ([]models.VocationalField, error) {
	var fields []models.VocationalField
	err := r.db.WithContext(ctx).
		Table("dept_fields AS df").
		Joins("JOIN vocational_fields AS vf ON vf.code = df.field_code").
		Where("df.dept_id = ?", deptID).
		Select("vf.code, vf.name_th").
		Scan(&fields).Error
	if err != nil {
		return nil, err
	}

	return fields, nil
}
