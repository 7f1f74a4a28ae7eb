package models

// Department is an organizational unit under a vocational category and an org group.
type Department struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Code       string `gorm:"size:50;not null" json:"code"`
	NameTH     string `gorm:"column:name_th;size:255;not null" json:"name_th"`
	CategoryID uint   `gorm:"not null" json:"category_id"`
	OrgGroupID uint   `gorm:"not null" json:"org_group_id"`
}

// VocationalCategory groups departments by vocational track.
type VocationalCategory struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	NameTH string `gorm:"column:name_th;size:255;not null" json:"name_th"`
}

// OrgGroup is the administrative grouping a department belongs to.
type OrgGroup struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	NameTH string `gorm:"column:name_th;size:255;not null" json:"name_th"`
}

// VocationalField is a field of study offered by departments.
type VocationalField struct {
	Code   string `gorm:"primaryKey;size:50" json:"code"`
	NameTH string `gorm:"column:name_th;size:255;not null" json:"name_th"`
}

// DeptField associates a department with a vocational field.
type DeptField struct {
	DeptID    uint   `gorm:"primaryKey" json:"dept_id"`
	FieldCode string `gorm:"primaryKey;size:50" json:"field_code"`
}
