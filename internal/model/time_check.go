package model

// TimeCheck 一次入座尝试的记录，按会员、逻辑日期追加。
// 同一会员同一时刻最多只有一条 CheckOut 为空的记录。
// swagger:model TimeCheck
type TimeCheck struct {
	BaseModel
	MemberID uint    `gorm:"index:idx_time_checks_member_date;not null" json:"memberId"`
	Date     string  `gorm:"size:10;index:idx_time_checks_member_date;not null" json:"date"` // yyyy-MM-dd 逻辑日期
	CheckIn  string  `gorm:"size:8;not null" json:"checkIn"`                                 // HH:mm:ss
	CheckOut *string `gorm:"size:8" json:"checkOut"`                                         // 未离座时为 NULL
	RankID   *uint   `gorm:"index" json:"-"`                                                 // 离座时回填，指向当日累计记录
}

func (TimeCheck) TableName() string {
	return "time_checks"
}

// Open 是否仍在座（尚未离座）
func (t *TimeCheck) Open() bool {
	return t.CheckOut == nil
}
