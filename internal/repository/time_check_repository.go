package repository

import (
	"seatudy_backend/internal/model"

	"gorm.io/gorm"
)

type TimeCheckRepository struct {
	DB *gorm.DB
}

func NewTimeCheckRepository(db *gorm.DB) *TimeCheckRepository {
	return &TimeCheckRepository{DB: db}
}

// WithTx 返回绑定到事务句柄的仓库视图
func (r *TimeCheckRepository) WithTx(tx *gorm.DB) *TimeCheckRepository {
	return &TimeCheckRepository{DB: tx}
}

// FindByMemberAndDate 按插入顺序返回会员当日的全部记录
func (r *TimeCheckRepository) FindByMemberAndDate(memberID uint, date string) ([]model.TimeCheck, error) {
	var checks []model.TimeCheck
	err := r.DB.Where("member_id = ? AND date = ?", memberID, date).
		Order("id ASC").
		Find(&checks).Error
	return checks, err
}

func (r *TimeCheckRepository) Create(check *model.TimeCheck) error {
	return r.DB.Create(check).Error
}

func (r *TimeCheckRepository) Update(check *model.TimeCheck) error {
	return r.DB.Save(check).Error
}

// LinkToRank 将当日全部记录回填到累计记录
func (r *TimeCheckRepository) LinkToRank(memberID uint, date string, rankID uint) error {
	return r.DB.Model(&model.TimeCheck{}).
		Where("member_id = ? AND date = ?", memberID, date).
		Update("rank_id", rankID).Error
}
