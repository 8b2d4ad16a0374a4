package repository

import (
	"seatudy_backend/internal/model"

	"gorm.io/gorm"
)

type RankRepository struct {
	DB *gorm.DB
}

func NewRankRepository(db *gorm.DB) *RankRepository {
	return &RankRepository{DB: db}
}

func (r *RankRepository) WithTx(tx *gorm.DB) *RankRepository {
	return &RankRepository{DB: tx}
}

func (r *RankRepository) FindByMemberAndDate(memberID uint, date string) (*model.Rank, error) {
	var rank model.Rank
	err := r.DB.Where("member_id = ? AND date = ?", memberID, date).First(&rank).Error
	if err != nil {
		return nil, err
	}
	return &rank, nil
}

func (r *RankRepository) FindAllByMember(memberID uint) ([]model.Rank, error) {
	var ranks []model.Rank
	err := r.DB.Where("member_id = ?", memberID).Order("date ASC").Find(&ranks).Error
	return ranks, err
}

func (r *RankRepository) Create(rank *model.Rank) error {
	return r.DB.Create(rank).Error
}

func (r *RankRepository) Update(rank *model.Rank) error {
	return r.DB.Save(rank).Error
}

// WeeklyRankRow 周榜聚合行
type WeeklyRankRow struct {
	MemberID     uint   `json:"memberId"`
	Nickname     string `json:"nickname"`
	StudySeconds int    `json:"studySeconds"`
}

// SumWeekByMember 按会员汇总某周榜分桶的学习秒数，降序
func (r *RankRepository) SumWeekByMember(week int) ([]WeeklyRankRow, error) {
	var rows []WeeklyRankRow
	err := r.DB.Raw(`
		SELECT
			m.id AS member_id,
			m.nickname AS nickname,
			COALESCE(SUM(TIME_TO_SEC(r.day_study)), 0) AS study_seconds
		FROM ranks r
		JOIN members m ON m.id = r.member_id
		WHERE r.week = ? AND r.deleted_at IS NULL
		GROUP BY m.id, m.nickname
		ORDER BY study_seconds DESC
	`, week).Scan(&rows).Error
	return rows, err
}
