package service

import (
	"context"
	"encoding/json"
	"fmt"
	"seatudy_backend/internal/model"
	"seatudy_backend/internal/repository"
	"seatudy_backend/internal/util"
	"seatudy_backend/pkg/logger"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const weeklyRankCacheTTL = 5 * time.Minute

// WeeklyRankEntry 周榜条目
// swagger:model WeeklyRankEntry
type WeeklyRankEntry struct {
	RankNo     int    `json:"rank"`
	MemberID   uint   `json:"memberId"`
	Nickname   string `json:"nickname"`
	TotalStudy string `json:"totalStudy"`
}

// RankService 周榜读取端，Redis 做旁路缓存
type RankService struct {
	RankRepo *repository.RankRepository
	Redis    *redis.Client
	Clock    Clock
}

func NewRankService(rankRepo *repository.RankRepository, rdb *redis.Client, clock Clock) *RankService {
	return &RankService{
		RankRepo: rankRepo,
		Redis:    rdb,
		Clock:    clock,
	}
}

// TotalStudy 汇总会员 Rank 历史的总学习时长
func (s *RankService) TotalStudy(ranks []model.Rank) (string, error) {
	total, err := historyTotalSeconds(ranks, "")
	if err != nil {
		return "", err
	}
	return util.FormatDuration(total), nil
}

// TotalPoint 总学习秒数，社交登录响应里的积分值
func (s *RankService) TotalPoint(memberID uint) (int64, error) {
	ranks, err := s.RankRepo.FindAllByMember(memberID)
	if err != nil {
		return 0, err
	}
	total, err := historyTotalSeconds(ranks, "")
	if err != nil {
		return 0, err
	}
	return int64(total), nil
}

// CurrentWeek 当前逻辑日期所属的周榜分桶
func (s *RankService) CurrentWeek(rolloverHour int) (int, error) {
	now := s.Clock.Now()
	today := util.LogicalDay(now, rolloverHour)
	return util.WeekOfDate(today, now.Location())
}

// WeeklyRanking 某周的排行榜，按累计学习时长降序
func (s *RankService) WeeklyRanking(ctx context.Context, week int) ([]WeeklyRankEntry, error) {
	cacheKey := fmt.Sprintf("seatudy:rank:week:%d", week)

	if cached, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
		var entries []WeeklyRankEntry
		if err := json.Unmarshal([]byte(cached), &entries); err == nil {
			return entries, nil
		}
	}

	rows, err := s.RankRepo.SumWeekByMember(week)
	if err != nil {
		return nil, err
	}

	entries := make([]WeeklyRankEntry, 0, len(rows))
	for i, row := range rows {
		entries = append(entries, WeeklyRankEntry{
			RankNo:     i + 1,
			MemberID:   row.MemberID,
			Nickname:   row.Nickname,
			TotalStudy: util.FormatDuration(row.StudySeconds),
		})
	}

	if payload, err := json.Marshal(entries); err == nil {
		if err := s.Redis.Set(ctx, cacheKey, payload, weeklyRankCacheTTL).Err(); err != nil {
			logger.Log.Warn("failed to cache weekly ranking", zap.Int("week", week), zap.Error(err))
		}
	}

	return entries, nil
}
