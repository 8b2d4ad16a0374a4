package service

import (
	"errors"
	"seatudy_backend/internal/model"
	"seatudy_backend/internal/repository"
	"seatudy_backend/internal/util"
	"seatudy_backend/pkg/logger"
	"seatudy_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CheckInResult 入座响应
// swagger:model CheckInResult
type CheckInResult struct {
	CheckIn    string          `json:"checkIn"`
	DayStudy   string          `json:"dayStudyTime"`
	TimeDetail util.TimeDetail `json:"timeDetail"`
}

// CheckOutResult 离座响应
// swagger:model CheckOutResult
type CheckOutResult struct {
	CheckOut   string          `json:"checkOut"`
	DayStudy   string          `json:"dayStudyTime"`
	TimeDetail util.TimeDetail `json:"timeDetail"`
}

// TodayLog 当日一次入离座记录
type TodayLog struct {
	CheckIn  string  `json:"checkIn"`
	CheckOut *string `json:"checkOut"`
}

// StatusResult 计时器状态查询响应
// swagger:model StatusResult
type StatusResult struct {
	DayStudy   string     `json:"dayStudyTime"`
	TotalStudy string     `json:"totalStudyTime"`
	IsStudying bool       `json:"isStudying"`
	TodayLogs  []TodayLog `json:"todayLogs"`
}

// TimeCheckService 入座/离座状态机。每次操作是一个事务，
// 时钟在操作开始时取一次，逻辑日期和时间戳共用同一个 now。
type TimeCheckService struct {
	DB            *gorm.DB
	TimeCheckRepo *repository.TimeCheckRepository
	RankRepo      *repository.RankRepository
	Clock         Clock
	RolloverHour  int
}

func NewTimeCheckService(db *gorm.DB, timeCheckRepo *repository.TimeCheckRepository, rankRepo *repository.RankRepository, clock Clock, rolloverHour int) *TimeCheckService {
	return &TimeCheckService{
		DB:            db,
		TimeCheckRepo: timeCheckRepo,
		RankRepo:      rankRepo,
		Clock:         clock,
		RolloverHour:  rolloverHour,
	}
}

// CheckIn 入座。存在未离座的记录时拒绝。
func (s *TimeCheckService) CheckIn(memberID uint) (*CheckInResult, error) {
	now := s.Clock.Now()
	today := util.LogicalDay(now, s.RolloverHour)
	nowTime := now.Format(util.TimeFormat)

	var result *CheckInResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		checks, err := s.TimeCheckRepo.WithTx(tx).FindByMemberAndDate(memberID, today)
		if err != nil {
			return err
		}

		if err := validateCheckIn(checks); err != nil {
			return err
		}

		rank, err := s.RankRepo.WithTx(tx).FindByMemberAndDate(memberID, today)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		timeWatch := baselineDayStudy(rank)
		detail, err := util.GetTimeDetail(timeWatch)
		if err != nil {
			return err
		}

		check := &model.TimeCheck{
			MemberID: memberID,
			Date:     today,
			CheckIn:  nowTime,
		}
		if err := s.TimeCheckRepo.WithTx(tx).Create(check); err != nil {
			return err
		}

		result = &CheckInResult{
			CheckIn:    nowTime,
			DayStudy:   timeWatch,
			TimeDetail: detail,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	monitoring.CheckinCounter.WithLabelValues("checkin").Inc()
	logger.Log.Info("member checked in",
		zap.Uint("memberId", memberID),
		zap.String("date", today),
		zap.String("dayStudy", result.DayStudy))

	return result, nil
}

// CheckOut 离座。把本次会话时长折入当日与全历史累计，
// 当天首次离座时创建 Rank 并回填当日全部记录。
func (s *TimeCheckService) CheckOut(memberID uint) (*CheckOutResult, error) {
	now := s.Clock.Now()
	today := util.LogicalDay(now, s.RolloverHour)
	nowTime := now.Format(util.TimeFormat)

	var result *CheckOutResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		timeCheckRepo := s.TimeCheckRepo.WithTx(tx)
		rankRepo := s.RankRepo.WithTx(tx)

		checks, err := timeCheckRepo.FindByMemberAndDate(memberID, today)
		if err != nil {
			return err
		}
		last, err := openSession(checks)
		if err != nil {
			return err
		}

		rank, err := rankRepo.FindByMemberAndDate(memberID, today)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		elapsed, err := elapsedSeconds(last.CheckIn, now)
		if err != nil {
			return err
		}

		ranks, err := rankRepo.FindAllByMember(memberID)
		if err != nil {
			return err
		}
		history, err := historyTotalSeconds(ranks, today)
		if err != nil {
			return err
		}

		fold, err := foldSession(baselineDayStudy(rank), elapsed, history)
		if err != nil {
			return err
		}

		last.CheckOut = &nowTime

		if rank != nil {
			rank.DayStudy = fold.DayStudy
			rank.TotalStudy = fold.TotalStudy
			if err := rankRepo.Update(rank); err != nil {
				return err
			}
			last.RankID = &rank.ID
			if err := timeCheckRepo.Update(last); err != nil {
				return err
			}
		} else {
			week, err := util.WeekOfDate(today, now.Location())
			if err != nil {
				return err
			}
			rank = &model.Rank{
				MemberID:   memberID,
				Date:       today,
				DayStudy:   fold.DayStudy,
				TotalStudy: fold.TotalStudy,
				Week:       week,
			}
			if err := rankRepo.Create(rank); err != nil {
				return err
			}
			if err := timeCheckRepo.Update(last); err != nil {
				return err
			}
			if err := timeCheckRepo.LinkToRank(memberID, today, rank.ID); err != nil {
				return err
			}
		}

		detail, err := util.GetTimeDetail(fold.DayStudy)
		if err != nil {
			return err
		}

		result = &CheckOutResult{
			CheckOut:   nowTime,
			DayStudy:   fold.DayStudy,
			TimeDetail: detail,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	monitoring.CheckinCounter.WithLabelValues("checkout").Inc()
	logger.Log.Info("member checked out",
		zap.Uint("memberId", memberID),
		zap.String("date", today),
		zap.String("dayStudy", result.DayStudy))

	return result, nil
}

// GetStatus 查询当日计时状态。计时进行中时返回实时折算值。
func (s *TimeCheckService) GetStatus(memberID uint) (*StatusResult, error) {
	now := s.Clock.Now()
	today := util.LogicalDay(now, s.RolloverHour)

	checks, err := s.TimeCheckRepo.FindByMemberAndDate(memberID, today)
	if err != nil {
		return nil, err
	}

	ranks, err := s.RankRepo.FindAllByMember(memberID)
	if err != nil {
		return nil, err
	}
	historyAll, err := historyTotalSeconds(ranks, "")
	if err != nil {
		return nil, err
	}
	total := util.FormatDuration(historyAll)

	// 今天还没有任何记录
	if len(checks) == 0 {
		return &StatusResult{
			DayStudy:   "00:00:00",
			TotalStudy: total,
			IsStudying: false,
			TodayLogs:  []TodayLog{},
		}, nil
	}

	logs := make([]TodayLog, 0, len(checks))
	for _, c := range checks {
		logs = append(logs, TodayLog{CheckIn: c.CheckIn, CheckOut: c.CheckOut})
	}

	rank, err := s.RankRepo.FindByMemberAndDate(memberID, today)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	last := checks[len(checks)-1]

	// 最后一条已离座，计时停止，直接取当日存储值
	if !last.Open() {
		if rank == nil {
			return nil, util.ErrTimeCheckNotFound
		}
		return &StatusResult{
			DayStudy:   rank.DayStudy,
			TotalStudy: total,
			IsStudying: false,
			TodayLogs:  logs,
		}, nil
	}

	// 计时进行中：基线加上当前会话的实时经过时间
	elapsed, err := elapsedSeconds(last.CheckIn, now)
	if err != nil {
		return nil, err
	}
	base, err := util.ParseDuration(baselineDayStudy(rank))
	if err != nil {
		return nil, err
	}

	return &StatusResult{
		DayStudy:   util.FormatDuration(base + elapsed),
		TotalStudy: total,
		IsStudying: true,
		TodayLogs:  logs,
	}, nil
}
