package controller

import (
	"seatudy_backend/internal/service"
	"seatudy_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type RankController struct {
	RankService  *service.RankService
	RolloverHour int
}

func NewRankController(rankService *service.RankService, rolloverHour int) *RankController {
	return &RankController{
		RankService:  rankService,
		RolloverHour: rolloverHour,
	}
}

// WeeklyRanking godoc
// @Summary 周排行榜
// @Description 按周分桶的学习时长排行，缺省为当前周
// @Tags 排行
// @Produce  json
// @Security ApiKeyAuth
// @Param   week query int false "周序号"
// @Success 200 {object} util.Response{data=[]service.WeeklyRankEntry} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/ranks/weekly [get]
func (c *RankController) WeeklyRanking(ctx *gin.Context) {
	week := 0
	if raw := ctx.Query("week"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 53 {
			util.BadRequest(ctx, "invalid week")
			return
		}
		week = parsed
	} else {
		current, err := c.RankService.CurrentWeek(c.RolloverHour)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		week = current
	}

	entries, err := c.RankService.WeeklyRanking(ctx.Request.Context(), week)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"week": week, "entries": entries})
}
