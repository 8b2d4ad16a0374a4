package controller

import (
	"errors"
	"net/http"
	"seatudy_backend/internal/service"
	"seatudy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TimeCheckController struct {
	TimeCheckService *service.TimeCheckService
}

func NewTimeCheckController(timeCheckService *service.TimeCheckService) *TimeCheckController {
	return &TimeCheckController{TimeCheckService: timeCheckService}
}

// CheckIn godoc
// @Summary 入座打卡
// @Description 开始一段学习会话，存在未离座的会话时拒绝
// @Tags 计时
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.CheckInResult} "成功"
// @Failure 400 {object} util.Response "已有未离座的会话"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/checkin [post]
func (c *TimeCheckController) CheckIn(ctx *gin.Context) {
	claims := util.GetMemberFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.TimeCheckService.CheckIn(claims.MemberID)
	if err != nil {
		if errors.Is(err, util.ErrCheckoutNotAttempted) {
			util.Error(ctx, http.StatusBadRequest, "checkout not attempted")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// CheckOut godoc
// @Summary 离座打卡
// @Description 结束当前学习会话并折入当日累计
// @Tags 计时
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.CheckOutResult} "成功"
// @Failure 400 {object} util.Response "没有进行中的会话"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/checkout [post]
func (c *TimeCheckController) CheckOut(ctx *gin.Context) {
	claims := util.GetMemberFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.TimeCheckService.CheckOut(claims.MemberID)
	if err != nil {
		if errors.Is(err, util.ErrCheckinNotAttempted) {
			util.Error(ctx, http.StatusBadRequest, "check-in not attempted")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// GetStatus godoc
// @Summary 计时状态查询
// @Description 当日累计、历史总累计、计时器运行状态和当日打卡记录
// @Tags 计时
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.StatusResult} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/checkin [get]
func (c *TimeCheckController) GetStatus(ctx *gin.Context) {
	claims := util.GetMemberFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.TimeCheckService.GetStatus(claims.MemberID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, result)
}
