package controller

import (
	"errors"
	"seatudy_backend/internal/service"
	"seatudy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MemberController struct {
	MemberService *service.MemberService
}

func NewMemberController(memberService *service.MemberService) *MemberController {
	return &MemberController{MemberService: memberService}
}

// GetProfile godoc
// @Summary 获取当前会员资料
// @Description 当前已认证会员的身份信息与总学习积分
// @Tags 会员
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.MemberProfile} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/profile [get]
func (c *MemberController) GetProfile(ctx *gin.Context) {
	claims := util.GetMemberFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	profile, err := c.MemberService.Profile(claims.MemberID)
	if err != nil {
		if errors.Is(err, util.ErrMemberNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, profile)
}

type updateProfileRequest struct {
	Nickname string `json:"nickname" binding:"required,max=30"`
}

// UpdateProfile godoc
// @Summary 修改当前会员昵称
// @Description 更新当前已认证会员的昵称并返回最新资料
// @Tags 会员
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param request body updateProfileRequest true "昵称"
// @Success 200 {object} util.Response{data=service.MemberProfile} "成功"
// @Failure 400 {object} util.Response "参数错误"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/profile [put]
func (c *MemberController) UpdateProfile(ctx *gin.Context) {
	claims := util.GetMemberFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req updateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "invalid request body: "+err.Error())
		return
	}

	profile, err := c.MemberService.UpdateNickname(claims.MemberID, req.Nickname)
	if err != nil {
		if errors.Is(err, util.ErrMemberNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, profile)
}
