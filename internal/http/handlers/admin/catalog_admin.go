package admin

import (
	"strconv"

	"github.com/jagannathit007/BSock-admin-sub004/internal/http/response"
	"github.com/jagannathit007/BSock-admin-sub004/internal/models"

	"github.com/gin-gonic/gin"
)

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid id", nil)
		return 0, false
	}
	return uint(id), true
}

// GetGrades 成色等级列表
func (h *Handler) GetGrades(c *gin.Context) {
	grades, err := h.CatalogService.ListGrades()
	if err != nil {
		respondError(c, response.CodeInternal, "grade fetch failed", err)
		return
	}
	response.Success(c, grades)
}

// GradeRequest 成色等级保存请求
type GradeRequest struct {
	Title     string `json:"title" binding:"required"`
	Remark    string `json:"remark"`
	IsActive  *bool  `json:"is_active"`
	SortOrder int    `json:"sort_order"`
}

func (r *GradeRequest) toModel(id uint) *models.Grade {
	grade := &models.Grade{
		ID:        id,
		Title:     r.Title,
		Remark:    r.Remark,
		IsActive:  true,
		SortOrder: r.SortOrder,
	}
	if r.IsActive != nil {
		grade.IsActive = *r.IsActive
	}
	return grade
}

// CreateGrade 创建成色等级
func (h *Handler) CreateGrade(c *gin.Context) {
	var req GradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	grade := req.toModel(0)
	if err := h.CatalogService.SaveGrade(c.Request.Context(), grade); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, grade)
}

// UpdateGrade 更新成色等级
func (h *Handler) UpdateGrade(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req GradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	grade := req.toModel(id)
	if err := h.CatalogService.SaveGrade(c.Request.Context(), grade); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, grade)
}

// DeleteGrade 删除成色等级
func (h *Handler) DeleteGrade(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.CatalogService.DeleteGrade(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "grade deleted", nil)
}

// GetSellers 供货商列表
func (h *Handler) GetSellers(c *gin.Context) {
	sellers, err := h.CatalogService.ListSellers(c.Query("search"))
	if err != nil {
		respondError(c, response.CodeInternal, "seller fetch failed", err)
		return
	}
	response.Success(c, sellers)
}

// SellerRequest 供货商保存请求
type SellerRequest struct {
	Name     string `json:"name" binding:"required"`
	Code     string `json:"code"`
	Contact  string `json:"contact"`
	IsActive *bool  `json:"is_active"`
}

func (r *SellerRequest) toModel(id uint) *models.Seller {
	seller := &models.Seller{
		ID:       id,
		Name:     r.Name,
		Code:     r.Code,
		Contact:  r.Contact,
		IsActive: true,
	}
	if r.IsActive != nil {
		seller.IsActive = *r.IsActive
	}
	return seller
}

// CreateSeller 创建供货商
func (h *Handler) CreateSeller(c *gin.Context) {
	var req SellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	seller := req.toModel(0)
	if err := h.CatalogService.SaveSeller(c.Request.Context(), seller); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, seller)
}

// UpdateSeller 更新供货商
func (h *Handler) UpdateSeller(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req SellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	seller := req.toModel(id)
	if err := h.CatalogService.SaveSeller(c.Request.Context(), seller); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, seller)
}

// DeleteSeller 删除供货商
func (h *Handler) DeleteSeller(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.CatalogService.DeleteSeller(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "seller deleted", nil)
}

// GetLocations 地点选项列表
func (h *Handler) GetLocations(c *gin.Context) {
	options, err := h.CatalogService.ListLocations(c.Query("kind"))
	if err != nil {
		respondError(c, response.CodeInternal, "location fetch failed", err)
		return
	}
	response.Success(c, options)
}

// LocationRequest 地点选项保存请求
type LocationRequest struct {
	Kind      string `json:"kind" binding:"required"`
	Code      string `json:"code" binding:"required"`
	Name      string `json:"name" binding:"required"`
	SortOrder int    `json:"sort_order"`
}

// CreateLocation 创建地点选项
func (h *Handler) CreateLocation(c *gin.Context) {
	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	option := &models.LocationOption{
		Kind:      req.Kind,
		Code:      req.Code,
		Name:      req.Name,
		SortOrder: req.SortOrder,
	}
	if err := h.CatalogService.SaveLocation(c.Request.Context(), option); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, option)
}

// DeleteLocation 删除地点选项
func (h *Handler) DeleteLocation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.CatalogService.DeleteLocation(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "location deleted", nil)
}

// GetSkuFamilies 机型族列表
func (h *Handler) GetSkuFamilies(c *gin.Context) {
	families, err := h.CatalogService.ListSkuFamilies(c.Query("search"))
	if err != nil {
		respondError(c, response.CodeInternal, "sku family fetch failed", err)
		return
	}
	response.Success(c, families)
}

// GetSkuFamily 机型族详情（含规格）
func (h *Handler) GetSkuFamily(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	family, err := h.CatalogService.GetSkuFamily(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, family)
}

// SkuFamilyVariantRequest 机型规格保存请求
type SkuFamilyVariantRequest struct {
	SubSkuFamilyID *uint    `json:"sub_sku_family_id"`
	SubModelName   string   `json:"sub_model_name" binding:"required"`
	Storage        string   `json:"storage"`
	Colour         string   `json:"colour"`
	RAM            string   `json:"ram"`
	DisplaySeq     int      `json:"display_seq"`
	Images         []string `json:"images"`
}

// SkuFamilyRequest 机型族保存请求
type SkuFamilyRequest struct {
	Name     string                    `json:"name" binding:"required"`
	Brand    string                    `json:"brand"`
	IsActive *bool                     `json:"is_active"`
	Variants []SkuFamilyVariantRequest `json:"variants"`
}

func (r *SkuFamilyRequest) toModel(id uint) *models.SkuFamily {
	family := &models.SkuFamily{
		ID:       id,
		Name:     r.Name,
		Brand:    r.Brand,
		IsActive: true,
	}
	if r.IsActive != nil {
		family.IsActive = *r.IsActive
	}
	for _, variant := range r.Variants {
		family.Variants = append(family.Variants, models.SkuFamilyVariant{
			SubSkuFamilyID: variant.SubSkuFamilyID,
			SubModelName:   variant.SubModelName,
			Storage:        variant.Storage,
			Colour:         variant.Colour,
			RAM:            variant.RAM,
			DisplaySeq:     variant.DisplaySeq,
			Images:         models.StringArray(variant.Images),
		})
	}
	return family
}

// CreateSkuFamily 创建机型族
func (h *Handler) CreateSkuFamily(c *gin.Context) {
	var req SkuFamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	family := req.toModel(0)
	if err := h.CatalogService.SaveSkuFamily(c.Request.Context(), family); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, family)
}

// UpdateSkuFamily 更新机型族
func (h *Handler) UpdateSkuFamily(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req SkuFamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	family := req.toModel(id)
	if err := h.CatalogService.SaveSkuFamily(c.Request.Context(), family); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, family)
}

// DeleteSkuFamily 删除机型族
func (h *Handler) DeleteSkuFamily(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.CatalogService.DeleteSkuFamily(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "sku family deleted", nil)
}
