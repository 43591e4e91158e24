package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jagannathit007/BSock-admin-sub004/internal/config"
	"github.com/jagannathit007/BSock-admin-sub004/internal/constants"
	"github.com/jagannathit007/BSock-admin-sub004/internal/form"
	"github.com/jagannathit007/BSock-admin-sub004/internal/logger"
	"github.com/jagannathit007/BSock-admin-sub004/internal/models"
	"github.com/jagannathit007/BSock-admin-sub004/internal/queue"
	"github.com/jagannathit007/BSock-admin-sub004/internal/repository"

	"github.com/google/uuid"
)

const (
	defaultSessionTTL = 60 * time.Minute
	defaultMaxRows    = 200
)

// FormSession 进行中的刊登表单会话。行数据只存在内存里，
// 提交成功或取消后即销毁，不落库。
type FormSession struct {
	ID          string            `json:"id"`
	AdminID     uint              `json:"admin_id"`
	Mode        string            `json:"mode"`
	SkuFamilyID uint              `json:"sku_family_id,omitempty"`
	Rows        []form.ProductRow `json:"rows"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// FormService 刊登表单服务。管理会话生命周期：创建、编辑、提交、取消。
type FormService struct {
	cfg         *config.FormConfig
	familyRepo  repository.SkuFamilyRepository
	listingRepo repository.ListingRepository
	queueClient *queue.Client

	mu       sync.Mutex
	sessions map[string]*FormSession

	nowFunc func() time.Time
}

// NewFormService 创建表单服务
func NewFormService(
	cfg *config.FormConfig,
	familyRepo repository.SkuFamilyRepository,
	listingRepo repository.ListingRepository,
	queueClient *queue.Client,
) *FormService {
	return &FormService{
		cfg:         cfg,
		familyRepo:  familyRepo,
		listingRepo: listingRepo,
		queueClient: queueClient,
		sessions:    make(map[string]*FormSession),
		nowFunc:     time.Now,
	}
}

// CreateSession 创建表单会话。单规格模式生成一行空行；
// 多规格模式按机型族规格生成行集。
func (s *FormService) CreateSession(adminID uint, mode string, skuFamilyID uint) (*FormSession, error) {
	var variants []models.SkuFamilyVariant
	if mode == constants.FormModeMulti {
		if skuFamilyID == 0 {
			return nil, ErrSkuFamilyRequired
		}
		loaded, err := s.familyRepo.ListVariants(skuFamilyID)
		if err != nil {
			return nil, err
		}
		variants = loaded
	}

	rows, err := form.InitializeRows(mode, variants)
	if err != nil {
		return nil, err
	}
	if len(rows) > s.maxRows() {
		return nil, ErrTooManyRows
	}

	now := s.nowFunc()
	session := &FormSession{
		ID:          uuid.NewString(),
		AdminID:     adminID,
		Mode:        mode,
		SkuFamilyID: skuFamilyID,
		Rows:        rows,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.mu.Lock()
	s.purgeExpiredLocked(now)
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session, nil
}

// GetSession 获取会话（仅限创建者本人）
func (s *FormService) GetSession(sessionID string, adminID uint) (*FormSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getLocked(sessionID, adminID)
}

// UpdateRowField 更新会话中某一行的单个字段并触发联动推导，返回更新后的整行
func (s *FormService) UpdateRowField(sessionID string, adminID uint, rowIndex int, field, value string) (form.ProductRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.getLocked(sessionID, adminID)
	if err != nil {
		return form.ProductRow{}, err
	}
	row, err := form.UpdateField(session.Rows, rowIndex, field, value)
	if err != nil {
		return form.ProductRow{}, err
	}
	session.Rows[rowIndex] = row
	session.UpdatedAt = s.nowFunc()
	return row, nil
}

// AddRow 追加一行空行
func (s *FormService) AddRow(sessionID string, adminID uint) (*FormSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.getLocked(sessionID, adminID)
	if err != nil {
		return nil, err
	}
	if len(session.Rows)+1 > s.maxRows() {
		return nil, ErrTooManyRows
	}
	rows, err := form.InitializeRows(constants.FormModeSingle, nil)
	if err != nil {
		return nil, err
	}
	session.Rows = append(session.Rows, rows[0])
	session.UpdatedAt = s.nowFunc()
	return session, nil
}

// RemoveRow 删除一行。最后一行不允许删除。
func (s *FormService) RemoveRow(sessionID string, adminID uint, rowIndex int) (*FormSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.getLocked(sessionID, adminID)
	if err != nil {
		return nil, err
	}
	if rowIndex < 0 || rowIndex >= len(session.Rows) {
		return nil, form.ErrRowIndexOutOfRange
	}
	if len(session.Rows) == 1 {
		return nil, ErrValidationFailed
	}
	session.Rows = append(session.Rows[:rowIndex], session.Rows[rowIndex+1:]...)
	session.UpdatedAt = s.nowFunc()
	return session, nil
}

// Submit 提交会话：校验通过后定稿行数据、落库批次并推送通知任务，
// 会话随之销毁。校验失败时返回问题列表，会话保留；
// force 为真时忽略校验问题直接提交。
func (s *FormService) Submit(ctx context.Context, sessionID string, adminID uint, force bool) (*models.ListingBatch, []form.ValidationIssue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.getLocked(sessionID, adminID)
	if err != nil {
		return nil, nil, err
	}

	if issues := form.ValidateSubmission(session.Rows); len(issues) > 0 && !force {
		return nil, issues, ErrValidationFailed
	}
	// 手填唯一刊登号冲突不受 force 豁免，库表唯一约束最终也会拒绝
	if issues := s.duplicateListingNoIssues(session.Rows); len(issues) > 0 {
		return nil, issues, ErrValidationFailed
	}

	now := s.nowFunc()
	prepared := form.PrepareForSubmission(session.Rows, now)

	listings := make([]models.Listing, 0, len(prepared))
	for _, row := range prepared {
		listings = append(listings, rowToListing(row))
	}

	batch := &models.ListingBatch{
		BatchNo:     buildBatchNo(now),
		Mode:        session.Mode,
		RowCount:    len(listings),
		Status:      constants.ListingBatchStatusSubmitted,
		SubmittedBy: adminID,
	}
	if err := s.listingRepo.CreateBatch(batch, listings); err != nil {
		return nil, nil, err
	}

	if err := s.queueClient.EnqueueListingBatchSubmitted(queue.ListingBatchSubmittedPayload{
		BatchID:     batch.ID,
		BatchNo:     batch.BatchNo,
		RowCount:    batch.RowCount,
		SubmittedBy: adminID,
	}); err != nil {
		logger.Warnw("form_submit_enqueue_failed", "batch_id", batch.ID, "error", err)
	}

	delete(s.sessions, sessionID)
	return batch, nil, nil
}

// Cancel 取消会话，行数据直接丢弃
func (s *FormService) Cancel(sessionID string, adminID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.getLocked(sessionID, adminID); err != nil {
		return err
	}
	delete(s.sessions, sessionID)
	return nil
}

// duplicateListingNoIssues 提交前核对手填唯一刊登号：
// 会话内互相重复、或与已落库刊登冲突的行都报问题。
// 核对查询失败只记日志，交给落库时的唯一约束兜底。
func (s *FormService) duplicateListingNoIssues(rows []form.ProductRow) []form.ValidationIssue {
	var issues []form.ValidationIssue
	seen := make(map[string]int, len(rows))
	for i, row := range rows {
		no := strings.TrimSpace(row.UniqueListingNo)
		if no == "" {
			continue
		}
		if _, dup := seen[no]; dup {
			issues = append(issues, form.ValidationIssue{
				Row:     i + 1,
				Field:   form.FieldUniqueListingNo,
				Message: "duplicate unique listing no in session",
			})
			continue
		}
		seen[no] = i
		existing, err := s.listingRepo.GetByUniqueListingNo(no)
		if err != nil {
			logger.Warnw("form_submit_listing_no_check_failed", "listing_no", no, "error", err)
			continue
		}
		if existing != nil {
			issues = append(issues, form.ValidationIssue{
				Row:     i + 1,
				Field:   form.FieldUniqueListingNo,
				Message: "unique listing no already taken",
			})
		}
	}
	return issues
}

// getLocked 取会话并做归属与过期检查，调用方必须持有 s.mu
func (s *FormService) getLocked(sessionID string, adminID uint) (*FormSession, error) {
	session, ok := s.sessions[sessionID]
	if !ok || session.AdminID != adminID {
		return nil, ErrSessionNotFound
	}
	if s.nowFunc().Sub(session.UpdatedAt) > s.sessionTTL() {
		delete(s.sessions, sessionID)
		return nil, ErrSessionExpired
	}
	return session, nil
}

func (s *FormService) purgeExpiredLocked(now time.Time) {
	ttl := s.sessionTTL()
	for id, session := range s.sessions {
		if now.Sub(session.UpdatedAt) > ttl {
			delete(s.sessions, id)
		}
	}
}

func (s *FormService) sessionTTL() time.Duration {
	if s.cfg != nil && s.cfg.SessionTTLMinutes > 0 {
		return time.Duration(s.cfg.SessionTTLMinutes) * time.Minute
	}
	return defaultSessionTTL
}

func (s *FormService) maxRows() int {
	if s.cfg != nil && s.cfg.MaxRowsPerSession > 0 {
		return s.cfg.MaxRowsPerSession
	}
	return defaultMaxRows
}

func buildBatchNo(now time.Time) string {
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("B-%s-%s", now.UTC().Format("20060102150405"), suffix)
}

// rowToListing 将定稿行转换为持久化刊登记录。
// 价格三元组仅在可解析时入库，自由文本报价留空。
func rowToListing(row form.ProductRow) models.Listing {
	listing := models.Listing{
		SkuFamilyID:       row.SkuFamilyID,
		SubSkuFamilyID:    row.SubSkuFamilyID,
		SubModelName:      row.SubModelName,
		Storage:           row.Storage,
		Colour:            row.Colour,
		RAM:               row.RAM,
		Country:           row.Country,
		Sim:               row.Sim,
		Version:           row.Version,
		GradeID:           row.GradeID,
		Status:            row.Status,
		LockStatus:        row.LockStatus,
		Warranty:          row.Warranty,
		BatteryHealth:     row.BatteryHealth,
		DeliveryLocations: models.StringArray(row.DeliveryLocations),
		Packing:           row.Packing,
		CurrentLocation:   row.CurrentLocation,
		TotalQty:          row.TotalQty,
		MOQ:               row.MOQ,
		Weight:            row.Weight,
		PaymentTerms:      models.StringArray(row.PaymentTerms),
		PaymentMethods:    models.StringArray(row.PaymentMethods),
		PriceType:         row.PriceType,
		ShippingTime:      row.ShippingTime,
		Vendor:            row.Vendor,
		VendorListingNo:   row.VendorListingNo,
		Carrier:           row.Carrier,
		CarrierListingNo:  row.CarrierListingNo,
		UniqueListingNo:   row.UniqueListingNo,
		HotDeal:           parseFlag(row.HotDeal),
		LowStock:          parseFlag(row.LowStock),
		AdminMessage:      row.AdminMessage,
		StartTime:         row.StartTime,
		EndTime:           row.EndTime,
		Remark:            row.Remark,
		Supplier:          row.Supplier,
		SupplierListingNo: row.SupplierListingNo,
		DisplaySeq:        row.DisplaySeq,
		Images:            models.StringArray(row.Images),
	}

	listing.HKUsd = parseNullableAmount(row.HKUsd)
	listing.HKXe = parseNullableRate(row.HKXe)
	listing.HKHkd = parseNullableAmount(row.HKHkd)
	listing.DubaiUsd = parseNullableAmount(row.DubaiUsd)
	listing.DubaiXe = parseNullableRate(row.DubaiXe)
	listing.DubaiAed = parseNullableAmount(row.DubaiAed)
	return listing
}

// parseNullableAmount 非数字文本不报错，按未填处理
func parseNullableAmount(raw string) *models.Amount {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	amount, err := models.ParseAmount(trimmed)
	if err != nil {
		return nil
	}
	return &amount
}

func parseNullableRate(raw string) *models.Rate {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	rate, err := models.ParseRate(trimmed)
	if err != nil {
		return nil
	}
	return &rate
}

func parseFlag(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "y", "on":
		return true
	}
	return false
}
