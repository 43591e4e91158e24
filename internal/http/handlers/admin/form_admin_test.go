package admin

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jagannathit007/BSock-admin-sub004/internal/config"
	"github.com/jagannathit007/BSock-admin-sub004/internal/models"
	"github.com/jagannathit007/BSock-admin-sub004/internal/provider"
	"github.com/jagannathit007/BSock-admin-sub004/internal/queue"
	"github.com/jagannathit007/BSock-admin-sub004/internal/repository"
	"github.com/jagannathit007/BSock-admin-sub004/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupFormHandlerTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:form_admin_handler_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.SkuFamily{},
		&models.SkuFamilyVariant{},
		&models.Listing{},
		&models.ListingBatch{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	queueClient, err := queue.NewClient(&config.QueueConfig{Enabled: false})
	if err != nil {
		t.Fatalf("new queue client failed: %v", err)
	}
	familyRepo := repository.NewSkuFamilyRepository(db)
	listingRepo := repository.NewListingRepository(db)
	formService := service.NewFormService(
		&config.FormConfig{SessionTTLMinutes: 30, MaxRowsPerSession: 50},
		familyRepo,
		listingRepo,
		queueClient,
	)

	h := &Handler{Container: &provider.Container{FormService: formService}}

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("admin_id", uint(1))
		c.Next()
	})
	r.POST("/admin/form/sessions", h.CreateFormSession)
	r.GET("/admin/form/sessions/:id", h.GetFormSession)
	r.PATCH("/admin/form/sessions/:id/rows/:index", h.UpdateFormRowField)
	r.POST("/admin/form/sessions/:id/submit", h.SubmitFormSession)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestFormSessionLifecycleOverHTTP(t *testing.T) {
	r, db := setupFormHandlerTest(t)

	w := doJSON(t, r, http.MethodPost, "/admin/form/sessions", `{"mode":"single"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("create session status want 200 got %d", w.Code)
	}
	var created struct {
		StatusCode int `json:"status_code"`
		Data       struct {
			ID   string `json:"id"`
			Rows []struct {
				Status string `json:"status"`
			} `json:"rows"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal create response failed: %v", err)
	}
	if created.StatusCode != 0 {
		t.Fatalf("create status_code want 0 got %d", created.StatusCode)
	}
	if len(created.Data.Rows) != 1 {
		t.Fatalf("single mode rows want 1 got %d", len(created.Data.Rows))
	}
	if created.Data.Rows[0].Status != "Active" {
		t.Fatalf("default row status want Active got %s", created.Data.Rows[0].Status)
	}
	sessionID := created.Data.ID

	// 填入美元价和汇率，应推导出港币价
	for field, value := range map[string]string{"endTime": "2026-09-30", "subModelName": "iPhone 15 Pro"} {
		w = doJSON(t, r, http.MethodPatch, "/admin/form/sessions/"+sessionID+"/rows/0",
			fmt.Sprintf(`{"field":%q,"value":%q}`, field, value))
		if w.Code != http.StatusOK {
			t.Fatalf("update %s status want 200 got %d", field, w.Code)
		}
	}
	w = doJSON(t, r, http.MethodPatch, "/admin/form/sessions/"+sessionID+"/rows/0", `{"field":"hkUsd","value":"100"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update hkUsd status want 200 got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodPatch, "/admin/form/sessions/"+sessionID+"/rows/0", `{"field":"hkXe","value":"7.8"}`)
	var updated struct {
		Data struct {
			HKHkd             string   `json:"hkHkd"`
			DeliveryLocations []string `json:"deliveryLocations"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("unmarshal update response failed: %v", err)
	}
	if updated.Data.HKHkd != "780.00" {
		t.Fatalf("derived hkHkd want 780.00 got %s", updated.Data.HKHkd)
	}
	if len(updated.Data.DeliveryLocations) != 1 || updated.Data.DeliveryLocations[0] != "HK" {
		t.Fatalf("delivery locations want [HK] got %v", updated.Data.DeliveryLocations)
	}

	w = doJSON(t, r, http.MethodPost, "/admin/form/sessions/"+sessionID+"/submit", "")
	if w.Code != http.StatusOK {
		t.Fatalf("submit status want 200 got %d", w.Code)
	}
	var submitted struct {
		StatusCode int `json:"status_code"`
		Data       struct {
			ID       uint   `json:"id"`
			BatchNo  string `json:"batch_no"`
			RowCount int    `json:"row_count"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &submitted); err != nil {
		t.Fatalf("unmarshal submit response failed: %v", err)
	}
	if submitted.StatusCode != 0 {
		t.Fatalf("submit status_code want 0 got %d", submitted.StatusCode)
	}
	if submitted.Data.RowCount != 1 {
		t.Fatalf("batch row count want 1 got %d", submitted.Data.RowCount)
	}

	var listingCount int64
	if err := db.Model(&models.Listing{}).Where("batch_id = ?", submitted.Data.ID).Count(&listingCount).Error; err != nil {
		t.Fatalf("count listings failed: %v", err)
	}
	if listingCount != 1 {
		t.Fatalf("persisted listings want 1 got %d", listingCount)
	}

	// 提交后会话即销毁
	w = doJSON(t, r, http.MethodGet, "/admin/form/sessions/"+sessionID, "")
	var gone struct {
		StatusCode int `json:"status_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &gone); err != nil {
		t.Fatalf("unmarshal get response failed: %v", err)
	}
	if gone.StatusCode != 404 {
		t.Fatalf("session after submit status_code want 404 got %d", gone.StatusCode)
	}
}

func TestSubmitFormSessionReturnsIssues(t *testing.T) {
	r, _ := setupFormHandlerTest(t)

	w := doJSON(t, r, http.MethodPost, "/admin/form/sessions", `{"mode":"single"}`)
	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal create response failed: %v", err)
	}

	// 缺少截止时间，提交应返回校验问题清单
	w = doJSON(t, r, http.MethodPost, "/admin/form/sessions/"+created.Data.ID+"/submit", "")
	var failed struct {
		StatusCode int `json:"status_code"`
		Data       struct {
			Issues []struct {
				Row   int    `json:"row"`
				Field string `json:"field"`
			} `json:"issues"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &failed); err != nil {
		t.Fatalf("unmarshal submit response failed: %v", err)
	}
	if failed.StatusCode != 400 {
		t.Fatalf("submit status_code want 400 got %d", failed.StatusCode)
	}
	if len(failed.Data.Issues) != 1 || failed.Data.Issues[0].Row != 1 || failed.Data.Issues[0].Field != "endTime" {
		t.Fatalf("unexpected validation issues: %+v", failed.Data.Issues)
	}
}
