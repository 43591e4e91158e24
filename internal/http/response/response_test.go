package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func recordJSON(t *testing.T, fn func(c *gin.Context)) map[string]interface{} {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	fn(c)

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body failed: %v", err)
	}
	return body
}

func TestErrorAttachesRequestID(t *testing.T) {
	body := recordJSON(t, func(c *gin.Context) {
		c.Set("request_id", "req-42")
		Error(c, CodeBadRequest, "bad input")
	})
	if body["status_code"].(float64) != CodeBadRequest || body["msg"] != "bad input" {
		t.Fatalf("unexpected envelope: %+v", body)
	}
	data, ok := body["data"].(map[string]interface{})
	if !ok || data["request_id"] != "req-42" {
		t.Fatalf("request id not attached: %+v", body["data"])
	}
}

func TestSuccessOmitsRequestID(t *testing.T) {
	body := recordJSON(t, func(c *gin.Context) {
		c.Set("request_id", "req-42")
		Success(c, gin.H{"ok": true})
	})
	data, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected data: %+v", body["data"])
	}
	if _, found := data["request_id"]; found {
		t.Fatalf("success payload must not carry request id: %+v", data)
	}
}

func TestErrorWithDataMergesRequestID(t *testing.T) {
	body := recordJSON(t, func(c *gin.Context) {
		c.Set("request_id", "req-7")
		ErrorWithData(c, CodeBadRequest, "validation failed", gin.H{"issues": []string{"endTime"}})
	})
	data := body["data"].(map[string]interface{})
	if data["request_id"] != "req-7" {
		t.Fatalf("request id not merged: %+v", data)
	}
	if _, found := data["issues"]; !found {
		t.Fatalf("payload fields must survive the merge: %+v", data)
	}
}
