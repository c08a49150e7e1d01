package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestExportDownloadStoreTokenLifecycle(t *testing.T) {
	s := newExportDownloadStore()

	token := s.put("report.xlsx", []byte("data"), time.Minute)
	item, ok := s.get(token)
	if !ok {
		t.Fatalf("token not found after put")
	}
	if item.filename != "report.xlsx" || string(item.data) != "data" {
		t.Fatalf("item = %+v", item)
	}

	s.delete(token)
	if _, ok := s.get(token); ok {
		t.Fatalf("token still valid after delete")
	}
}

func TestExportDownloadStoreExpiry(t *testing.T) {
	s := newExportDownloadStore()

	token := s.put("report.xlsx", []byte("data"), -time.Second)
	if _, ok := s.get(token); ok {
		t.Fatalf("expired token should not resolve")
	}
}

func TestExportEndpointRoundTrip(t *testing.T) {
	router := newTestRouter(fullDataset())

	req := httptest.NewRequest(http.MethodPost, "/api/export", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("export status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token    string `json:"token"`
		Filename string `json:"filename"`
		URL      string `json:"url"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Token == "" || resp.Filename == "" {
		t.Fatalf("resp = %+v", resp)
	}

	dlReq := httptest.NewRequest(http.MethodGet, resp.URL, nil)
	dlW := httptest.NewRecorder()
	router.ServeHTTP(dlW, dlReq)

	if dlW.Code != http.StatusOK {
		t.Fatalf("download status = %d", dlW.Code)
	}
	if dlW.Body.Len() == 0 {
		t.Fatalf("empty report body")
	}

	// 令牌一次性使用
	dlW2 := httptest.NewRecorder()
	router.ServeHTTP(dlW2, httptest.NewRequest(http.MethodGet, resp.URL, nil))
	if dlW2.Code != http.StatusNotFound {
		t.Fatalf("second download status = %d, want 404", dlW2.Code)
	}
}
