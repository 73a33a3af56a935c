package templates

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	apphttp "templates_backend/internal/http"
	"templates_backend/internal/templates/repository"
	"templates_backend/platform/config"
	"templates_backend/platform/httpkit"
	"templates_backend/platform/logger"
	"templates_backend/platform/validator"
)

const testSecret = "test-secret"

func newTestEngine(t *testing.T, repo repository.Repository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{JWTAccessSecret: testSecret}
	engine := gin.New()
	v1 := engine.Group("/api/v1")
	admin := v1.Group("/admin")
	authMiddleware := httpkit.AuthRequired(cfg)
	admin.Use(authMiddleware)

	module := NewModule(repo, validator.New(), logger.New("development"))
	module.RegisterRoutes(&apphttp.RouterContext{
		Engine:         engine,
		V1:             v1,
		Admin:          admin,
		Config:         cfg,
		AuthMiddleware: authMiddleware,
	})
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	return recorder
}

func accessToken(t *testing.T) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":  "admin",
		"type": "access",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func seedProduct(t *testing.T, repo repository.Repository, name string) repository.Product {
	t.Helper()

	product, err := repo.CreateProduct(context.Background(), repository.CreateProductParams{Name: name})
	if err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return product
}

func TestResolveProduct_ByID(t *testing.T) {
	repo := repository.NewMemory()
	seeded := seedProduct(t, repo, "Widget")
	engine := newTestEngine(t, repo)

	recorder := doJSON(t, engine, http.MethodPost, "/api/v1/templates/product", `{"id":1}`, "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var got struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ID != seeded.ID || got.Name != seeded.Name {
		t.Fatalf("expected %+v, got %+v", seeded, got)
	}
}

func TestResolveProduct_IDWinsOverName(t *testing.T) {
	repo := repository.NewMemory()
	widget := seedProduct(t, repo, "Widget")
	seedProduct(t, repo, "Gadget")
	engine := newTestEngine(t, repo)

	recorder := doJSON(t, engine, http.MethodPost, "/api/v1/templates/product", `{"id":1,"name":"Gadget"}`, "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if !strings.Contains(recorder.Body.String(), widget.Name) {
		t.Fatalf("expected by-id record, got %s", recorder.Body.String())
	}
}

func TestResolveProduct_EmptyInputIs400(t *testing.T) {
	engine := newTestEngine(t, repository.NewMemory())

	recorder := doJSON(t, engine, http.MethodPost, "/api/v1/templates/product", `{}`, "")
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", recorder.Code, recorder.Body.String())
	}
}

func TestResolveProduct_MissingRecordIs404(t *testing.T) {
	engine := newTestEngine(t, repository.NewMemory())

	recorder := doJSON(t, engine, http.MethodPost, "/api/v1/templates/product", `{"id":42}`, "")
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", recorder.Code, recorder.Body.String())
	}
}

func TestResolveProduct_MalformedBodyIs400(t *testing.T) {
	engine := newTestEngine(t, repository.NewMemory())

	recorder := doJSON(t, engine, http.MethodPost, "/api/v1/templates/product", `{"id":`, "")
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", recorder.Code, recorder.Body.String())
	}
}

func TestResolveModel_ByKey(t *testing.T) {
	repo := repository.NewMemory()
	if _, err := repo.CreateModel(context.Background(), repository.CreateModelParams{Name: "Widget", Option: "Deluxe"}); err != nil {
		t.Fatalf("seed model: %v", err)
	}
	engine := newTestEngine(t, repo)

	recorder := doJSON(t, engine, http.MethodPost, "/api/v1/templates/model", `{"name":"Widget","option":"Deluxe"}`, "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
}

func TestResolveModel_PartialKeyIs400(t *testing.T) {
	engine := newTestEngine(t, repository.NewMemory())

	recorder := doJSON(t, engine, http.MethodPost, "/api/v1/templates/model", `{"name":"Widget"}`, "")
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", recorder.Code, recorder.Body.String())
	}
}

func TestResolveRate_ByKey(t *testing.T) {
	repo := repository.NewMemory()
	if _, err := repo.CreateRate(context.Background(), repository.CreateRateParams{Type: "Fixed", ComponentID: 10, Option: "Call"}); err != nil {
		t.Fatalf("seed rate: %v", err)
	}
	engine := newTestEngine(t, repo)

	recorder := doJSON(t, engine, http.MethodPost, "/api/v1/templates/rate", `{"type":"Fixed","componentId":10,"option":"Call"}`, "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var got struct {
		ID          int64  `json:"id"`
		Type        string `json:"type"`
		ComponentID int64  `json:"componentId"`
		Option      string `json:"option"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ID != 1 || got.Type != "Fixed" || got.ComponentID != 10 || got.Option != "Call" {
		t.Fatalf("unexpected rate %+v", got)
	}
}

func TestCreateProduct_RequiresAuth(t *testing.T) {
	engine := newTestEngine(t, repository.NewMemory())

	recorder := doJSON(t, engine, http.MethodPost, "/api/v1/admin/templates/products", `{"name":"Widget"}`, "")
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", recorder.Code, recorder.Body.String())
	}
}

func TestCreateProduct_WithToken(t *testing.T) {
	repo := repository.NewMemory()
	engine := newTestEngine(t, repo)

	recorder := doJSON(t, engine, http.MethodPost, "/api/v1/admin/templates/products", `{"name":"Widget"}`, accessToken(t))
	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", recorder.Code, recorder.Body.String())
	}

	if _, err := repo.GetProductByName(context.Background(), "Widget"); err != nil {
		t.Fatalf("created product missing from store: %v", err)
	}
}

func TestCreateProduct_ValidationFailure(t *testing.T) {
	engine := newTestEngine(t, repository.NewMemory())

	recorder := doJSON(t, engine, http.MethodPost, "/api/v1/admin/templates/products", `{"name":""}`, accessToken(t))
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", recorder.Code, recorder.Body.String())
	}
}

func TestCreateProduct_DuplicateIs409(t *testing.T) {
	repo := repository.NewMemory()
	seedProduct(t, repo, "Widget")
	engine := newTestEngine(t, repo)

	recorder := doJSON(t, engine, http.MethodPost, "/api/v1/admin/templates/products", `{"name":"Widget"}`, accessToken(t))
	if recorder.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", recorder.Code, recorder.Body.String())
	}
}
