package http

import (
	"bytes"
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/crumbs/restaurant-service/internal/data/aggregates"
	"github.com/crumbs/restaurant-service/internal/data/repos"
	repotest "github.com/crumbs/restaurant-service/internal/data/repos/testutil"
	httpH "github.com/crumbs/restaurant-service/internal/http/handlers"
	httpMW "github.com/crumbs/restaurant-service/internal/http/middleware"
	"github.com/crumbs/restaurant-service/internal/observability"
	"github.com/crumbs/restaurant-service/internal/services"
)

const testSecret = "router-test-secret"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := repotest.DB(t)
	log := repotest.Logger(t)

	restaurants := repos.NewRestaurantRepo(db, log)
	menuItems := repos.NewMenuItemRepo(db, log)
	categories := repos.NewCategoryRepo(db, log)
	agg := aggregates.NewRestaurantAggregate(aggregates.RestaurantAggregateDeps{
		Base:        aggregates.BaseDeps{DB: db, Log: log},
		UserDetails: repos.NewUserDetailRepo(db, log),
		Owners:      repos.NewRestaurantOwnerRepo(db, log),
		Locations:   repos.NewLocationRepo(db, log),
		Categories:  categories,
		Links:       repos.NewRestaurantCategoryRepo(db, log),
		Restaurants: restaurants,
		MenuItems:   menuItems,
	})
	seeder := services.NewSeeder(db, log, agg, categories, restaurants, menuItems)
	if _, err := seeder.Seed(context.Background()); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	query := services.NewQueryService(log, restaurants, menuItems, categories)
	return NewRouter(RouterConfig{
		Log:               log,
		Metrics:           observability.NewMetrics(log),
		AuthMiddleware:    httpMW.NewAuthMiddleware(log, testSecret),
		RestaurantHandler: httpH.NewRestaurantHandler(log, services.NewRestaurantService(log, agg), query),
		MenuItemHandler:   httpH.NewMenuItemHandler(query),
		CategoryHandler:   httpH.NewCategoryHandler(query),
		HealthHandler:     httpH.NewHealthHandler(db),
	})
}

type apiResponse struct {
	Code int
	Body map[string]any
}

func call(t *testing.T, r *gin.Engine, method, path string, body any, token string) apiResponse {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	out := apiResponse{Code: rec.Code}
	if ct := rec.Header().Get("Content-Type"); len(ct) >= 16 && ct[:16] == "application/json" {
		if err := json.Unmarshal(rec.Body.Bytes(), &out.Body); err != nil {
			t.Fatalf("decode %s %s: %v (%s)", method, path, err, rec.Body.String())
		}
	}
	return out
}

func errorCode(t *testing.T, res apiResponse) string {
	t.Helper()
	e, ok := res.Body["error"].(map[string]any)
	if !ok {
		t.Fatalf("missing error envelope: %+v", res.Body)
	}
	code, _ := e["code"].(string)
	return code
}

func token(t *testing.T) string {
	t.Helper()
	tok, err := httpMW.SignToken(testSecret, "admin", time.Minute)
	if err != nil {
		t.Fatalf("SignToken: %v", err)
	}
	return tok
}

func newRestaurantBody() map[string]any {
	return map[string]any{
		"ownerFirstName": "Glen",
		"ownerLastName":  "Bell",
		"ownerEmail":     "gbell@example.com",
		"street":         "3333 Street C",
		"city":           "Downey",
		"zip":            "90241",
		"state":          "CA",
		"name":           "Taco Bell",
		"priceRating":    1,
		"categories":     []map[string]string{{"name": "American"}},
	}
}

func TestHealthcheck(t *testing.T) {
	r := newTestRouter(t)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/healthcheck", nil))
	if rec.Code != nethttp.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("healthcheck: %d %q", rec.Code, rec.Body.String())
	}
}

func TestReadRoutes(t *testing.T) {
	r := newTestRouter(t)

	res := call(t, r, nethttp.MethodGet, "/api/restaurants?size=1&sort=name&dir=desc", nil, "")
	if res.Code != nethttp.StatusOK {
		t.Fatalf("list: %d %+v", res.Code, res.Body)
	}
	items := res.Body["restaurants"].([]any)
	if len(items) != 1 || items[0].(map[string]any)["name"] != "McDonald's" || res.Body["total_pages"].(float64) != 2 {
		t.Fatalf("list body: %+v", res.Body)
	}

	res = call(t, r, nethttp.MethodGet, "/api/restaurants/search?name=kf", nil, "")
	if res.Code != nethttp.StatusOK || res.Body["total"].(float64) != 1 {
		t.Fatalf("search by name: %d %+v", res.Code, res.Body)
	}
	id := int(res.Body["restaurants"].([]any)[0].(map[string]any)["id"].(float64))

	res = call(t, r, nethttp.MethodGet, "/api/restaurants/search/menu-items?q=MenuItem-3", nil, "")
	if res.Code != nethttp.StatusOK || res.Body["total"].(float64) != 2 {
		t.Fatalf("search by menu item: %d %+v", res.Code, res.Body)
	}

	res = call(t, r, nethttp.MethodGet, "/api/restaurants/"+itoa(id), nil, "")
	restaurant := res.Body["restaurant"].(map[string]any)
	if res.Code != nethttp.StatusOK || restaurant["name"] != "KFC" {
		t.Fatalf("get: %d %+v", res.Code, res.Body)
	}
	if loc := restaurant["location"].(map[string]any); loc["street"] != "1111 Street A" {
		t.Fatalf("location not loaded: %+v", loc)
	}

	res = call(t, r, nethttp.MethodGet, "/api/restaurants/"+itoa(id)+"/menu-items?size=4", nil, "")
	if res.Code != nethttp.StatusOK || res.Body["total"].(float64) != 10 || len(res.Body["menu_items"].([]any)) != 4 {
		t.Fatalf("restaurant menu items: %d %+v", res.Code, res.Body)
	}

	res = call(t, r, nethttp.MethodGet, "/api/menu-items/search?q=menuitem-0", nil, "")
	if res.Code != nethttp.StatusOK || res.Body["total"].(float64) != 2 {
		t.Fatalf("menu item search: %d %+v", res.Code, res.Body)
	}

	res = call(t, r, nethttp.MethodGet, "/api/categories", nil, "")
	if res.Code != nethttp.StatusOK || len(res.Body["categories"].([]any)) != 9 {
		t.Fatalf("categories: %d %+v", res.Code, res.Body)
	}
}

func TestReadRouteErrors(t *testing.T) {
	r := newTestRouter(t)
	cases := []struct {
		path   string
		status int
		code   string
	}{
		{"/api/restaurants/999", nethttp.StatusNotFound, "not_found"},
		{"/api/restaurants/abc", nethttp.StatusBadRequest, "validation"},
		{"/api/restaurants/999/menu-items", nethttp.StatusNotFound, "not_found"},
		{"/api/restaurants/search?name=", nethttp.StatusBadRequest, "validation"},
		{"/api/restaurants?page=-1", nethttp.StatusBadRequest, "validation"},
		{"/api/restaurants?dir=sideways", nethttp.StatusBadRequest, "validation"},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			res := call(t, r, nethttp.MethodGet, tc.path, nil, "")
			if res.Code != tc.status || errorCode(t, res) != tc.code {
				t.Fatalf("got %d %+v, want %d %s", res.Code, res.Body, tc.status, tc.code)
			}
		})
	}
}

func TestWriteRoutesRequireToken(t *testing.T) {
	r := newTestRouter(t)
	res := call(t, r, nethttp.MethodPost, "/api/restaurants", newRestaurantBody(), "")
	if res.Code != nethttp.StatusUnauthorized || errorCode(t, res) != "unauthorized" {
		t.Fatalf("unauthenticated create: %d %+v", res.Code, res.Body)
	}
	res = call(t, r, nethttp.MethodDelete, "/api/restaurants/1", nil, "")
	if res.Code != nethttp.StatusUnauthorized {
		t.Fatalf("unauthenticated delete: %d", res.Code)
	}
}

func TestWriteLifecycle(t *testing.T) {
	r := newTestRouter(t)
	tok := token(t)

	res := call(t, r, nethttp.MethodPost, "/api/restaurants", newRestaurantBody(), tok)
	if res.Code != nethttp.StatusCreated {
		t.Fatalf("create: %d %+v", res.Code, res.Body)
	}
	id := itoa(int(res.Body["restaurant"].(map[string]any)["id"].(float64)))

	dup := newRestaurantBody()
	dup["ownerEmail"] = "jfrey2704@smoothstack.com"
	dup["street"] = "2222 Street B"
	res = call(t, r, nethttp.MethodPost, "/api/restaurants", dup, tok)
	if res.Code != nethttp.StatusConflict || errorCode(t, res) != "duplicate_field" {
		t.Fatalf("duplicate create: %d %+v", res.Code, res.Body)
	}
	fields := res.Body["error"].(map[string]any)["fields"].([]any)
	if len(fields) != 2 || fields[0] != "email" || fields[1] != "street" {
		t.Fatalf("duplicate fields: %v", fields)
	}

	bad := newRestaurantBody()
	bad["state"] = "California"
	res = call(t, r, nethttp.MethodPost, "/api/restaurants", bad, tok)
	if res.Code != nethttp.StatusBadRequest || errorCode(t, res) != "validation" {
		t.Fatalf("invalid create: %d %+v", res.Code, res.Body)
	}

	res = call(t, r, nethttp.MethodPut, "/api/restaurants/"+id, map[string]any{"name": "Taco Bell Cantina"}, tok)
	updated := res.Body["restaurant"].(map[string]any)
	if res.Code != nethttp.StatusOK || updated["name"] != "Taco Bell Cantina" || lenOf(updated["categories"]) != 1 {
		t.Fatalf("update name: %d %+v", res.Code, res.Body)
	}

	res = call(t, r, nethttp.MethodPut, "/api/restaurants/"+id, map[string]any{"categories": []any{}}, tok)
	if res.Code != nethttp.StatusOK || lenOf(res.Body["restaurant"].(map[string]any)["categories"]) != 0 {
		t.Fatalf("clear categories: %d %+v", res.Code, res.Body)
	}

	res = call(t, r, nethttp.MethodPut, "/api/restaurants/"+id, map[string]any{"street": "1111 Street A"}, tok)
	if res.Code != nethttp.StatusConflict {
		t.Fatalf("update onto taken street: %d %+v", res.Code, res.Body)
	}

	res = call(t, r, nethttp.MethodDelete, "/api/restaurants/"+id, nil, tok)
	if res.Code != nethttp.StatusOK {
		t.Fatalf("delete: %d %+v", res.Code, res.Body)
	}
	res = call(t, r, nethttp.MethodDelete, "/api/restaurants/"+id, nil, tok)
	if res.Code != nethttp.StatusNotFound {
		t.Fatalf("second delete: %d %+v", res.Code, res.Body)
	}
}

func TestMalformedJSON(t *testing.T) {
	r := newTestRouter(t)
	req := httptest.NewRequest(nethttp.MethodPost, "/api/restaurants", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token(t))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != nethttp.StatusBadRequest {
		t.Fatalf("malformed json: %d %s", rec.Code, rec.Body.String())
	}
}

func itoa(n int) string {
	b, _ := json.Marshal(n)
	return string(b)
}

func lenOf(v any) int {
	list, _ := v.([]any)
	return len(list)
}
