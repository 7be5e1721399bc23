package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domainagg "github.com/crumbs/restaurant-service/internal/domain/aggregates"
)

func testContext(target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c
}

func TestParsePage(t *testing.T) {
	c := testContext("/x?page=2&size=25&sort=name&dir=DESC")
	p, err := parsePage(c)
	if err != nil {
		t.Fatalf("parsePage: %v", err)
	}
	if p.Page != 2 || p.Size != 25 || p.Sort != "name" || !p.Desc {
		t.Fatalf("unexpected page request: %+v", p)
	}

	p, err = parsePage(testContext("/x"))
	if err != nil || p.Page != 0 || p.Size != 0 || p.Desc {
		t.Fatalf("defaults: %+v %v", p, err)
	}

	_, err = parsePage(testContext("/x?page=a&size=-3&dir=up"))
	if got := domainagg.FieldErrors(err); len(got) != 3 {
		t.Fatalf("expected three field errors, got %v", err)
	}
}

func TestParseID(t *testing.T) {
	for raw, ok := range map[string]bool{"12": true, "0": false, "-4": false, "x": false} {
		c := testContext("/x")
		c.Params = gin.Params{{Key: "id", Value: raw}}
		id, err := parseID(c, "id")
		if ok && (err != nil || id != 12) {
			t.Fatalf("parseID(%q): %d %v", raw, id, err)
		}
		if !ok && !domainagg.IsCode(err, domainagg.CodeValidation) {
			t.Fatalf("parseID(%q): expected validation, got %v", raw, err)
		}
	}
}
