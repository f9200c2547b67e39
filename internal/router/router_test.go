package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"budgetwise/internal/dates"
	"budgetwise/internal/models"
	"budgetwise/internal/services"
	"budgetwise/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testApp holds the full application stack for flow tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	r, err := New(Services{
		Budget:       services.NewBudgetService(db),
		Expense:      services.NewExpenseService(db),
		Subscription: services.NewSubscriptionService(db),
		Advisor:      services.NewAdvisorService(db, nil, nil, time.Second),
		Audit:        services.NewAuditService(db),
	})
	if err != nil {
		t.Fatalf("failed to build router: %v", err)
	}
	return &testApp{DB: db, Router: r}
}

func (a *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) mustRequest(t *testing.T, method, path, body string, wantStatus int) map[string]interface{} {
	t.Helper()
	rec := a.request(method, path, body)
	if rec.Code != wantStatus {
		t.Fatalf("%s %s: expected %d, got %d: %s", method, path, wantStatus, rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// window returns a budget period around today so forecasts see it as active.
func window() (string, string) {
	today := dates.StartOfDay(dates.Now())
	return dates.ISO(today.AddDate(0, 0, -10)), dates.ISO(today.AddDate(0, 0, 20))
}

func budgetBody(owner string, total int) string {
	start, end := window()
	return fmt.Sprintf(`{"ownerId":%q,"totalAmount":%d,"startDate":%q,"endDate":%q}`, owner, total, start, end)
}

func expenseBody(owner, category string, amount float64) string {
	return fmt.Sprintf(`{"ownerId":%q,"category":%q,"name":"%s spend","amount":%v,"date":%q}`,
		owner, category, category, amount, dates.ISO(dates.Now()))
}

func TestHealthAndOperationalEndpoints(t *testing.T) {
	app := setupApp(t)

	if rec := app.request("GET", "/api/health", ""); rec.Code != http.StatusOK {
		t.Errorf("health: expected 200, got %d", rec.Code)
	}

	app.request("GET", "/api/v1/budget/nobody", "")
	rec := app.request("GET", "/metrics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `budgetwise_requests_total`) {
		t.Error("expected request counter in metrics output")
	}

	if rec := app.request("GET", "/swagger/doc.json", ""); rec.Code != http.StatusOK {
		t.Errorf("swagger: expected 200, got %d", rec.Code)
	}
}

func TestExpenseFlow_BalanceInvariant(t *testing.T) {
	app := setupApp(t)
	owner := testutil.NewOwnerID()

	app.mustRequest(t, "POST", "/api/v1/budget", budgetBody(owner, 1000), http.StatusCreated)

	first := app.mustRequest(t, "POST", "/api/v1/expense", expenseBody(owner, "Food", 250.25), http.StatusCreated)
	app.mustRequest(t, "POST", "/api/v1/expense", expenseBody(owner, "Travel", 700), http.StatusCreated)

	// 49.75 left; 100 does not fit.
	rec := app.request("POST", "/api/v1/expense", expenseBody(owner, "Food", 100))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	overview := app.mustRequest(t, "GET", "/api/v1/budget/"+owner, "", http.StatusOK)
	budget := overview["budget"].(map[string]interface{})
	if budget["currentAmount"].(float64) != 49.75 {
		t.Errorf("expected currentAmount 49.75 after rejection, got %v", budget["currentAmount"])
	}

	expenseID := first["expense"].(map[string]interface{})["id"].(string)
	app.mustRequest(t, "DELETE", "/api/v1/expense/"+expenseID, "", http.StatusOK)

	overview = app.mustRequest(t, "GET", "/api/v1/budget/"+owner, "", http.StatusOK)
	budget = overview["budget"].(map[string]interface{})
	if budget["currentAmount"].(float64) != 300 {
		t.Errorf("expected currentAmount 300 after delete, got %v", budget["currentAmount"])
	}

	rec = app.request("DELETE", "/api/v1/expense/"+expenseID, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 on second delete, got %d", rec.Code)
	}

	var audits int64
	app.DB.Model(&models.AuditLog{}).Where("owner_id = ?", owner).Count(&audits)
	if audits != 4 {
		t.Errorf("expected 4 audit entries (budget, 2 expenses, delete), got %d", audits)
	}
}

func TestExpenseFlow_NoBudget(t *testing.T) {
	app := setupApp(t)
	owner := testutil.NewOwnerID()

	rec := app.request("POST", "/api/v1/expense", expenseBody(owner, "Food", 10))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if code := parseJSON(t, rec)["error"].(map[string]interface{})["code"]; code != "NO_ACTIVE_BUDGET" {
		t.Errorf("expected NO_ACTIVE_BUDGET, got %v", code)
	}

	rec = app.request("GET", "/api/v1/budget/"+owner, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for overview without budget, got %d", rec.Code)
	}

	forecast := app.mustRequest(t, "GET", "/api/v1/advisor/forecast/"+owner, "", http.StatusOK)
	if forecast["hasBudget"] != false {
		t.Errorf("expected hasBudget=false, got %v", forecast["hasBudget"])
	}
}

func TestSubscriptionFlow_VirtualCharges(t *testing.T) {
	app := setupApp(t)
	owner := testutil.NewOwnerID()

	app.mustRequest(t, "POST", "/api/v1/budget", budgetBody(owner, 2000), http.StatusCreated)
	app.mustRequest(t, "POST", "/api/v1/expense", expenseBody(owner, "Food", 40), http.StatusCreated)

	// Billed on today's day of month: exactly one charge in the 30-day window.
	today := dates.ISO(dates.Now())
	sub := app.mustRequest(t, "POST", "/api/v1/subscription",
		fmt.Sprintf(`{"ownerId":%q,"name":"Cloud","amount":60,"cycle":"Monthly","startDate":%q}`, owner, today),
		http.StatusCreated)
	subID := sub["subscription"].(map[string]interface{})["id"].(string)

	list := app.mustRequest(t, "GET", "/api/v1/expense/"+owner, "", http.StatusOK)
	data := list["data"].([]interface{})
	if len(data) != 2 {
		t.Fatalf("expected 1 expense plus 1 subscription charge, got %d", len(data))
	}
	virtual := data[1].(map[string]interface{})
	if virtual["kind"] != "virtual" || virtual["name"] != "Cloud (Subscription)" {
		t.Errorf("unexpected virtual entry %v", virtual)
	}
	if list["totalItems"].(float64) != 1 {
		t.Errorf("expected totalItems 1, got %v", list["totalItems"])
	}

	overview := app.mustRequest(t, "GET", "/api/v1/budget/"+owner, "", http.StatusOK)
	if overview["subscriptionCharges"].(float64) != 60 || overview["adjustedCurrentAmount"].(float64) != 1900 {
		t.Errorf("unexpected overview %v", overview)
	}

	rec := app.request("GET", "/api/v1/expense/category-percentage/"+owner, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var shares []struct {
		Category   string  `json:"category"`
		Percentage float64 `json:"percentage"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &shares); err != nil {
		t.Fatalf("failed to parse shares: %v", err)
	}
	if len(shares) != 2 || shares[0].Category != "Subscription" || shares[0].Percentage != 60 {
		t.Errorf("unexpected category breakdown %+v", shares)
	}

	app.mustRequest(t, "DELETE", "/api/v1/subscription/"+subID, "", http.StatusOK)
	list = app.mustRequest(t, "GET", "/api/v1/expense/"+owner, "", http.StatusOK)
	if len(list["data"].([]interface{})) != 1 {
		t.Errorf("expected subscription charges to disappear after delete")
	}
}

func TestBudgetFlow_Rollover(t *testing.T) {
	app := setupApp(t)
	owner := testutil.NewOwnerID()

	app.mustRequest(t, "POST", "/api/v1/budget", budgetBody(owner, 1000), http.StatusCreated)
	app.mustRequest(t, "POST", "/api/v1/expense", expenseBody(owner, "Food", 690), http.StatusCreated)

	start, end := window()
	replaced := app.mustRequest(t, "PUT", "/api/v1/budget/"+owner,
		fmt.Sprintf(`{"totalAmount":1500,"savingsTarget":100,"startDate":%q,"endDate":%q}`, start, end),
		http.StatusOK)
	budget := replaced["budget"].(map[string]interface{})
	if budget["currentAmount"].(float64) != 1500 {
		t.Errorf("expected a fresh balance of 1500, got %v", budget["currentAmount"])
	}

	history := app.mustRequest(t, "GET", "/api/v1/budget/history/"+owner, "", http.StatusOK)
	items := history["data"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("expected 1 archived period, got %d", len(items))
	}
	archived := items[0].(map[string]interface{})
	if archived["achievement"] != "Gold" {
		t.Errorf("expected Gold for 31%% remaining, got %v", archived["achievement"])
	}
	if archived["remainingAmount"].(float64) != 310 {
		t.Errorf("expected remainingAmount 310, got %v", archived["remainingAmount"])
	}
	if len(archived["entries"].([]interface{})) != 1 {
		t.Errorf("expected the expense to be archived, got %v", archived["entries"])
	}

	list := app.mustRequest(t, "GET", "/api/v1/expense/"+owner, "", http.StatusOK)
	if len(list["data"].([]interface{})) != 0 {
		t.Error("expected the new period to start without expenses")
	}

	rec := app.request("PUT", "/api/v1/budget/"+testutil.NewOwnerID(),
		fmt.Sprintf(`{"totalAmount":1500,"startDate":%q,"endDate":%q}`, start, end))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 replacing a missing budget, got %d", rec.Code)
	}
}

func TestAdvisorFlow(t *testing.T) {
	app := setupApp(t)
	owner := testutil.NewOwnerID()

	app.mustRequest(t, "POST", "/api/v1/budget", budgetBody(owner, 3000), http.StatusCreated)
	app.mustRequest(t, "POST", "/api/v1/expense", expenseBody(owner, "Food", 1200), http.StatusCreated)

	forecast := app.mustRequest(t, "GET", "/api/v1/advisor/forecast/"+owner, "", http.StatusOK)
	if forecast["hasBudget"] != true {
		t.Fatalf("expected hasBudget=true, got %v", forecast)
	}
	if forecast["totalSpent"].(float64) != 1200 {
		t.Errorf("expected totalSpent 1200, got %v", forecast["totalSpent"])
	}
	if forecast["anomalyAlert"] == nil {
		t.Error("expected an anomaly alert for a 1200 expense today")
	}
	if len(forecast["projection"].([]interface{})) != 12 {
		t.Errorf("expected 12 projection points")
	}

	advice := app.mustRequest(t, "GET", "/api/v1/advisor/advice/"+owner, "", http.StatusOK)
	if advice["available"] != false || advice["message"] != "Advice is temporarily unavailable" {
		t.Errorf("expected degraded advice without a generator, got %v", advice)
	}
}
