package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/models"
	"budgetwise/internal/services"
)

// --- mock subscription service ---

type mockSubscriptionService struct {
	createSubscriptionFn    func(in services.SubscriptionInput) (*models.Subscription, error)
	getOwnerSubscriptionsFn func(ownerID string) ([]models.Subscription, error)
	deleteSubscriptionFn    func(subscriptionID string) (*models.Subscription, error)
}

func (m *mockSubscriptionService) CreateSubscription(in services.SubscriptionInput) (*models.Subscription, error) {
	if m.createSubscriptionFn != nil {
		return m.createSubscriptionFn(in)
	}
	return &models.Subscription{}, nil
}

func (m *mockSubscriptionService) GetOwnerSubscriptions(ownerID string) ([]models.Subscription, error) {
	if m.getOwnerSubscriptionsFn != nil {
		return m.getOwnerSubscriptionsFn(ownerID)
	}
	return []models.Subscription{}, nil
}

func (m *mockSubscriptionService) DeleteSubscription(subscriptionID string) (*models.Subscription, error) {
	if m.deleteSubscriptionFn != nil {
		return m.deleteSubscriptionFn(subscriptionID)
	}
	return &models.Subscription{Base: models.Base{ID: subscriptionID}}, nil
}

var _ services.SubscriptionServicer = (*mockSubscriptionService)(nil)

func setupSubscriptionRouter(handler *SubscriptionHandler) *gin.Engine {
	r := gin.New()
	r.POST("/subscription", handler.CreateSubscription)
	r.GET("/subscription/:ownerId", handler.GetSubscriptions)
	r.DELETE("/subscription/:id", handler.DeleteSubscription)
	return r
}

func TestSubscriptionHandler_CreateSubscription(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		var got services.SubscriptionInput
		svc := &mockSubscriptionService{
			createSubscriptionFn: func(in services.SubscriptionInput) (*models.Subscription, error) {
				got = in
				return &models.Subscription{Base: models.Base{ID: "sub-1"}, Name: in.Name, Cycle: in.Cycle}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupSubscriptionRouter(NewSubscriptionHandler(svc, audit))

		rec := doRequest(r, "POST", "/subscription",
			`{"ownerId":"owner-1","name":"Music","amount":9.99,"cycle":"Monthly","startDate":"2024-01-31","category":"Fun"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Cycle != models.CycleMonthly || got.StartDate.Day() != 31 {
			t.Errorf("unexpected input %+v", got)
		}
		sub := parseJSON(t, rec)["subscription"].(map[string]interface{})
		if sub["cycle"] != "Monthly" {
			t.Errorf("expected Monthly, got %v", sub["cycle"])
		}
		if actions := audit.actions(); len(actions) != 1 || actions[0] != "CREATE_SUBSCRIPTION" {
			t.Errorf("expected CREATE_SUBSCRIPTION audit entry, got %v", actions)
		}
	})

	tests := []struct {
		name string
		body string
	}{
		{"unknown cycle", `{"ownerId":"o","name":"Music","amount":1,"cycle":"Weekly","startDate":"2024-01-01"}`},
		{"negative amount", `{"ownerId":"o","name":"Music","amount":-1,"cycle":"Yearly","startDate":"2024-01-01"}`},
		{"missing start date", `{"ownerId":"o","name":"Music","amount":1,"cycle":"Yearly"}`},
		{"missing name", `{"ownerId":"o","amount":1,"cycle":"Yearly","startDate":"2024-01-01"}`},
	}
	for _, tt := range tests {
		t.Run("returns 400 on "+tt.name, func(t *testing.T) {
			r := setupSubscriptionRouter(NewSubscriptionHandler(&mockSubscriptionService{}, &mockAuditService{}))

			rec := doRequest(r, "POST", "/subscription", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
			assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
		})
	}
}

func TestSubscriptionHandler_GetSubscriptions(t *testing.T) {
	svc := &mockSubscriptionService{
		getOwnerSubscriptionsFn: func(ownerID string) ([]models.Subscription, error) {
			return []models.Subscription{{OwnerID: ownerID, Name: "A"}, {OwnerID: ownerID, Name: "B"}}, nil
		},
	}
	r := setupSubscriptionRouter(NewSubscriptionHandler(svc, &mockAuditService{}))

	rec := doRequest(r, "GET", "/subscription/owner-1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := rec.Body.String(); body[0] != '[' {
		t.Errorf("expected a JSON array, got %s", body)
	}
}

func TestSubscriptionHandler_DeleteSubscription(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		audit := &mockAuditService{}
		r := setupSubscriptionRouter(NewSubscriptionHandler(&mockSubscriptionService{}, audit))

		rec := doRequest(r, "DELETE", "/subscription/sub-1", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if actions := audit.actions(); len(actions) != 1 || actions[0] != "DELETE_SUBSCRIPTION" {
			t.Errorf("expected DELETE_SUBSCRIPTION audit entry, got %v", actions)
		}
	})

	t.Run("returns 404 when absent", func(t *testing.T) {
		svc := &mockSubscriptionService{
			deleteSubscriptionFn: func(string) (*models.Subscription, error) {
				return nil, apperrors.ErrSubscriptionNotFound
			},
		}
		r := setupSubscriptionRouter(NewSubscriptionHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "DELETE", "/subscription/missing", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "SUBSCRIPTION_NOT_FOUND")
	})
}
