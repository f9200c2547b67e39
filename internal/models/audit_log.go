package models

// Audited mutations.
const (
	AuditCreateBudget       = "CREATE_BUDGET"
	AuditReplaceBudget      = "REPLACE_BUDGET"
	AuditCreateExpense      = "CREATE_EXPENSE"
	AuditDeleteExpense      = "DELETE_EXPENSE"
	AuditCreateSubscription = "CREATE_SUBSCRIPTION"
	AuditDeleteSubscription = "DELETE_SUBSCRIPTION"
)

// AuditLog records ledger mutations (budget rollovers, expense and
// subscription changes) for later review.
type AuditLog struct {
	Base
	OwnerID      string `gorm:"not null;index" json:"ownerId"`
	Action       string `gorm:"not null" json:"action"`
	ResourceType string `gorm:"not null" json:"resourceType"`
	ResourceID   string `json:"resourceId"`
	IPAddress    string `json:"ipAddress"`
	Changes      string `json:"changes,omitempty"`
}
