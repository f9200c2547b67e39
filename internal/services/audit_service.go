package services

import (
	"encoding/json"

	"gorm.io/gorm"

	"budgetwise/internal/logger"
	"budgetwise/internal/models"
)

type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer backed by the audit_logs table.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log appends one audit row. Recording is best-effort: a failed insert is
// logged with the event and the caller's operation stands.
func (s *auditService) Log(ownerID, action, resourceType, resourceID, ipAddress string, changes map[string]any) {
	log := logger.ForOwner(ownerID).With(
		"action", action,
		"resource_type", resourceType,
		"resource_id", resourceID,
	)

	row := models.AuditLog{
		OwnerID:      ownerID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IPAddress:    ipAddress,
		Changes:      encodeChanges(changes),
	}
	if err := s.db.Create(&row).Error; err != nil {
		log.Errorw("audit entry not recorded", "error", err)
		return
	}
	log.Debugw("audit entry recorded", "audit_id", row.ID)
}

// encodeChanges renders the change set as JSON; decimals marshal as numbers.
func encodeChanges(changes map[string]any) string {
	if len(changes) == 0 {
		return ""
	}
	data, err := json.Marshal(changes)
	if err != nil {
		logger.Get().Warnw("audit changes not encodable", "error", err)
		return "{}"
	}
	return string(data)
}
