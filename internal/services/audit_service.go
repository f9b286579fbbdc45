package services

import (
	"encoding/json"

	"gorm.io/gorm"

	"dailybudget/internal/logger"
	"dailybudget/internal/models"
)

// AuditAction names a user operation recorded in the audit log.
type AuditAction string

const (
	AuditRegister      AuditAction = "REGISTER"
	AuditLogin         AuditAction = "LOGIN"
	AuditCreateExpense AuditAction = "CREATE_EXPENSE"
	AuditUpdateExpense AuditAction = "UPDATE_EXPENSE"
	AuditDeleteExpense AuditAction = "DELETE_EXPENSE"
	AuditSetBudget     AuditAction = "SET_BUDGET"
	AuditExport        AuditAction = "EXPORT"
)

// auditService appends to the audit_logs table.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log records an audit event. Failures are logged and swallowed; the
// audited operation has already succeeded by the time Log runs.
func (s *auditService) Log(userID string, action AuditAction, resourceType, resourceID, ipAddress string, changes map[string]interface{}) {
	log := logger.Named("audit").With(
		"user_id", userID,
		"action", action,
		"resource_type", resourceType,
		"resource_id", resourceID,
	)

	entry := &models.AuditLog{
		UserID:       userID,
		Action:       string(action),
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IPAddress:    ipAddress,
	}
	if len(changes) > 0 {
		data, err := json.Marshal(changes)
		if err != nil {
			log.Warnw("audit changes not serializable", "error", err)
			data = []byte("{}")
		}
		entry.Changes = string(data)
	}

	if err := s.db.Create(entry).Error; err != nil {
		log.Errorw("failed to write audit log", "error", err)
	}
}
