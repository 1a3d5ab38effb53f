package models

import "time"


// AuditLog is an append-only ledger of admin mutations. Rows are never
// updated or deleted.
type AuditLog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	AdminID     uint      `gorm:"not null;index" json:"admin_id"`
	ActionType  string    `gorm:"size:100;not null;index" json:"action_type"`
	TargetType  string    `gorm:"size:100;index" json:"target_type"`
	TargetID    uint      `gorm:"index" json:"target_id"`
	OldValue    string    `gorm:"type:text" json:"old_value"`
	NewValue    string    `gorm:"type:text" json:"new_value"`
	Description string    `gorm:"size:512" json:"description"`
	CreatedAt   time.Time `json:"created_at"`

	Admin User `gorm:"foreignKey:AdminID" json:"-"`
}

func (AuditLog) TableName() string { return "audit_log" }
