package model

import (
	"time"
)

// ConnectionModel is the GORM-specific struct for the 'connections'
// table, the durable half of the presence registry. One row per live
// connection; rows never outlive the physical connection.
type ConnectionModel struct {
	ConnectionID  string `gorm:"type:varchar(255);primary_key"`
	ActorKind     string `gorm:"type:varchar(20);not null"`
	IdentityKind  string `gorm:"type:varchar(20);not null;index:idx_conn_identity"`
	IdentityValue string `gorm:"type:varchar(255);not null;index:idx_conn_identity"`
	Disabled      bool   `gorm:"not null;default:false"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ConnectionModel) TableName() string {
	return "connections"
}
