package departments

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Department groups tasks and users under a named unit
type Department struct {
	bun.BaseModel `bun:"table:departments,alias:dep"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Name          string     `bun:"name,notnull,unique" json:"name,omitempty"`
	Description   string     `bun:"description" json:"description,omitempty"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}
