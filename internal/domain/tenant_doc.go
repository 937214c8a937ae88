package domain

import (
	"time"
)

type TenantDoc struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	TenantID    string    `gorm:"type:varchar(64);not null;uniqueIndex:uniq_tenant_doc,priority:1" json:"tenant_id"`
	DocName     string    `gorm:"type:varchar(255);not null;uniqueIndex:uniq_tenant_doc,priority:2" json:"doc_name"`
	NumEntries  int       `gorm:"not null;default:0" json:"num_entries"`
	CreatedTime time.Time `gorm:"autoCreateTime" json:"created_time"`
}

func (TenantDoc) TableName() string {
	return "tenant_docs"
}

// KnowledgeEntry is one indexed chunk of a tenant document.
type KnowledgeEntry struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	DocName   string    `json:"doc_name"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// KnowledgeHit is a search result with its relevance score.
type KnowledgeHit struct {
	KnowledgeEntry
	Score float64 `json:"score"`
}
