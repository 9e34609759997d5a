package journal

import "time"

// Entry is one reconciled record of a run.
type Entry struct {
	ID                  uint      `gorm:"primaryKey;column:id"`
	RunID               string    `gorm:"column:run_id;type:varchar(36);index"`
	Command             string    `gorm:"column:command;type:varchar(64)"`
	SKU                 string    `gorm:"column:sku;type:varchar(255)"`
	PartID              int       `gorm:"column:part_id"`
	SupplierPartID      int       `gorm:"column:supplier_part_id"`
	PartCreated         bool      `gorm:"column:part_created"`
	SupplierPartCreated bool      `gorm:"column:supplier_part_created"`
	CreatedAt           time.Time `gorm:"column:created_at"`
}

func (Entry) TableName() string {
	return "import_journal"
}
