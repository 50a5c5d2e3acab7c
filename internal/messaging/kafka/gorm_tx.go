package kafka

import (
	"database/sql"

	"gorm.io/gorm"
)

// BindGormTx returns the repository bound to the sql transaction that
// backs a gorm transaction, so domain writes and their outbox rows
// commit or roll back together. Outside a transaction the repository
// is returned unchanged.
func BindGormTx(repo OutboxRepository, tx *gorm.DB) OutboxRepository {
	if sqlTx, ok := tx.Statement.ConnPool.(*sql.Tx); ok {
		return repo.WithTx(sqlTx)
	}
	return repo
}
