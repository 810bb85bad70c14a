package repository

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// dbDialectName 获取数据库方言名称，默认按 sqlite 处理。
func dbDialectName(db *gorm.DB) string {
	if db == nil || db.Dialector == nil {
		return "sqlite"
	}
	name := strings.ToLower(strings.TrimSpace(db.Dialector.Name()))
	if name == "" {
		return "sqlite"
	}
	return name
}

func supportsRowLocks(dialect string) bool {
	switch strings.ToLower(strings.TrimSpace(dialect)) {
	case "postgres", "postgresql":
		return true
	default:
		// sqlite 写事务本身串行，不支持 FOR UPDATE
		return false
	}
}

// lockingByDialect 返回行锁子句，不支持行锁的方言返回 nil。
func lockingByDialect(dialect, strength string) clause.Expression {
	if !supportsRowLocks(dialect) {
		return nil
	}
	return clause.Locking{Strength: strength}
}

// forUpdate 在支持的方言上追加 SELECT ... FOR UPDATE。
func forUpdate(db *gorm.DB) *gorm.DB {
	if lock := lockingByDialect(dbDialectName(db), "UPDATE"); lock != nil {
		return db.Clauses(lock)
	}
	return db
}

// forShare 在支持的方言上追加 SELECT ... FOR SHARE。
func forShare(db *gorm.DB) *gorm.DB {
	if lock := lockingByDialect(dbDialectName(db), "SHARE"); lock != nil {
		return db.Clauses(lock)
	}
	return db
}
