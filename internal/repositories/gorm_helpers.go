package repositories

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// isUUID reports whether id can be compared against a UUID column.
// Anything else would fail in postgres with SQLSTATE 22P02.
func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// whereUUID filters column by id, matching nothing when id is not a UUID.
func whereUUID(db *gorm.DB, column, id string) *gorm.DB {
	if !isUUID(id) {
		return db.Where("1 = 0")
	}
	return db.Where(column+" = ?", id)
}

// whereCreated bounds created_at to [since, until].
func whereCreated(db *gorm.DB, since, until *time.Time) *gorm.DB {
	if since != nil {
		db = db.Where("created_at >= ?", *since)
	}
	if until != nil {
		db = db.Where("created_at <= ?", *until)
	}
	return db
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

func stampCreate(createdAt, updatedAt *time.Time) {
	now := time.Now().UTC()
	if createdAt.IsZero() {
		*createdAt = now
	}
	*updatedAt = now
}

func orderClause(column string, ascending bool) string {
	if ascending {
		return column + " ASC"
	}
	return column + " DESC"
}
