package binding

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/hhkbp2/kvbench"
	_ "modernc.org/sqlite"
)

const (
	PropertySqlitePath        = "sqlite.path"
	PropertySqlitePathDefault = "kvbench.db"
)

// SqliteStore benchmarks an embedded SQLite database. Useful for trying the
// harness end-to-end without any server; single-writer limits apply.
type SqliteStore struct {
	*kvbench.StoreBase
	db *sql.DB
}

func NewSqliteStore() *SqliteStore {
	return &SqliteStore{
		StoreBase: kvbench.NewStoreBase(),
	}
}

func (self *SqliteStore) Init() error {
	props := self.GetProperties()
	path := props.GetDefault(PropertySqlitePath, PropertySqlitePathDefault)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	poolSize, err := strconv.Atoi(props.GetDefault(
		kvbench.PropertyPoolSize, kvbench.PropertyPoolSizeDefault))
	if err != nil {
		db.Close()
		return err
	}
	if poolSize > 0 {
		db.SetMaxOpenConns(poolSize)
	}
	self.db = db
	return nil
}

func (self *SqliteStore) Cleanup() error {
	if self.db != nil {
		return self.db.Close()
	}
	return nil
}

func (self *SqliteStore) Read(table, keyColumn, payloadColumn, key string) (string, error) {
	statement := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ?",
		payloadColumn, table, keyColumn)
	var payload string
	err := self.db.QueryRow(statement, key).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	return payload, nil
}

func (self *SqliteStore) WriteInTransaction(table, keyColumn, payloadColumn, key, payload string) error {
	statement := fmt.Sprintf(
		"INSERT INTO %s (%s, %s) VALUES (?, ?) ON CONFLICT(%s) DO UPDATE SET %s = excluded.%s",
		table, keyColumn, payloadColumn, keyColumn, payloadColumn, payloadColumn)
	tx, err := self.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(statement, key, payload); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (self *SqliteStore) BatchInsert(table, keyColumn, payloadColumn string, rows []kvbench.Row) error {
	if len(rows) == 0 {
		return nil
	}
	statement := fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES (?, ?)",
		table, keyColumn, payloadColumn)
	tx, err := self.db.Begin()
	if err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := tx.Exec(statement, row.Key, row.Payload); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}
