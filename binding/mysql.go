package binding

import (
	"bytes"
	"database/sql"
	"fmt"
	"strconv"

	_ "github.com/go-sql-driver/mysql"
	"github.com/hhkbp2/kvbench"
)

const (
	PropertyMysqlHost            = "mysql.host"
	PropertyMysqlHostDefault     = "127.0.0.1"
	PropertyMysqlPort            = "mysql.port"
	PropertyMysqlPortDefault     = "3306"
	PropertyMysqlDatabase        = "mysql.db"
	PropertyMysqlDatabaseDefault = "db"
	PropertyMysqlUser            = "mysql.user"
	PropertyMysqlUserDefault     = "user"
	PropertyMysqlPassword        = "mysql.password"
	PropertyMysqlPasswordDefault = "password"
	PropertyMysqlOptions         = "mysql.options"
	PropertyMysqlOptionsDefault  = "charset=utf8"
)

// MysqlStore benchmarks a MySQL (or compatible) server. The transactional
// write is an INSERT ... ON DUPLICATE KEY UPDATE inside an explicit
// transaction on the benchmark key, and batch inserts use one multi-row
// INSERT statement per batch.
type MysqlStore struct {
	*kvbench.StoreBase
	db *sql.DB
}

func NewMysqlStore() *MysqlStore {
	return &MysqlStore{
		StoreBase: kvbench.NewStoreBase(),
	}
}

func (self *MysqlStore) Init() error {
	props := self.GetProperties()
	host := props.GetDefault(PropertyMysqlHost, PropertyMysqlHostDefault)
	propStr := props.GetDefault(PropertyMysqlPort, PropertyMysqlPortDefault)
	port, err := strconv.ParseInt(propStr, 0, 32)
	if err != nil {
		return err
	}
	database := props.GetDefault(PropertyMysqlDatabase, PropertyMysqlDatabaseDefault)
	user := props.GetDefault(PropertyMysqlUser, PropertyMysqlUserDefault)
	password := props.GetDefault(PropertyMysqlPassword, PropertyMysqlPasswordDefault)
	options := props.GetDefault(PropertyMysqlOptions, PropertyMysqlOptionsDefault)
	sourceName := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s", user, password, host, port, database, options)
	db, err := sql.Open("mysql", sourceName)
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
		db.SetMaxIdleConns(poolSize)
	}
	self.db = db
	return nil
}

func (self *MysqlStore) Cleanup() error {
	if self.db != nil {
		return self.db.Close()
	}
	return nil
}

func (self *MysqlStore) Read(table, keyColumn, payloadColumn, key string) (string, error) {
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

func (self *MysqlStore) WriteInTransaction(table, keyColumn, payloadColumn, key, payload string) error {
	statement := fmt.Sprintf(
		"INSERT INTO %s (%s, %s) VALUES (?, ?) ON DUPLICATE KEY UPDATE %s = VALUES(%s)",
		table, keyColumn, payloadColumn, payloadColumn, payloadColumn)
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

func (self *MysqlStore) BatchInsert(table, keyColumn, payloadColumn string, rows []kvbench.Row) error {
	if len(rows) == 0 {
		return nil
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "INSERT INTO %s (%s, %s) VALUES ", table, keyColumn, payloadColumn)
	args := make([]interface{}, 0, 2*len(rows))
	for i, row := range rows {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString("(?, ?)")
		args = append(args, row.Key, row.Payload)
	}
	_, err := self.db.Exec(buf.String(), args...)
	return err
}
