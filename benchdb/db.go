// Copyright 2025 The MSTBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchdb archives benchmark comparison runs in a SQL
// database, so past runs stay queryable after their CSV logs are
// overwritten.
//
// Only sqlite3 and mysql are explicitly supported; other engines
// receive the sqlite syntax, which may or may not be compatible.
// Drivers are registered by the importing binary.
package benchdb

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/mstlab/mstbench/benchcsv"
)

// DB is a handle to the run archive. It is safe for concurrent use by
// multiple goroutines.
type DB struct {
	sql *sql.DB
	// prepared statements
	insertRun    *sql.Stmt
	insertResult *sql.Stmt
}

// OpenSQL opens the archive behind driverName/dataSourceName, creating
// any missing tables. The parameters are the same as for sql.Open.
func OpenSQL(driverName, dataSourceName string) (*DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	d := &DB{sql: db}
	if err := d.createTables(driverName); err != nil {
		db.Close()
		return nil, err
	}
	if err := d.prepareStatements(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

// createTmpl is the template used to prepare the CREATE statements for
// the database. It is evaluated with . as a map containing one entry
// whose key is the driver name.
var createTmpl = template.Must(template.New("create").Parse(`
CREATE TABLE IF NOT EXISTS Runs (
	RunID {{if .sqlite3}}INTEGER PRIMARY KEY AUTOINCREMENT{{else}}SERIAL PRIMARY KEY AUTO_INCREMENT{{end}},
	SourcePath VARCHAR(1024),
	StartedAt TIMESTAMP
);
CREATE TABLE IF NOT EXISTS Results (
	RunID BIGINT,
	Seq BIGINT,
	Graph VARCHAR(255),
	Algorithm VARCHAR(16),
	Vertices INTEGER,
	Edges INTEGER,
	TimeMS DOUBLE,
	Operations BIGINT,
	MSTCost DOUBLE,
	PRIMARY KEY (RunID, Seq),
	FOREIGN KEY (RunID) REFERENCES Runs(RunID) ON UPDATE CASCADE ON DELETE CASCADE
);
`))

// createTables creates any missing tables on the connection in db.sql.
// driverName is the same driver name passed to sql.Open and is used to
// select the correct syntax.
func (db *DB) createTables(driverName string) error {
	var buf bytes.Buffer
	if err := createTmpl.Execute(&buf, map[string]bool{driverName: true}); err != nil {
		return err
	}
	for _, q := range strings.Split(buf.String(), ";") {
		if strings.TrimSpace(q) == "" {
			continue
		}
		if _, err := db.sql.Exec(q); err != nil {
			return fmt.Errorf("create table: %v", err)
		}
	}
	return nil
}

// prepareStatements calls db.sql.Prepare on reusable SQL statements.
func (db *DB) prepareStatements() error {
	var err error
	db.insertRun, err = db.sql.Prepare("INSERT INTO Runs(SourcePath, StartedAt) VALUES (?, ?)")
	if err != nil {
		return err
	}
	db.insertResult, err = db.sql.Prepare(
		"INSERT INTO Results(RunID, Seq, Graph, Algorithm, Vertices, Edges, TimeMS, Operations, MSTCost) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)")
	return err
}

// InsertRun archives one invocation's records under a fresh run ID,
// which it returns. All rows are written in a single transaction.
func (db *DB) InsertRun(ctx context.Context, sourcePath string, records []benchcsv.Record) (id int64, err error) {
	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	res, err := tx.Stmt(db.insertRun).ExecContext(ctx, sourcePath, time.Now().UTC())
	if err != nil {
		return 0, err
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, err
	}
	insert := tx.Stmt(db.insertResult)
	for seq, r := range records {
		if _, err = insert.ExecContext(ctx, id, seq, r.Graph, string(r.Algorithm),
			r.Vertices, r.Edges, r.TimeMS, r.Operations, r.MSTCost); err != nil {
			return 0, err
		}
	}
	return id, nil
}

// LatestRun returns the highest run ID in the archive, or 0 when the
// archive is empty.
func (db *DB) LatestRun(ctx context.Context) (int64, error) {
	var id sql.NullInt64
	if err := db.sql.QueryRowContext(ctx, "SELECT MAX(RunID) FROM Runs").Scan(&id); err != nil {
		return 0, err
	}
	return id.Int64, nil
}

// RunRecords loads the archived records of one run in insertion order.
func (db *DB) RunRecords(ctx context.Context, runID int64) ([]benchcsv.Record, error) {
	rows, err := db.sql.QueryContext(ctx,
		"SELECT Graph, Algorithm, Vertices, Edges, TimeMS, Operations, MSTCost FROM Results WHERE RunID = ? ORDER BY Seq",
		runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []benchcsv.Record
	for rows.Next() {
		var r benchcsv.Record
		var algo string
		if err := rows.Scan(&r.Graph, &algo, &r.Vertices, &r.Edges, &r.TimeMS, &r.Operations, &r.MSTCost); err != nil {
			return nil, err
		}
		r.Algorithm = benchcsv.Algorithm(algo)
		records = append(records, r)
	}
	return records, rows.Err()
}

// Close closes the database connections, releasing any prepared
// statements.
func (db *DB) Close() error {
	if db.insertRun != nil {
		db.insertRun.Close()
	}
	if db.insertResult != nil {
		db.insertResult.Close()
	}
	return db.sql.Close()
}
