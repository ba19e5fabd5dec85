package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"gitlab.com/dirk.krummacker/contacts-app/internal/model"
)

// SQLStore keeps the contacts in the MySQL table created by scripts/database.sql.
type SQLStore struct {
	// db is a handle to the database.
	db *sqlx.DB

	// insert is a prepared statement for creating a contact on the database.
	insert *sqlx.NamedStmt

	// selectWhereId is a prepared statement for selecting contacts with a given id.
	selectWhereId *sqlx.Stmt

	// deleteWhereId is a prepared statement for deleting a contact with a given id.
	deleteWhereId *sqlx.Stmt

	now func() time.Time
}

// likeEscaper escapes the wildcard characters of a LIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// OpenMySQL connects to the MySQL database described by the data source name.
func OpenMySQL(dsn string) (*SQLStore, error) {
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	s, err := NewSQLStore(sqlDB)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}
	return s, nil
}

// NewSQLStore wraps the sql database with sqlx and prepares all statements. The database argument
// can be a real database for production use or a mock database within unit tests.
func NewSQLStore(sqlDB *sql.DB) (*SQLStore, error) {
	var err error
	s := &SQLStore{db: sqlx.NewDb(sqlDB, "mysql"), now: time.Now}

	// Prepared statements offer a significant speed increase if executed many times.
	s.insert, err = s.db.PrepareNamed(`
		INSERT INTO contacts (id, firstname, lastname, twitter, avatar, notes, favorite, created_at)
		VALUES (:id, :firstname, :lastname, :twitter, :avatar, :notes, :favorite, :created_at)
	`)
	if err != nil {
		return nil, fmt.Errorf("prepare insert: %w", err)
	}
	s.selectWhereId, err = s.db.Preparex(`
		SELECT * FROM contacts WHERE id = ?
	`)
	if err != nil {
		return nil, fmt.Errorf("prepare select: %w", err)
	}
	s.deleteWhereId, err = s.db.Preparex(`
		DELETE FROM contacts WHERE id = ?
	`)
	if err != nil {
		return nil, fmt.Errorf("prepare delete: %w", err)
	}
	return s, nil
}

func (s *SQLStore) List(ctx context.Context, query string) ([]model.Contact, error) {
	contacts := []model.Contact{}
	var err error
	query = strings.TrimSpace(query)
	if query == "" {
		err = s.db.SelectContext(ctx, &contacts, `
			SELECT *
			FROM contacts
			ORDER BY lastname, created_at`)
	} else {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"
		err = s.db.SelectContext(ctx, &contacts, `
			SELECT *
			FROM contacts
			WHERE LOWER(CONCAT(firstname, ' ', lastname)) LIKE ?
			ORDER BY lastname, created_at`, pattern)
	}
	if err != nil {
		return nil, fmt.Errorf("select contacts: %w", err)
	}
	return contacts, nil
}

func (s *SQLStore) Get(ctx context.Context, id string) (model.Contact, error) {
	var contacts []model.Contact
	if err := s.selectWhereId.SelectContext(ctx, &contacts, id); err != nil {
		return model.Contact{}, fmt.Errorf("select contact %s: %w", id, err)
	}
	if len(contacts) == 0 {
		return model.Contact{}, ErrNotFound
	}
	return contacts[0], nil
}

func (s *SQLStore) Create(ctx context.Context, c model.Contact) (model.Contact, error) {
	c.ID = newID()
	c.CreatedAt = s.now().UTC().Truncate(time.Microsecond)
	if _, err := s.insert.ExecContext(ctx, &c); err != nil {
		return model.Contact{}, fmt.Errorf("insert contact: %w", err)
	}
	return c, nil
}

// Update writes the values set in the update (and only those), then reads back the full contact.
func (s *SQLStore) Update(ctx context.Context, id string, u model.ContactUpdate) (model.Contact, error) {
	var sets []string
	var args []any
	add := func(column string, value any) {
		sets = append(sets, column+"=?")
		args = append(args, value)
	}
	if u.First != nil {
		add("firstname", *u.First)
	}
	if u.Last != nil {
		add("lastname", *u.Last)
	}
	if u.Twitter != nil {
		add("twitter", *u.Twitter)
	}
	if u.Avatar != nil {
		add("avatar", *u.Avatar)
	}
	if u.Notes != nil {
		add("notes", *u.Notes)
	}
	if u.Favorite != nil {
		add("favorite", *u.Favorite)
	}

	// MySQL reports zero affected rows when the values did not change, so existence is decided by
	// the select below.
	if len(sets) > 0 {
		args = append(args, id)
		stmt := "UPDATE contacts SET " + strings.Join(sets, ", ") + " WHERE id=?"
		if _, err := s.db.ExecContext(ctx, stmt, args...); err != nil {
			return model.Contact{}, fmt.Errorf("update contact %s: %w", id, err)
		}
	}
	return s.Get(ctx, id)
}

func (s *SQLStore) Delete(ctx context.Context, id string) error {
	result, err := s.deleteWhereId.ExecContext(ctx, id)
	if err != nil {
		return fmt.Errorf("delete contact %s: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete contact %s: %w", id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Close releases the prepared statements and the database connection.
func (s *SQLStore) Close() error {
	s.insert.Close()
	s.selectWhereId.Close()
	s.deleteWhereId.Close()
	return s.db.Close()
}

