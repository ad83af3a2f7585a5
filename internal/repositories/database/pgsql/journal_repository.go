package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/opsledger/fixed_asset_app/internal/apperrors"
	"github.com/opsledger/fixed_asset_app/internal/core/domain"
	portsrepo "github.com/opsledger/fixed_asset_app/internal/core/ports/repositories"
	"github.com/opsledger/fixed_asset_app/internal/models"
	"github.com/opsledger/fixed_asset_app/internal/utils/mapping"
)

type PgxJournalRepository struct {
	pool *pgxpool.Pool
}

// newPgxJournalRepository creates a new repository for GL journal entries.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{pool: pool}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

const journalEntryColumns = `journal_entry_id, entry_date, description, source_document,
	created_at, created_by, last_updated_at, last_updated_by`

func scanJournalEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.JournalEntryID,
		&m.EntryDate,
		&m.Description,
		&m.SourceDocument,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveJournalEntryInTx persists a journal entry and its lines within the
// posting transaction. The header insert and the line inserts go through one
// batch so a partial write cannot survive.
func (r *PgxJournalRepository) SaveJournalEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry) error {
	m := mapping.ToModelJournalEntry(entry)

	batch := &pgx.Batch{}
	batch.Queue(`
		INSERT INTO journal_entries (`+journalEntryColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`,
		m.JournalEntryID,
		m.EntryDate,
		m.Description,
		m.SourceDocument,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)

	lineQuery := `
		INSERT INTO journal_lines (line_id, journal_entry_id, account_id, side, amount, memo, line_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for i, line := range entry.Lines {
		batch.Queue(lineQuery,
			uuid.NewString(),
			m.JournalEntryID,
			line.AccountID,
			string(line.Side),
			line.Amount,
			line.Memo,
			i,
		)
	}

	br := tx.SendBatch(ctx, batch)
	defer br.Close()

	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return fmt.Errorf("%w: journal entry %s already exists", apperrors.ErrDuplicate, m.JournalEntryID)
			}
			return fmt.Errorf("failed to save journal entry %s: %w", m.JournalEntryID, err)
		}
	}
	return nil
}

// findLines loads the lines for one journal entry in insertion order.
func (r *PgxJournalRepository) findLines(ctx context.Context, journalEntryID string) ([]domain.JournalLine, error) {
	query := `
		SELECT line_id, journal_entry_id, account_id, side, amount, memo, line_order
		FROM journal_lines
		WHERE journal_entry_id = $1
		ORDER BY line_order;
	`

	rows, err := r.pool.Query(ctx, query, journalEntryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal lines for %s: %w", journalEntryID, err)
	}
	defer rows.Close()

	lines := []domain.JournalLine{}
	for rows.Next() {
		var m models.JournalLine
		if err := rows.Scan(&m.LineID, &m.JournalEntryID, &m.AccountID, &m.Side, &m.Amount, &m.Memo, &m.LineOrder); err != nil {
			return nil, fmt.Errorf("failed to scan journal line for %s: %w", journalEntryID, err)
		}
		lines = append(lines, mapping.ToDomainJournalLine(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating journal lines for %s: %w", journalEntryID, rows.Err())
	}

	return lines, nil
}

// FindJournalEntryByID retrieves a journal entry with its lines.
func (r *PgxJournalRepository) FindJournalEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + journalEntryColumns + ` FROM journal_entries WHERE journal_entry_id = $1;`

	m, err := scanJournalEntry(r.pool.QueryRow(ctx, query, journalEntryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal entry %s: %w", journalEntryID, err)
	}

	d := mapping.ToDomainJournalEntry(m)
	d.Lines, err = r.findLines(ctx, journalEntryID)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListJournalEntriesBySource retrieves entries created for a source document
// number, with their lines.
func (r *PgxJournalRepository) ListJournalEntriesBySource(ctx context.Context, sourceDocument string) ([]domain.JournalEntry, error) {
	query := `SELECT ` + journalEntryColumns + ` FROM journal_entries WHERE source_document = $1 ORDER BY entry_date;`

	rows, err := r.pool.Query(ctx, query, sourceDocument)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entries for source %s: %w", sourceDocument, err)
	}
	defer rows.Close()

	modelEntries := []models.JournalEntry{}
	for rows.Next() {
		m, err := scanJournalEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal entry row for source %s: %w", sourceDocument, err)
		}
		modelEntries = append(modelEntries, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating journal entry rows for source %s: %w", sourceDocument, rows.Err())
	}

	entries := make([]domain.JournalEntry, len(modelEntries))
	for i, m := range modelEntries {
		d := mapping.ToDomainJournalEntry(m)
		d.Lines, err = r.findLines(ctx, m.JournalEntryID)
		if err != nil {
			return nil, err
		}
		entries[i] = d
	}
	return entries, nil
}
