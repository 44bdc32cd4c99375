package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/activitydash/activity_dashboard_app/internal/apperrors"
	"github.com/activitydash/activity_dashboard_app/internal/core/domain"
	portsrepo "github.com/activitydash/activity_dashboard_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationCode = "23505"

type TallyRepository struct {
	db *pgxpool.Pool
}

func NewTallyRepository(db *pgxpool.Pool) *TallyRepository {
	return &TallyRepository{db: db}
}

// Ensure TallyRepository implements the port.
var _ portsrepo.TallyRepository = (*TallyRepository)(nil)

func (r *TallyRepository) FindWeeksByUser(ctx context.Context, userID int64) ([]domain.Week, error) {
	weekQuery := `
        SELECT id, user_id, week_number, start_date, end_date
        FROM weeks
        WHERE user_id = $1
        ORDER BY week_number;
    `
	rows, err := r.db.Query(ctx, weekQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query weeks: %w", err)
	}
	defer rows.Close()

	weeks := []domain.Week{}
	weekIndex := map[int64]int{}
	weekIDs := []int64{}
	for rows.Next() {
		var week domain.Week
		err := rows.Scan(&week.WeekID, &week.UserID, &week.WeekNumber, &week.StartDate, &week.EndDate)
		if err != nil {
			return nil, fmt.Errorf("failed to scan week row: %w", err)
		}
		weekIndex[week.WeekID] = len(weeks)
		weekIDs = append(weekIDs, week.WeekID)
		weeks = append(weeks, week)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating week rows: %w", rows.Err())
	}
	if len(weeks) == 0 {
		return weeks, nil
	}

	// Entries come back in the fixed Monday-first weekday order, not
	// insertion order.
	entryQuery := `
        SELECT id, week_id, day, text_new_recruits, calls_to_recruits,
               text_interviews, insta_dms, initial_interviews
        FROM tally_entries
        WHERE week_id = ANY($1)
        ORDER BY week_id,
            CASE day
                WHEN 'Monday' THEN 1
                WHEN 'Tuesday' THEN 2
                WHEN 'Wednesday' THEN 3
                WHEN 'Thursday' THEN 4
                WHEN 'Friday' THEN 5
                WHEN 'Saturday' THEN 6
                WHEN 'Sunday' THEN 7
            END;
    `
	entryRows, err := r.db.Query(ctx, entryQuery, weekIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query tally entries: %w", err)
	}
	defer entryRows.Close()

	for entryRows.Next() {
		var entry domain.TallyEntry
		err := entryRows.Scan(
			&entry.EntryID,
			&entry.WeekID,
			&entry.Day,
			&entry.TextNewRecruits,
			&entry.CallsToRecruits,
			&entry.TextInterviews,
			&entry.InstaDMs,
			&entry.InitialInterviews,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tally entry row: %w", err)
		}
		if i, ok := weekIndex[entry.WeekID]; ok {
			weeks[i].Entries = append(weeks[i].Entries, entry)
		}
	}
	if entryRows.Err() != nil {
		return nil, fmt.Errorf("error iterating tally entry rows: %w", entryRows.Err())
	}

	return weeks, nil
}

// CreateWeek inserts the week row and its seven zero-valued entries in one
// transaction, so a week without all seven entries is never observable.
func (r *TallyRepository) CreateWeek(ctx context.Context, userID int64, weekNumber int, startDate, endDate time.Time) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin week transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var weekID int64
	weekQuery := `
        INSERT INTO weeks (user_id, week_number, start_date, end_date)
        VALUES ($1, $2, $3, $4)
        RETURNING id;
    `
	err = tx.QueryRow(ctx, weekQuery, userID, weekNumber, startDate, endDate).Scan(&weekID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return 0, apperrors.ErrDuplicate
		}
		return 0, fmt.Errorf("failed to insert week: %w", err)
	}

	entryQuery := `
        INSERT INTO tally_entries (week_id, day)
        VALUES ($1, $2);
    `
	for _, day := range domain.Weekdays {
		if _, err := tx.Exec(ctx, entryQuery, weekID, day); err != nil {
			return 0, fmt.Errorf("failed to seed tally entry for %s: %w", day, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit week transaction: %w", err)
	}
	return weekID, nil
}

// UpdateEntryField sets one counter column. The column name comes from the
// closed TallyField enumeration, never from client input.
func (r *TallyRepository) UpdateEntryField(ctx context.Context, entryID int64, field domain.TallyField, value int) error {
	query := fmt.Sprintf(`
        UPDATE tally_entries
        SET %s = $1, updated_at = CURRENT_TIMESTAMP
        WHERE id = $2;
    `, field.Column())
	// An unknown entry id affects zero rows and is not an error; the
	// update is simply a no-op, matching the patch contract.
	_, err := r.db.Exec(ctx, query, value, entryID)
	if err != nil {
		return fmt.Errorf("failed to update tally entry: %w", err)
	}
	return nil
}
