//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestUserPassword is the plaintext behind the bcrypt hash seeded by
// CreateTestUser, so tests can log in through the real auth endpoints.
const TestUserPassword = "password"

const testPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, name, role, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, "Test User", role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestCarWash(t *testing.T, db DBLike, name string, openMin, closeMin int) uuid.UUID {
	t.Helper()

	carWashID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO car_washes (id, name, address, latitude, longitude, open_min, close_min, is_active) VALUES ($1, $2, $3, $4, $5, $6, $7, true)",
		carWashID, name, "123 Test Street", -23.5505, -46.6333, openMin, closeMin)
	require.NoError(t, err)

	return carWashID
}

func CreateTestService(t *testing.T, db DBLike, carWashID uuid.UUID, name string, durationMin int, priceCents int64) uuid.UUID {
	t.Helper()

	serviceID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO services (id, car_wash_id, name, price_cents, duration_min, is_active) VALUES ($1, $2, $3, $4, $5, true)",
		serviceID, carWashID, name, priceCents, durationMin)
	require.NoError(t, err)

	return serviceID
}

func CreateTestBooking(t *testing.T, db DBLike, userID, carWashID, serviceID uuid.UUID, date time.Time, startMin, endMin int, status string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO bookings (id, user_id, car_wash_id, service_id, date, start_min, end_min, status) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
		bookingID, userID, carWashID, serviceID, date, startMin, endMin, status)
	require.NoError(t, err)

	return bookingID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables so each test starts from a clean schema
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
