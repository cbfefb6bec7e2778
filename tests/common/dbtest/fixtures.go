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

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Reference catalog seeded into every test database.
const (
	ProductA int64 = 1 // 10.00, weight_loss
	ProductB int64 = 2 // 5.50, weight_loss
	ProductC int64 = 3 // 24.90, weight_gain

	BranchYunusobod int64 = 1
	BranchSergeli   int64 = 2
	BranchChilonzor int64 = 3
)

func CreateTestUser(t *testing.T, db DBLike, id int64, displayName, phone string) int64 {
	t.Helper()

	var phoneArg any
	if phone != "" {
		phoneArg = phone
	}
	_, err := db.Exec(context.Background(),
		"INSERT INTO users (id, display_name, phone) VALUES ($1, $2, $3) ON CONFLICT (id) DO UPDATE SET phone = EXCLUDED.phone",
		id, displayName, phoneArg)
	require.NoError(t, err)

	return id
}

func AddBasketItem(t *testing.T, db DBLike, userID, productID int64, quantity int) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		`INSERT INTO basket_items (user_id, product_id, quantity) VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, product_id) DO UPDATE SET quantity = EXCLUDED.quantity`,
		userID, productID, quantity)
	require.NoError(t, err)
}

func BasketQuantity(t *testing.T, db DBLike, userID, productID int64) int {
	t.Helper()

	var qty int
	err := db.QueryRow(context.Background(),
		"SELECT COALESCE((SELECT quantity FROM basket_items WHERE user_id = $1 AND product_id = $2), 0)",
		userID, productID).Scan(&qty)
	require.NoError(t, err)
	return qty
}

func CountBasketLines(t *testing.T, db DBLike, userID int64) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM basket_items WHERE user_id = $1", userID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CheckoutState(t *testing.T, db DBLike, userID int64) string {
	t.Helper()

	var state string
	err := db.QueryRow(context.Background(),
		"SELECT COALESCE((SELECT state FROM checkout_sessions WHERE user_id = $1), '')", userID).Scan(&state)
	require.NoError(t, err)
	return state
}

// LatestOrder returns id, total as text, status and fulfillment type of the user's newest order.
func LatestOrder(t *testing.T, db DBLike, userID int64) (id int64, total, status, fulfillment string) {
	t.Helper()

	err := db.QueryRow(context.Background(),
		"SELECT id, total::text, status, fulfillment_type FROM orders WHERE user_id = $1 ORDER BY id DESC LIMIT 1",
		userID).Scan(&id, &total, &status, &fulfillment)
	require.NoError(t, err)
	return id, total, status, fulfillment
}

func CountOrders(t *testing.T, db DBLike, userID int64) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM orders WHERE user_id = $1", userID).Scan(&n)
	require.NoError(t, err)
	return n
}

func DeleteBranch(t *testing.T, db DBLike, id int64) {
	t.Helper()

	_, err := db.Exec(context.Background(), "DELETE FROM branches WHERE id = $1", id)
	require.NoError(t, err)
}

// inserts the catalog every scenario relies on
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO products (id, name, price, category, description) VALUES
		    (1, 'Product A', 10.00, 'weight_loss', 'Plant protein, 30 servings'),
		    (2, 'Product B', 5.50, 'weight_loss', NULL),
		    (3, 'Product C', 24.90, 'weight_gain', 'Mass gainer, 3 kg')
		ON CONFLICT (id) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO branches (id, name, location, description) VALUES
		    (1, 'Yunusobod', 'Amir Temur 108, Tashkent', NULL),
		    (2, 'Sergeli', 'Sergeli 5, Tashkent', 'Open 9:00-21:00'),
		    (3, 'Chilonzor', 'Chilonzor 9, Tashkent', NULL)
		ON CONFLICT (id) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		SELECT setval('products_id_seq', (SELECT MAX(id) FROM products));
		SELECT setval('branches_id_seq', (SELECT MAX(id) FROM branches));
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations', 'atlas_schema_revisions')`)
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

	return SeedReferenceData(pool)
}

func SetProductPrice(t *testing.T, db DBLike, id int64, price string) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE products SET price = $2::numeric WHERE id = $1", id, price)
	require.NoError(t, err)
}

// WaitForLockWaiters blocks until at least n backends wait on a row or table lock.
func WaitForLockWaiters(t *testing.T, db DBLike, n int) {
	t.Helper()

	require.Eventually(t, func() bool {
		var waiting int
		err := db.QueryRow(context.Background(),
			"SELECT count(*) FROM pg_stat_activity WHERE datname = current_database() AND wait_event_type = 'Lock'").Scan(&waiting)
		return err == nil && waiting >= n
	}, 5*time.Second, 20*time.Millisecond)
}
