package shared

import (
	"context"

	"massfit-bot/internal/domain/basket"
	"massfit-bot/internal/domain/checkout"
	"massfit-bot/internal/domain/order"
	"massfit-bot/internal/domain/user"
	sqlc "massfit-bot/internal/infra/sqlc/generated"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Baskets() BasketRepository
	Orders() OrderRepository
	Sessions() CheckoutSessionRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	ProductByID(ctx context.Context, id int64) (*ProductSnapshot, error)
	BranchByID(ctx context.Context, id int64) (*BranchSnapshot, error)
	// LockBranch takes a share lock so the branch cannot vanish before commit.
	LockBranch(ctx context.Context, id int64) (*BranchSnapshot, error)
}

type UserRepository interface {
	Upsert(ctx context.Context, tx sqlc.DBTX, u *user.User) (*user.User, error)
	CapturePhone(ctx context.Context, tx sqlc.DBTX, userID int64, phone user.Phone) (bool, error)
	FindByID(ctx context.Context, tx sqlc.DBTX, userID int64) (*user.User, error)
}

type BasketRepository interface {
	// Increment adds one unit to the stored quantity and returns the new total.
	Increment(ctx context.Context, tx sqlc.DBTX, userID, productID int64) (int, error)
	// Decrement removes one unit, deleting the entry at zero. Absent entries stay absent.
	Decrement(ctx context.Context, tx sqlc.DBTX, userID, productID int64) (int, error)
	Get(ctx context.Context, tx sqlc.DBTX, userID int64) (basket.Basket, error)
	// GetForUpdate row-locks every entry until the transaction ends.
	GetForUpdate(ctx context.Context, tx sqlc.DBTX, userID int64) (basket.Basket, error)
	Clear(ctx context.Context, tx sqlc.DBTX, userID int64) (int64, error)
	// RemoveLines deletes only the given products, leaving lines added concurrently.
	RemoveLines(ctx context.Context, tx sqlc.DBTX, userID int64, productIDs []int64) (int64, error)
}

type OrderRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) (int64, error)
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, orderID int64) (*order.Order, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, o *order.Order) error
	SetStaffMessage(ctx context.Context, tx sqlc.DBTX, orderID int64, ref MessageRef) error
}

type CheckoutSessionRepository interface {
	// Load returns an idle session when none is stored.
	Load(ctx context.Context, tx sqlc.DBTX, userID int64) (*checkout.Session, error)
	Save(ctx context.Context, tx sqlc.DBTX, s *checkout.Session) error
	Delete(ctx context.Context, tx sqlc.DBTX, userID int64) (bool, error)
}
