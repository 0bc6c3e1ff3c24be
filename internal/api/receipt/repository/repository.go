package receiptRepository

import (
	"ReceiptLedger/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
	Migrate(ctx context.Context) error
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		var err error
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Receipt:  &receiptRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

func (r *repository) Migrate(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, querySchema)
	return err
}

type Client struct {
	Receipt interface {
		CreateReceipt(ctx context.Context, receipt entity.StoredReceipt) error
		GetReceiptByDigest(ctx context.Context, digest string) (entity.StoredReceipt, error)
		GetReceiptsByMonth(ctx context.Context, month string) ([]entity.StoredReceipt, error)
	}

	Commit   func() error
	Rollback func() error
}

type receiptRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
