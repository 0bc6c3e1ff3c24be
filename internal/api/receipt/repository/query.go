package receiptRepository

// receipt_date stays TEXT: the parser may emit calendar-impossible days such
// as 2024-02-31, which a DATE column would reject.
const (
	querySchema = `
		CREATE TABLE IF NOT EXISTS receipts (
			id             VARCHAR(26) PRIMARY KEY,
			request_id     VARCHAR(64) NOT NULL,
			digest         CHAR(64) NOT NULL UNIQUE,
			receipt_date   VARCHAR(10) NOT NULL,
			store          TEXT NOT NULL,
			amount         BIGINT NOT NULL CHECK (amount >= 0),
			category       VARCHAR(16) NOT NULL,
			payment        VARCHAR(16) NOT NULL,
			transcript_key TEXT,
			created_at     TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_receipts_receipt_date ON receipts (receipt_date);
	`

	queryCreateReceipt = `
		INSERT INTO receipts (
			id,
			request_id,
			digest,
			receipt_date,
			store,
			amount,
			category,
			payment,
			transcript_key,
			created_at
		) VALUES (
			:id,
			:request_id,
			:digest,
			:receipt_date,
			:store,
			:amount,
			:category,
			:payment,
			:transcript_key,
			:created_at
		)
		ON CONFLICT (digest) DO NOTHING
	`

	queryGetReceiptByDigest = `
		SELECT
			id,
			request_id,
			digest,
			receipt_date,
			store,
			amount,
			category,
			payment,
			transcript_key,
			created_at
		FROM receipts
		WHERE digest = :digest
	`

	queryGetReceiptsByMonth = `
		SELECT
			id,
			request_id,
			digest,
			receipt_date,
			store,
			amount,
			category,
			payment,
			transcript_key,
			created_at
		FROM receipts
		WHERE receipt_date LIKE :month_prefix
		ORDER BY receipt_date ASC, created_at ASC
	`
)
