package vaultconst

const (
	// MaxBatchSize is the maximum number of tokens accepted by a single
	// batch operation of the Vault contract.
	MaxBatchSize = 50

	// MaxSummaryEntries is the maximum number of batch entries reported by
	// a single MultipleTokensWithdrawn notification. A notification is
	// limited to 1024 bytes, a MaxBatchSize-long summary does not fit even
	// with small amounts, so batch withdrawals report entries in runs of
	// this size.
	MaxSummaryEntries = 16
)
