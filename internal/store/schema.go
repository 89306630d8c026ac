// SPDX-License-Identifier: MIT

package store

// Schema DDL. Terms are keyed by their owning combination and the three
// factor words in canonical text form.
const (
	createCombinations = `CREATE TABLE IF NOT EXISTS combinations (
    combination_id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    fingerprint TEXT NOT NULL,
    term_count INTEGER NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createTerms = `CREATE TABLE IF NOT EXISTS terms (
    combination_id TEXT NOT NULL,
    left_word TEXT NOT NULL,
    middle_word TEXT NOT NULL,
    right_word TEXT NOT NULL,
    coeff INTEGER NOT NULL,
    PRIMARY KEY (combination_id, left_word, middle_word, right_word),
    FOREIGN KEY (combination_id) REFERENCES combinations(combination_id)
);`

	createFingerprintIndex = `CREATE INDEX IF NOT EXISTS idx_combinations_fingerprint ON combinations(fingerprint);`
)

// schemaStatements lists the DDL in execution order.
var schemaStatements = []string{
	createCombinations,
	createTerms,
	createFingerprintIndex,
}
