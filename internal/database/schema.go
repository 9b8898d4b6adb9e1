package database

// Schema contains the DDL for all application tables. Statements are
// idempotent so the schema can be applied on every startup.
const Schema = `
CREATE TABLE IF NOT EXISTS portfolios (
    owner_id   TEXT PRIMARY KEY,
    data       TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS concepts (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    title       TEXT NOT NULL,
    description TEXT NOT NULL,
    category    TEXT NOT NULL,
    created_at  INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS portfolio_snapshots (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    owner_id       TEXT NOT NULL,
    cash           REAL NOT NULL,
    holdings_value REAL NOT NULL,
    total_value    REAL NOT NULL,
    created_at     INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_portfolio_snapshots_owner
    ON portfolio_snapshots(owner_id, created_at);
`
