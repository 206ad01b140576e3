package journal

const Schema = `
CREATE TABLE IF NOT EXISTS outcomes (
	trade_id TEXT PRIMARY KEY,
	instrument TEXT NOT NULL,
	sequence INTEGER NOT NULL,
	outcome TEXT NOT NULL,
	price REAL NOT NULL,
	units REAL NOT NULL,
	balance_before REAL NOT NULL,
	balance_after REAL NOT NULL,
	profit_target REAL NOT NULL,
	stop_loss_pct REAL NOT NULL,
	stop_loss_amt REAL NOT NULL,
	step_before INTEGER NOT NULL,
	step_after INTEGER NOT NULL,
	time DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS ladder (
	time DATETIME NOT NULL,
	balance REAL NOT NULL,
	step INTEGER NOT NULL,
	trade_count INTEGER NOT NULL,
	total_return_pct REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_outcomes_sequence ON outcomes(sequence);
CREATE INDEX IF NOT EXISTS idx_ladder_time ON ladder(time);
`
