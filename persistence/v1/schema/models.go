package schema

// Table definitions kept in a dialect both mysql and the in-memory test
// driver accept. Indexes that only mysql understands are applied by the
// ops cli, not by tests.

var createStatements = []string{
	`CREATE TABLE users (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(150) NOT NULL,
		email VARCHAR(255),
		passwordHash VARCHAR(255) NOT NULL,
		createdAt DATETIME
	)`,
	`CREATE TABLE notes (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		userId BIGINT NOT NULL,
		title VARCHAR(255) NOT NULL,
		content TEXT NOT NULL,
		updatedAt DATETIME,
		createdAt DATETIME
	)`,
	`CREATE TABLE noteShares (
		noteId BIGINT NOT NULL,
		userId BIGINT NOT NULL
	)`,
}

var dropStatements = []string{
	`DROP TABLE noteShares`,
	`DROP TABLE notes`,
	`DROP TABLE users`,
}

var indexStatements = []string{
	// signup relies on this to reject duplicate usernames under concurrency
	`CREATE UNIQUE INDEX uxUsersUsername ON users (username)`,
	// search runs MATCH ... AGAINST over this index
	`ALTER TABLE notes ADD FULLTEXT INDEX ftNotesTitleContent (title, content)`,
	`CREATE INDEX ixNotesUserId ON notes (userId)`,
	`CREATE INDEX ixNoteSharesNoteId ON noteShares (noteId)`,
}
