// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles the database connection pool and schema migrations.

# Connecting

Connect opens the process-wide connection pool:

	conn, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

The pool is created once at startup and injected into every handler.

# Migrations

MigrateUp applies migrations embedded in db/migrations via golang-migrate:

	if err := db.MigrateUp(conn); err != nil {
		log.Fatal(err)
	}

Safe to call on every startup - already-applied migrations are skipped.

# Tables

The schema includes:

  - topics: Topic slugs and descriptions
  - users: Usernames, display names, avatars
  - articles: Article rows with vote counts
  - comments: Comments attached to articles

# Relationships

	topics 1──* articles
	users  1──* articles
	users  1──* comments
	articles 1──* comments (ON DELETE CASCADE)

comment_count is never stored; it is computed by aggregation on every read.

# Indexes

Performance indexes on:

  - articles.topic
  - articles.created_at
  - comments.article_id
  - comments.created_at
*/
package db
