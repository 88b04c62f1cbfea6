// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Newsboard API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - ArticleHandler: Article listing, fetch, creation, vote updates
  - TopicHandler: Topic listing and creation
  - CommentHandler: Comment listing, creation, deletion, vote updates
  - UserHandler: User listing and fetch by username

Handlers are created via constructor functions that accept *sqlx.DB and Config:

	articleHandler := handlers.NewArticleHandler(db, cfg)

# Article Listing

GET /api/articles accepts sort_by, order, and topic query parameters.
sort_by is validated against a fixed whitelist (article_id, author,
title, topic, created_at, votes, comment_count) and order against
ASC/DESC before any query is built; the ORDER BY expression comes from
a lookup table, never from user input. Listing rows omit the body and
carry a comment_count computed by a LEFT JOIN aggregation.

A topic filter that names a real topic with no articles returns an
empty list; a topic that does not exist returns a 404.

# Existence-Checked Mutations

Mutations against a parent resource never silently no-op:

  - Vote increments and comment inserts run the parent existence check
    concurrently with the write (errgroup) and report 404 when the
    parent is missing.
  - Comment deletion uses zero-rows-affected as its not-found signal.

inc_votes must be a JSON integer; a missing or malformed value is a 400
before any write is attempted.

# Endpoint Catalog

GET /api serves the machine-readable catalog embedded from
endpoints.json.
*/
package handlers
