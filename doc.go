// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Newsboard API server.

Newsboard is a REST backend for a discussion/aggregator application. It
exposes articles, topics, users, and comments stored in PostgreSQL, with
sortable and filterable article listings and vote mutation endpoints.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 9090 -d "postgres://..."

A .env file in the working directory is loaded automatically.

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 9090)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (articles, topics, comments, users)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, request logging, JSON helpers, error translation
  - models: Domain, request/response, and tagged error types
  - db: Connection pool and embedded schema migrations
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
