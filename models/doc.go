// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, domain, and error types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateTopicRequest: slug, description
  - CreateArticleRequest: author, title, body, topic, article_img_url
  - CreateCommentRequest: author, body
  - UpdateVotesRequest: inc_votes (pointer, so absence is detectable)

# Response Types

Every success body wraps its payload in a named key, matching the resource:

  - TopicsResponse / TopicResponse
  - ArticlesResponse / ArticleResponse / UpdatedArticleResponse
  - CommentsResponse / CommentResponse
  - UsersResponse / UserResponse
  - ErrorResponse: {"msg": "..."}

# Domain Types

Internal data structures, tagged for both sqlx scanning and JSON:

  - Topic: slug and description
  - User: username, name, avatar URL
  - Article: full article row including body
  - ArticleDetail: Article plus derived comment_count
  - ArticleSummary: listing row (no body) plus derived comment_count
  - Comment: comment row

# Errors

APIError is the tagged error variant for domain failures:

	return models.NotFound()           // 404 {"msg":"Not found"}
	return models.BadRequest("Bad request")

middleware.HandleError translates APIError and PostgreSQL error codes
into HTTP responses.
*/
package models
