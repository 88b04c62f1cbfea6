// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/danielhkuo/newsboard/models"
	"github.com/danielhkuo/newsboard/testutil"
)

// TestConcurrentArticleVotes verifies that simultaneous vote increments on the
// same article all land, since each PATCH applies a relative delta in SQL
func TestConcurrentArticleVotes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewArticleHandler(db, cfg)

	testutil.CreateTestUser(t, db, "butter_bridge")
	testutil.CreateTestTopic(t, db, "coding")

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	articleID := testutil.CreateTestArticle(t, db, "Hotly contested", "coding", "butter_bridge", 0, base)

	numVoters := 10
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := testutil.MakeRequest("PATCH", "/api/articles/"+itoa(articleID),
				models.UpdateVotesRequest{IncVotes: intPtr(1)}, nil)
			req.SetPathValue("article_id", itoa(articleID))
			w := httptest.NewRecorder()

			handler.UpdateArticleVotes(w, req)

			if w.Code == http.StatusOK {
				successCount.Add(1)
			}
		}()
	}

	wg.Wait()

	if int(successCount.Load()) != numVoters {
		t.Errorf("Expected %d successful updates, got %d", numVoters, successCount.Load())
	}

	var votes int
	err := db.QueryRow("SELECT votes FROM articles WHERE article_id = $1", articleID).Scan(&votes)
	if err != nil {
		t.Fatalf("Failed to query votes: %v", err)
	}

	if votes != numVoters {
		t.Errorf("Expected %d votes after concurrent increments, got %d", numVoters, votes)
	}
}

// TestConcurrentCommentPosts verifies that simultaneous comment submissions on
// the same article all persist without interference
func TestConcurrentCommentPosts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewCommentHandler(db, cfg)

	testutil.CreateTestUser(t, db, "butter_bridge")
	testutil.CreateTestTopic(t, db, "coding")

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	articleID := testutil.CreateTestArticle(t, db, "Busy thread", "coding", "butter_bridge", 0, base)

	numPosters := 10
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numPosters; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/api/articles/"+itoa(articleID)+"/comments",
				models.CreateCommentRequest{
					Author: "butter_bridge",
					Body:   "Reply " + string(rune('A'+idx)),
				}, nil)
			req.SetPathValue("article_id", itoa(articleID))
			w := httptest.NewRecorder()

			handler.CreateArticleComment(w, req)

			if w.Code == http.StatusCreated {
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numPosters {
		t.Errorf("Expected %d successful posts, got %d", numPosters, successCount.Load())
	}

	if n := testutil.CountRows(t, db, "comments", "article_id = $1", articleID); n != numPosters {
		t.Errorf("Expected %d comments in database, got %d", numPosters, n)
	}
}

// TestConcurrentCommentDelete verifies that when multiple requests race to
// delete the same comment, exactly one succeeds and the rest see 404
func TestConcurrentCommentDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewCommentHandler(db, cfg)

	testutil.CreateTestUser(t, db, "butter_bridge")
	testutil.CreateTestTopic(t, db, "coding")

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	articleID := testutil.CreateTestArticle(t, db, "Contested", "coding", "butter_bridge", 0, base)
	commentID := testutil.CreateTestComment(t, db, articleID, "butter_bridge", "going soon", base)

	numAttempts := 5
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numAttempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := testutil.MakeRequest("DELETE", "/api/comments/"+itoa(commentID), nil, nil)
			req.SetPathValue("comment_id", itoa(commentID))
			w := httptest.NewRecorder()

			handler.DeleteComment(w, req)

			if w.Code == http.StatusNoContent {
				successCount.Add(1)
			}
		}()
	}

	wg.Wait()

	if successCount.Load() != 1 {
		t.Errorf("Expected exactly 1 successful delete, got %d", successCount.Load())
	}

	if n := testutil.CountRows(t, db, "comments", "comment_id = $1", commentID); n != 0 {
		t.Errorf("Expected comment to be gone, found %d rows", n)
	}
}

// TestParallelArticles verifies that operations on different articles don't
// interfere with each other
func TestParallelArticles(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	articleHandler := NewArticleHandler(db, cfg)
	commentHandler := NewCommentHandler(db, cfg)

	testutil.CreateTestUser(t, db, "butter_bridge")
	testutil.CreateTestTopic(t, db, "coding")

	numArticles := 5
	var wg sync.WaitGroup

	for i := 0; i < numArticles; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			// Create article
			req := testutil.MakeRequest("POST", "/api/articles", models.CreateArticleRequest{
				Author: "butter_bridge",
				Title:  "Parallel " + string(rune('A'+idx)),
				Body:   "Body",
				Topic:  "coding",
			}, nil)
			w := httptest.NewRecorder()
			articleHandler.CreateArticle(w, req)

			if w.Code != http.StatusCreated {
				t.Errorf("Article %d creation failed: %d - %s", idx, w.Code, w.Body.String())
				return
			}

			var created models.ArticleResponse
			if err := testutil.DecodeJSON(w, &created); err != nil {
				t.Errorf("Article %d decode failed: %v", idx, err)
				return
			}
			id := itoa(created.Article.ArticleID)

			// Comment on it
			req = testutil.MakeRequest("POST", "/api/articles/"+id+"/comments",
				models.CreateCommentRequest{Author: "butter_bridge", Body: "First!"}, nil)
			req.SetPathValue("article_id", id)
			w = httptest.NewRecorder()
			commentHandler.CreateArticleComment(w, req)

			if w.Code != http.StatusCreated {
				t.Errorf("Article %d comment failed: %d - %s", idx, w.Code, w.Body.String())
				return
			}

			// Vote on it
			req = testutil.MakeRequest("PATCH", "/api/articles/"+id,
				models.UpdateVotesRequest{IncVotes: intPtr(idx + 1)}, nil)
			req.SetPathValue("article_id", id)
			w = httptest.NewRecorder()
			articleHandler.UpdateArticleVotes(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("Article %d vote failed: %d - %s", idx, w.Code, w.Body.String())
			}
		}(i)
	}

	wg.Wait()

	if n := testutil.CountRows(t, db, "articles", ""); n != numArticles {
		t.Errorf("Expected %d articles, got %d", numArticles, n)
	}
	if n := testutil.CountRows(t, db, "comments", ""); n != numArticles {
		t.Errorf("Expected %d comments, got %d", numArticles, n)
	}
}
