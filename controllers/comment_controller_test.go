package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"forum-api/models"
)

func TestCommentLifecycle(t *testing.T) {
	r, db := setupTestServer(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	aliceToken := tokenFor(t, alice)
	bobToken := tokenFor(t, bob)

	post := models.Post{UserID: alice.ID, Title: "Hello", Content: "World"}
	if err := db.Create(&post).Error; err != nil {
		t.Fatalf("failed to create post: %v", err)
	}
	commentsPath := fmt.Sprintf("/api/comments/%d", post.ID)

	// Bob comments on Alice's post
	status, body := doJSON(t, r, http.MethodPost, commentsPath, bobToken,
		map[string]string{"content": "nice post"})
	if status != http.StatusCreated {
		t.Fatalf("create comment status = %d, want 201 (body: %v)", status, body)
	}
	commentID := body["data"].(map[string]interface{})["comment_id"].(float64)

	// Comments are publicly readable with author identity
	status, comments := doJSONList(t, r, commentsPath)
	if status != http.StatusOK {
		t.Fatalf("list comments status = %d, want 200", status)
	}
	if len(comments) != 1 {
		t.Fatalf("expected 1 comment, got %d", len(comments))
	}
	if comments[0]["content"] != "nice post" || comments[0]["username"] != "bob" {
		t.Errorf("unexpected comment: %v", comments[0])
	}

	deletePath := fmt.Sprintf("/api/comments/%.0f", commentID)

	// Alice does not own the comment
	status, _ = doJSON(t, r, http.MethodDelete, deletePath, aliceToken, nil)
	if status != http.StatusForbidden {
		t.Fatalf("delete by non-owner status = %d, want 403", status)
	}

	// Bob deletes his comment
	status, _ = doJSON(t, r, http.MethodDelete, deletePath, bobToken, nil)
	if status != http.StatusOK {
		t.Fatalf("delete by owner status = %d, want 200", status)
	}

	status, comments = doJSONList(t, r, commentsPath)
	if status != http.StatusOK || len(comments) != 0 {
		t.Errorf("after delete: status = %d, %d comments; want 200, 0", status, len(comments))
	}
}

func TestCreateComment_Validation(t *testing.T) {
	r, db := setupTestServer(t)
	alice := createUser(t, db, "alice")
	token := tokenFor(t, alice)

	post := models.Post{UserID: alice.ID, Title: "Hello", Content: "World"}
	if err := db.Create(&post).Error; err != nil {
		t.Fatalf("failed to create post: %v", err)
	}

	status, _ := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/comments/%d", post.ID), token,
		map[string]string{})
	if status != http.StatusBadRequest {
		t.Errorf("empty comment status = %d, want 400", status)
	}

	status, _ = doJSON(t, r, http.MethodPost, "/api/comments/999", token,
		map[string]string{"content": "hi"})
	if status != http.StatusNotFound {
		t.Errorf("comment on missing post status = %d, want 404", status)
	}
}

func TestDeleteComment_NotFound(t *testing.T) {
	r, db := setupTestServer(t)
	token := tokenFor(t, createUser(t, db, "alice"))

	status, _ := doJSON(t, r, http.MethodDelete, "/api/comments/123", token, nil)
	if status != http.StatusNotFound {
		t.Errorf("delete missing comment status = %d, want 404", status)
	}
}
