package service

import (
	"context"
	"testing"
	"time"

	"voteboard/dao"
	"voteboard/types"

	"gorm.io/gorm"
)

func newCommentService(db *gorm.DB) *CommentService {
	return &CommentService{
		CommentDAO: dao.NewCommentDAO(db),
		IdeaDAO:    dao.NewIdeaDAO(db),
		Config:     testConfig(),
	}
}

func TestAddAndListComments(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice", false)
	bob := seedUser(t, db, "bob", false)
	category := seedCategory(t, db, "Category 1")
	status := seedStatus(t, db, "Open", "bg-gray-200")
	idea := seedIdea(t, db, "Discussed", alice, category, status)

	firstID, err := svc.AddComment(ctx, alice.ID, idea.Slug, &types.AddCommentRequest{Body: "first"})
	if err != nil {
		t.Fatalf("add comment: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, err := svc.AddComment(ctx, bob.ID, idea.Slug, &types.AddCommentRequest{Body: "second"}); err != nil {
		t.Fatalf("add comment: %v", err)
	}

	page, err := svc.ListComments(ctx, types.Caller{ID: alice.ID}, idea.Slug, 1)
	if err != nil {
		t.Fatalf("list comments: %v", err)
	}
	if page.TotalCount != 2 || len(page.Items) != 2 {
		t.Fatalf("expected 2 comments, got total=%d", page.TotalCount)
	}
	// 时间正序
	if page.Items[0].ID != firstID || page.Items[0].Body != "first" {
		t.Fatal("comments should be oldest first")
	}

	if _, err := svc.AddComment(ctx, alice.ID, "no-such-slug", &types.AddCommentRequest{Body: "lost"}); err == nil {
		t.Fatal("commenting a missing idea should error")
	}
}

func TestListComments_PaginationAndSpamVisibility(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice", false)
	category := seedCategory(t, db, "Category 1")
	status := seedStatus(t, db, "Open", "bg-gray-200")
	idea := seedIdea(t, db, "Busy Thread", alice, category, status)

	for i := 0; i < 11; i++ {
		seedComment(t, db, idea, alice, "comment", 1)
	}

	one, err := svc.ListComments(ctx, types.Caller{ID: alice.ID}, idea.Slug, 1)
	if err != nil {
		t.Fatalf("page 1: %v", err)
	}
	if len(one.Items) != 10 || one.TotalPages != 2 {
		t.Fatalf("page 1: items=%d pages=%d", len(one.Items), one.TotalPages)
	}
	if one.Items[0].SpamReports != 0 {
		t.Fatal("non-admin must not see comment spam reports")
	}

	two, err := svc.ListComments(ctx, types.Caller{ID: alice.ID, IsAdmin: true}, idea.Slug, 2)
	if err != nil {
		t.Fatalf("page 2: %v", err)
	}
	if len(two.Items) != 1 || two.Items[0].SpamReports != 1 {
		t.Fatalf("page 2: items=%d reports=%d", len(two.Items), two.Items[0].SpamReports)
	}

	empty, err := svc.ListComments(ctx, types.Caller{}, idea.Slug, 3)
	if err != nil {
		t.Fatalf("page 3: %v", err)
	}
	if len(empty.Items) != 0 || empty.TotalCount != 11 {
		t.Fatalf("beyond last page should be an empty window")
	}
}

func TestCommentReportSpam(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice", false)
	category := seedCategory(t, db, "Category 1")
	status := seedStatus(t, db, "Open", "bg-gray-200")
	idea := seedIdea(t, db, "Thread", alice, category, status)
	comment := seedComment(t, db, idea, alice, "sketchy", 0)

	for i := 0; i < 2; i++ {
		if err := svc.ReportSpam(ctx, comment.ID); err != nil {
			t.Fatalf("report spam: %v", err)
		}
	}
	reloaded, err := svc.CommentDAO.GetByID(ctx, comment.ID)
	if err != nil || reloaded == nil {
		t.Fatalf("reload comment: %v", err)
	}
	if reloaded.SpamReports != 2 {
		t.Fatalf("expected 2 reports, got %d", reloaded.SpamReports)
	}

	if err := svc.ReportSpam(ctx, 424242); err == nil {
		t.Fatal("reporting a missing comment should error")
	}
}
