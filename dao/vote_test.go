package dao

import (
	"context"
	"testing"
)

func TestVoteCreateIdempotent(t *testing.T) {
	db := newTestDB(t)
	voteDAO := NewVoteDAO(db)
	ctx := context.Background()

	user := seedUser(t, db, "alice", false)
	category := seedCategory(t, db, "Category 1")
	status := seedStatus(t, db, "Open", "bg-gray-200")
	idea := seedIdea(t, db, "Idea", user, category, status)

	// 重复投票不产生第二条记录
	for i := 0; i < 3; i++ {
		if err := voteDAO.Create(ctx, idea.ID, user.ID); err != nil {
			t.Fatalf("create vote: %v", err)
		}
	}
	n, err := voteDAO.CountByIdea(ctx, idea.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 vote, got %d", n)
	}

	voted, err := voteDAO.HasVoted(ctx, idea.ID, user.ID)
	if err != nil {
		t.Fatalf("has voted: %v", err)
	}
	if !voted {
		t.Fatal("expected voted")
	}
}

func TestVoteDeleteIdempotent(t *testing.T) {
	db := newTestDB(t)
	voteDAO := NewVoteDAO(db)
	ctx := context.Background()

	user := seedUser(t, db, "alice", false)
	category := seedCategory(t, db, "Category 1")
	status := seedStatus(t, db, "Open", "bg-gray-200")
	idea := seedIdea(t, db, "Idea", user, category, status)

	if err := voteDAO.Create(ctx, idea.ID, user.ID); err != nil {
		t.Fatalf("create vote: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := voteDAO.Delete(ctx, idea.ID, user.ID); err != nil {
			t.Fatalf("delete vote: %v", err)
		}
	}
	n, err := voteDAO.CountByIdea(ctx, idea.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 votes, got %d", n)
	}
}

func TestVoteCountByIdeaIDs(t *testing.T) {
	db := newTestDB(t)
	voteDAO := NewVoteDAO(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice", false)
	bob := seedUser(t, db, "bob", false)
	category := seedCategory(t, db, "Category 1")
	status := seedStatus(t, db, "Open", "bg-gray-200")

	two := seedIdea(t, db, "Two", alice, category, status)
	one := seedIdea(t, db, "One", alice, category, status)
	zero := seedIdea(t, db, "Zero", alice, category, status)

	seedVote(t, db, two, alice)
	seedVote(t, db, two, bob)
	seedVote(t, db, one, bob)

	counts, err := voteDAO.CountByIdeaIDs(ctx, []int64{two.ID, one.ID, zero.ID})
	if err != nil {
		t.Fatalf("bulk count: %v", err)
	}
	if counts[two.ID] != 2 || counts[one.ID] != 1 || counts[zero.ID] != 0 {
		t.Fatalf("unexpected counts: %v", counts)
	}

	empty, err := voteDAO.CountByIdeaIDs(ctx, nil)
	if err != nil {
		t.Fatalf("empty bulk count: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("empty id list should yield empty map")
	}
}

func TestVotedSetAndVoterIDs(t *testing.T) {
	db := newTestDB(t)
	voteDAO := NewVoteDAO(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice", false)
	bob := seedUser(t, db, "bob", false)
	category := seedCategory(t, db, "Category 1")
	status := seedStatus(t, db, "Open", "bg-gray-200")

	first := seedIdea(t, db, "First", alice, category, status)
	second := seedIdea(t, db, "Second", alice, category, status)

	seedVote(t, db, first, alice)
	seedVote(t, db, first, bob)
	seedVote(t, db, second, bob)

	set, err := voteDAO.VotedSet(ctx, alice.ID, []int64{first.ID, second.ID})
	if err != nil {
		t.Fatalf("voted set: %v", err)
	}
	if _, ok := set[first.ID]; !ok {
		t.Fatal("alice voted on first")
	}
	if _, ok := set[second.ID]; ok {
		t.Fatal("alice did not vote on second")
	}

	voters, err := voteDAO.VoterIDs(ctx, first.ID)
	if err != nil {
		t.Fatalf("voter ids: %v", err)
	}
	if len(voters) != 2 {
		t.Fatalf("expected 2 voters, got %d", len(voters))
	}
}
