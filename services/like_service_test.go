package services

import (
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	gomysql "github.com/go-sql-driver/mysql"
)

var (
	inventionLookupPattern = regexp.MustCompile("SELECT \\* FROM `inventions` WHERE id = \\?")
	voteLookupPattern      = regexp.MustCompile("SELECT \\* FROM `likes` WHERE invention_id = \\? AND user_id = \\?")
	voteInsertPattern      = regexp.MustCompile("INSERT INTO `likes`")
	voteDeletePattern      = regexp.MustCompile("DELETE FROM `likes` WHERE invention_id = \\? AND user_id = \\?")
	voteUpdatePattern      = regexp.MustCompile("UPDATE `likes` SET `is_like`=\\? WHERE invention_id = \\? AND user_id = \\?")
	voteCountPattern       = regexp.MustCompile(`SELECT is_like, COUNT\(\*\) AS total FROM .likes. WHERE invention_id = \? GROUP BY .?is_like.?`)
)

func inventionRowStep() *queryStep {
	return &queryStep{
		kind:    kindQuery,
		pattern: inventionLookupPattern,
		columns: []string{"id", "title", "status", "author_id"},
		rows:    [][]driver.Value{{int64(5), "Solar Tracker", "pending", "author-1"}},
	}
}

func likeColumns() []string {
	return []string{"id", "invention_id", "user_id", "is_like", "created_at"}
}

func TestToggleStoresFirstVote(t *testing.T) {
	steps := []*queryStep{
		inventionRowStep(),
		{
			kind:    kindQuery,
			pattern: voteLookupPattern,
			columns: likeColumns(),
		},
		{
			kind:    kindExec,
			pattern: voteInsertPattern,
			result:  scriptedResult{lastInsertID: 1, rowsAffected: 1},
		},
		{
			kind:    kindQuery,
			pattern: voteCountPattern,
			args:    []driver.Value{int64(5)},
			columns: []string{"is_like", "total"},
			rows:    [][]driver.Value{{true, int64(1)}},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	result, err := NewLikeService(db).Toggle(5, "user-1", true)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if result.State != VoteLiked {
		t.Fatalf("state = %q, want %q", result.State, VoteLiked)
	}
	if result.Likes != 1 || result.Dislikes != 0 {
		t.Fatalf("counts = %d/%d, want 1/0", result.Likes, result.Dislikes)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatal(err)
	}
}

func TestToggleSameVoteRetracts(t *testing.T) {
	steps := []*queryStep{
		inventionRowStep(),
		{
			kind:    kindQuery,
			pattern: voteLookupPattern,
			columns: likeColumns(),
			rows:    [][]driver.Value{{int64(9), int64(5), "user-1", true, time.Now()}},
		},
		{
			kind:    kindExec,
			pattern: voteDeletePattern,
			result:  scriptedResult{rowsAffected: 1},
		},
		{
			kind:    kindQuery,
			pattern: voteCountPattern,
			columns: []string{"is_like", "total"},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	result, err := NewLikeService(db).Toggle(5, "user-1", true)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if result.State != VoteNone {
		t.Fatalf("state = %q, want %q", result.State, VoteNone)
	}
	if result.Likes != 0 || result.Dislikes != 0 {
		t.Fatalf("counts = %d/%d, want 0/0", result.Likes, result.Dislikes)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatal(err)
	}
}

func TestToggleOppositeVoteFlips(t *testing.T) {
	steps := []*queryStep{
		inventionRowStep(),
		{
			kind:    kindQuery,
			pattern: voteLookupPattern,
			columns: likeColumns(),
			rows:    [][]driver.Value{{int64(9), int64(5), "user-1", true, time.Now()}},
		},
		{
			kind:    kindExec,
			pattern: voteUpdatePattern,
			result:  scriptedResult{rowsAffected: 1},
		},
		{
			kind:    kindQuery,
			pattern: voteCountPattern,
			columns: []string{"is_like", "total"},
			rows:    [][]driver.Value{{false, int64(1)}},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	result, err := NewLikeService(db).Toggle(5, "user-1", false)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if result.State != VoteDisliked {
		t.Fatalf("state = %q, want %q", result.State, VoteDisliked)
	}
	if result.Dislikes != 1 {
		t.Fatalf("dislikes = %d, want 1", result.Dislikes)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatal(err)
	}
}

func TestToggleLostInsertRaceFallsBackToUpdate(t *testing.T) {
	steps := []*queryStep{
		inventionRowStep(),
		{
			kind:    kindQuery,
			pattern: voteLookupPattern,
			columns: likeColumns(),
		},
		{
			kind:    kindExec,
			pattern: voteInsertPattern,
			err:     &gomysql.MySQLError{Number: 1062, Message: "Duplicate entry"},
		},
		{
			kind:    kindExec,
			pattern: voteUpdatePattern,
			result:  scriptedResult{rowsAffected: 1},
		},
		{
			kind:    kindQuery,
			pattern: voteCountPattern,
			columns: []string{"is_like", "total"},
			rows:    [][]driver.Value{{true, int64(1)}},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	result, err := NewLikeService(db).Toggle(5, "user-1", true)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if result.State != VoteLiked {
		t.Fatalf("state = %q, want %q", result.State, VoteLiked)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatal(err)
	}
}

func TestToggleDuplicateRowsIsConflict(t *testing.T) {
	now := time.Now()
	steps := []*queryStep{
		inventionRowStep(),
		{
			kind:    kindQuery,
			pattern: voteLookupPattern,
			columns: likeColumns(),
			rows: [][]driver.Value{
				{int64(9), int64(5), "user-1", true, now},
				{int64(10), int64(5), "user-1", false, now},
			},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	_, err := NewLikeService(db).Toggle(5, "user-1", true)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatal(err)
	}
}

func TestToggleUnknownInvention(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: inventionLookupPattern,
			columns: []string{"id"},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	_, err := NewLikeService(db).Toggle(404, "user-1", true)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatal(err)
	}
}
