package testutil

import (
	"context"
	"errors"
	"testing"

	repotest "github.com/crumbs/restaurant-service/internal/data/repos/testutil"
	types "github.com/crumbs/restaurant-service/internal/domain"
	"github.com/crumbs/restaurant-service/internal/pkg/dbctx"
)

func TestInjectedTxRunner_CommitsOnSuccess(t *testing.T) {
	r := &InjectedTxRunner{}
	called := false
	err := r.InTx(context.Background(), func(_ dbctx.Context) error {
		called = true
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !called {
		t.Fatalf("expected callback to run")
	}
	if r.BeginCalls != 1 || r.CommitCalls != 1 || r.RollbackCalls != 0 {
		t.Fatalf("unexpected counters begin=%d commit=%d rollback=%d", r.BeginCalls, r.CommitCalls, r.RollbackCalls)
	}
}

func TestInjectedTxRunner_RollbackOnBodyError(t *testing.T) {
	r := &InjectedTxRunner{}
	bodyErr := errors.New("boom")
	err := r.InTx(context.Background(), func(_ dbctx.Context) error {
		return bodyErr
	})
	if !errors.Is(err, bodyErr) {
		t.Fatalf("expected body err, got %v", err)
	}
	if r.BeginCalls != 1 || r.CommitCalls != 0 || r.RollbackCalls != 1 {
		t.Fatalf("unexpected counters begin=%d commit=%d rollback=%d", r.BeginCalls, r.CommitCalls, r.RollbackCalls)
	}
}

func TestInjectedTxRunner_FailBeforeBodySkipsBody(t *testing.T) {
	injected := errors.New("before body")
	r := &InjectedTxRunner{FailBeforeBody: injected}
	called := false
	err := r.InTx(context.Background(), func(_ dbctx.Context) error {
		called = true
		return nil
	})
	if !errors.Is(err, injected) {
		t.Fatalf("expected injected err, got %v", err)
	}
	if called {
		t.Fatalf("body should not run")
	}
	if r.RollbackCalls != 1 {
		t.Fatalf("expected one rollback, got %d", r.RollbackCalls)
	}
}

func TestInjectedTxRunner_FailCommitRollsBackRealWrites(t *testing.T) {
	db := repotest.DB(t)
	commitErr := errors.New("commit failed")
	r := &InjectedTxRunner{DB: db, FailCommit: commitErr}

	err := r.InTx(context.Background(), func(dbc dbctx.Context) error {
		return dbc.Tx.Create(&types.Category{Name: "Ephemeral"}).Error
	})
	if !errors.Is(err, commitErr) {
		t.Fatalf("expected commit err, got %v", err)
	}
	if r.BeginCalls != 1 || r.CommitCalls != 0 || r.RollbackCalls != 1 {
		t.Fatalf("unexpected counters begin=%d commit=%d rollback=%d", r.BeginCalls, r.CommitCalls, r.RollbackCalls)
	}
	if n := repotest.CountRows(t, context.Background(), db, &types.Category{}); n != 0 {
		t.Fatalf("expected rollback to discard category, found %d rows", n)
	}
}
