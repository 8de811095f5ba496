package scheduler

import (
	"context"
	"errors"
	"testing"
)

type fakeBranches struct {
	names []string
	err   error
}

func (f *fakeBranches) BranchNames(ctx context.Context) ([]string, error) {
	return f.names, f.err
}

type fakeChecker struct {
	checked []string
	failOn  string
}

func (f *fakeChecker) CheckBranch(ctx context.Context, branch string) error {
	f.checked = append(f.checked, branch)
	if branch == f.failOn {
		return errors.New("boom")
	}
	return nil
}

func TestSweepChecksEveryBranch(t *testing.T) {
	checker := &fakeChecker{}
	s := New(&fakeBranches{names: []string{"Delhi", "Lucknow"}}, checker, "@hourly")

	s.sweep()

	if len(checker.checked) != 2 {
		t.Fatalf("expected 2 checks, got %d", len(checker.checked))
	}
	if checker.checked[0] != "Delhi" || checker.checked[1] != "Lucknow" {
		t.Errorf("unexpected branches checked: %v", checker.checked)
	}
}

func TestSweepContinuesAfterBranchFailure(t *testing.T) {
	checker := &fakeChecker{failOn: "Delhi"}
	s := New(&fakeBranches{names: []string{"Delhi", "Lucknow"}}, checker, "@hourly")

	s.sweep()

	if len(checker.checked) != 2 {
		t.Fatalf("a failing branch should not stop the sweep, got %v", checker.checked)
	}
}

func TestSweepSkipsWhenBranchListUnavailable(t *testing.T) {
	checker := &fakeChecker{}
	s := New(&fakeBranches{err: errors.New("db down")}, checker, "@hourly")

	s.sweep()

	if len(checker.checked) != 0 {
		t.Errorf("expected no checks, got %v", checker.checked)
	}
}
