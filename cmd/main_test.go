package main

import (
	"context"
	"errors"
	"testing"

	"github.com/crumbs/restaurant-service/internal/pkg/logger"
	"github.com/crumbs/restaurant-service/internal/services"
)

type fakeService struct {
	seedErr error
	runErr  error

	seeds, runs, closes int
}

func (f *fakeService) Seed(context.Context) (services.SeedResult, error) {
	f.seeds++
	return services.SeedResult{Categories: 9}, f.seedErr
}

func (f *fakeService) Run(context.Context) error {
	f.runs++
	return f.runErr
}

func (f *fakeService) Close() { f.closes++ }

func TestRunClosesOnEveryExit(t *testing.T) {
	cases := []struct {
		name      string
		svc       *fakeService
		seed      bool
		wantCode  int
		wantSeeds int
		wantRuns  int
	}{
		{"clean stop", &fakeService{}, false, 0, 0, 1},
		{"seed then serve", &fakeService{}, true, 0, 1, 1},
		{"seed failure", &fakeService{seedErr: errors.New("wipe failed")}, true, 1, 1, 0},
		{"server failure", &fakeService{runErr: errors.New("address in use")}, false, 1, 0, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code := run(context.Background(), tc.svc, logger.Nop(), tc.seed)
			if code != tc.wantCode {
				t.Fatalf("exit code: want=%d got=%d", tc.wantCode, code)
			}
			if tc.svc.seeds != tc.wantSeeds || tc.svc.runs != tc.wantRuns {
				t.Fatalf("calls: seeds=%d runs=%d", tc.svc.seeds, tc.svc.runs)
			}
			if tc.svc.closes != 1 {
				t.Fatalf("Close calls: want=1 got=%d", tc.svc.closes)
			}
		})
	}
}
