package pipeline

import (
	"context"
	"sync"
	"testing"

	"github.com/contentscan/contentscan/internal/analyzer"
	"github.com/contentscan/contentscan/internal/model"
)

func batchFactory() func(siteRoot string) *Pipeline {
	return func(siteRoot string) *Pipeline {
		source := analyzer.SourceFunc(func(context.Context) ([]model.Document, error) {
			return []model.Document{
				{ID: siteRoot + "/page.md", Title: "Page", Body: "content words here",
					URL: "/page", Type: model.TypePage},
			}, nil
		})
		a := analyzer.New(source, analyzer.WithLogger(quietLogger()))

		p := New(WithLogger(quietLogger()))
		p.AddSteps(
			NewIndexStep(a, WithIndexLogger(quietLogger())),
			NewRelateStep(a, 5, WithRelateLogger(quietLogger())),
		)
		return p
	}
}

func TestBatchProcessor(t *testing.T) {
	t.Parallel()

	t.Run("reports in input order", func(t *testing.T) {
		t.Parallel()

		bp := NewBatchProcessor(batchFactory(),
			WithBatchLogger(quietLogger()),
			WithConcurrency(2),
		)

		roots := []string{"site-a", "site-b", "site-c"}
		reports, err := bp.ProcessBatch(context.Background(), roots)
		if err != nil {
			t.Fatalf("ProcessBatch() error = %v", err)
		}

		if len(reports) != len(roots) {
			t.Fatalf("report count = %d, want %d", len(reports), len(roots))
		}
		for i, report := range reports {
			if report == nil {
				t.Fatalf("report %d is nil", i)
			}
			if report.SiteRoot != roots[i] {
				t.Errorf("report %d site = %q, want %q", i, report.SiteRoot, roots[i])
			}
			if report.DocumentCount() != 1 {
				t.Errorf("report %d documents = %d, want 1", i, report.DocumentCount())
			}
		}
	})

	t.Run("callback streaming", func(t *testing.T) {
		t.Parallel()

		bp := NewBatchProcessor(batchFactory(),
			WithBatchLogger(quietLogger()),
			WithConcurrency(2),
		)

		var mu sync.Mutex
		seen := make(map[int]string)

		roots := []string{"site-a", "site-b"}
		err := bp.ProcessBatchWithCallback(context.Background(), roots,
			func(report *model.AnalysisReport, index int) {
				mu.Lock()
				seen[index] = report.SiteRoot
				mu.Unlock()
			})
		if err != nil {
			t.Fatalf("ProcessBatchWithCallback() error = %v", err)
		}

		if len(seen) != 2 || seen[0] != "site-a" || seen[1] != "site-b" {
			t.Errorf("callback results = %v", seen)
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		bp := NewBatchProcessor(batchFactory(), WithBatchLogger(quietLogger()))
		if _, err := bp.ProcessBatch(ctx, []string{"site-a"}); err == nil {
			t.Error("expected context error")
		}
	})
}
