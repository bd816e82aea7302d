package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/nguyentantai21042004/meetbot/internal/domain/meeting"
)

var errEmptyOutput = errors.New("empty generation output")

type taskResult struct {
	text string
	err  error
}

// extract runs every task over the transcript. A failed task only
// replaces its own field with the task's placeholder.
func (a *implAnalyzer) extract(ctx context.Context, transcript string) meeting.Bundle {
	results := make([]taskResult, len(a.tasks))

	if a.opts.MaxConcurrent == 1 {
		for i, t := range a.tasks {
			results[i] = a.runTask(ctx, t, transcript)
		}
	} else {
		sem := newSemaphore(a.opts.MaxConcurrent)
		var wg sync.WaitGroup

		for i, t := range a.tasks {
			if err := sem.acquire(ctx); err != nil {
				results[i] = taskResult{err: err}
				continue
			}
			wg.Add(1)
			go func(i int, t task) {
				defer wg.Done()
				defer sem.release()
				results[i] = a.runTask(ctx, t, transcript)
			}(i, t)
		}
		wg.Wait()
	}

	var b meeting.Bundle
	for i, t := range a.tasks {
		r := results[i]
		if r.err != nil {
			a.logger.Error(ctx, "Extraction %s failed: %v", t.field, r.err)
			t.set(&b, t.placeholder)
			b.Provenance.FailedFields = append(b.Provenance.FailedFields, t.field)
			continue
		}
		t.set(&b, r.text)
	}
	return b
}

func (a *implAnalyzer) runTask(ctx context.Context, t task, transcript string) (res taskResult) {
	defer func() {
		if r := recover(); r != nil {
			res = taskResult{err: fmt.Errorf("panic: %v", r)}
		}
	}()

	a.logger.Info(ctx, "Extracting %s...", t.field)
	text, err := a.generator.Generate(ctx, t.prompt, transcript)
	if err != nil {
		return taskResult{err: err}
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return taskResult{err: errEmptyOutput}
	}
	return taskResult{text: text}
}
