package pipeline_test

import (
	"testing"

	"github.com/beanstalk-lang/beanstalk/internal/diagnostics"
	"github.com/beanstalk-lang/beanstalk/internal/pipeline"
	"github.com/beanstalk-lang/beanstalk/internal/source"
)

type recordingProcessor struct {
	name string
	log  *[]string
}

func (rp *recordingProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	*rp.log = append(*rp.log, rp.name)
	return ctx
}

func TestPipelineRunsStagesInOrder(t *testing.T) {
	var log []string
	buf := source.New("test.bs", []byte("entry() {}"))
	ctx := pipeline.NewPipelineContext(buf)
	pl := pipeline.New(
		&recordingProcessor{name: "first", log: &log},
		&recordingProcessor{name: "second", log: &log},
		&recordingProcessor{name: "third", log: &log},
	)
	pl.Run(ctx)
	want := []string{"first", "second", "third"}
	if len(log) != len(want) {
		t.Fatalf("log = %v; want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %q; want %q", i, log[i], want[i])
		}
	}
}

func TestNewPipelineContextInitializesFromBuffer(t *testing.T) {
	buf := source.New("foo.bs", []byte("x"))
	ctx := pipeline.NewPipelineContext(buf)
	if ctx.Source != buf {
		t.Errorf("ctx.Source = %v; want %v", ctx.Source, buf)
	}
	if ctx.FilePath != "foo.bs" {
		t.Errorf("ctx.FilePath = %q; want %q", ctx.FilePath, "foo.bs")
	}
	if ctx.Diagnostics == nil {
		t.Fatalf("ctx.Diagnostics = nil; want an initialized Bag")
	}
	if ctx.Diagnostics.Len() != 0 {
		t.Errorf("ctx.Diagnostics.Len() = %d; want 0", ctx.Diagnostics.Len())
	}
}

type mutatingProcessor struct{}

func (mutatingProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	ctx.Diagnostics.Add(diagnostics.Diagnostic{Message: "stage ran"})
	return ctx
}

func TestPipelineThreadsContextBetweenStages(t *testing.T) {
	buf := source.New("test.bs", []byte("x"))
	ctx := pipeline.NewPipelineContext(buf)
	pl := pipeline.New(mutatingProcessor{}, mutatingProcessor{})
	result := pl.Run(ctx)
	if result.Diagnostics.Len() != 2 {
		t.Errorf("Diagnostics.Len() = %d; want 2 (one per stage)", result.Diagnostics.Len())
	}
}
