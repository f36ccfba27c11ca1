package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otzar-labs/ketav-cli/internal/core/domain"
	"github.com/otzar-labs/ketav-cli/internal/core/ports/driving"
)

// recordingConverter records ConvertDir calls.
type recordingConverter struct {
	dirs chan string
	err  error
}

func (r *recordingConverter) ConvertFile(context.Context, string, driving.ConvertOptions) (*driving.FileResult, error) {
	return nil, errors.New("not used")
}

func (r *recordingConverter) ConvertDir(_ context.Context, dir string, _ driving.ConvertOptions) (*driving.FileResult, error) {
	r.dirs <- dir
	if r.err != nil {
		return nil, r.err
	}
	return &driving.FileResult{SourcePath: dir}, nil
}

func (r *recordingConverter) ConvertTree(context.Context, string, driving.ConvertOptions) (*driving.TreeResult, error) {
	return nil, errors.New("not used")
}

func TestWatcher_MissingRoot(t *testing.T) {
	w := NewWatcher(&recordingConverter{dirs: make(chan string, 1)}, driving.ConvertOptions{})
	err := w.Run(context.Background(), filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestWatcher_CancelStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := NewWatcher(&recordingConverter{dirs: make(chan string, 1)}, driving.ConvertOptions{})
	err := w.Run(ctx, t.TempDir())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWatcher_ReconvertsChangedDir(t *testing.T) {
	root := t.TempDir()
	conv := &recordingConverter{dirs: make(chan string, 8)}
	w := NewWatcher(conv, driving.ConvertOptions{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, root) }()

	// Give the watcher a moment to register, then drop a file in.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(root, "PEREK1"), []byte("x"), 0o644))

	select {
	case dir := <-conv.dirs:
		assert.Equal(t, root, dir)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher never reconverted the changed directory")
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

// writingConverter writes its output into the converted directory,
// the way the default output placement does.
type writingConverter struct {
	dirs chan string
}

func (w *writingConverter) ConvertFile(context.Context, string, driving.ConvertOptions) (*driving.FileResult, error) {
	return nil, errors.New("not used")
}

func (w *writingConverter) ConvertDir(_ context.Context, dir string, _ driving.ConvertOptions) (*driving.FileResult, error) {
	out := filepath.Join(dir, "book.json")
	if err := os.WriteFile(out, []byte("{}"), 0o644); err != nil {
		return nil, err
	}
	w.dirs <- dir
	return &driving.FileResult{SourcePath: dir, OutputPath: out}, nil
}

func (w *writingConverter) ConvertTree(context.Context, string, driving.ConvertOptions) (*driving.TreeResult, error) {
	return nil, errors.New("not used")
}

func TestWatcher_OwnOutputDoesNotRetrigger(t *testing.T) {
	root := t.TempDir()
	conv := &writingConverter{dirs: make(chan string, 8)}
	w := NewWatcher(conv, driving.ConvertOptions{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, root) }()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(root, "PEREK1"), []byte("x"), 0o644))

	select {
	case <-conv.dirs:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher never reconverted the changed directory")
	}

	// The conversion wrote book.json into the watched directory.
	// That write must not be taken for a source change, or one edit
	// would reconvert forever.
	select {
	case <-conv.dirs:
		t.Fatal("watcher reconverted on its own output file")
	case <-time.After(3 * debounceWindow):
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestWatcher_FailureDoesNotStopWatch(t *testing.T) {
	root := t.TempDir()
	conv := &recordingConverter{dirs: make(chan string, 8), err: domain.ErrNoConvertibleFile}
	w := NewWatcher(conv, driving.ConvertOptions{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, root) }()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(root, "one"), []byte("x"), 0o644))

	select {
	case <-conv.dirs:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher never saw the first change")
	}

	// The watch must survive the failure and pick up later changes.
	require.NoError(t, os.WriteFile(filepath.Join(root, "two"), []byte("x"), 0o644))
	select {
	case <-conv.dirs:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher stopped after a conversion failure")
	}

	cancel()
	<-done
}
