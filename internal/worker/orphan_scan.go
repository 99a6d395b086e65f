package worker

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"stockroom/internal/metrics"
	"stockroom/internal/repository"
)

// OrphanWorker periodically diffs the photo files on disk against the photo
// paths the collection still references and publishes the orphan count.
// Retention is deliberate: replaced and deleted photos stay on disk, and the
// worker only makes the accumulation visible. It never deletes anything.
type OrphanWorker struct {
	repo     *repository.InventoryRepository
	cacheDir string
	ticker   *time.Ticker
}

func NewOrphanWorker(repo *repository.InventoryRepository, cacheDir string, interval time.Duration) *OrphanWorker {
	return &OrphanWorker{
		repo:     repo,
		cacheDir: cacheDir,
		ticker:   time.NewTicker(interval),
	}
}

func (w *OrphanWorker) StartWorker(ctx context.Context) {
	defer w.ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.ticker.C:
			w.scan()
		}
	}
}

func (w *OrphanWorker) scan() {
	count, err := w.CountOrphans()
	if err != nil {
		log.Printf("[OrphanWorker] scan failed: %v", err)
		return
	}
	metrics.OrphanPhotos.Set(float64(count))
	if count > 0 {
		log.Printf("[OrphanWorker] %d orphaned photo file(s) retained in %s", count, w.cacheDir)
	}
}

// CountOrphans returns how many photo files under the cache directory no
// item references.
func (w *OrphanWorker) CountOrphans() (int, error) {
	entries, err := os.ReadDir(w.cacheDir)
	if err != nil {
		return 0, err
	}

	referenced := map[string]struct{}{}
	for _, item := range w.repo.LoadAll() {
		if item.PhotoPath != "" {
			referenced[filepath.Clean(item.PhotoPath)] = struct{}{}
		}
	}

	count := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".jpg") {
			continue
		}
		path := filepath.Clean(filepath.Join(w.cacheDir, entry.Name()))
		if _, ok := referenced[path]; !ok {
			count++
		}
	}
	return count, nil
}
