package sentiment

import (
	"context"
	"log"

	"github.com/fsnotify/fsnotify"
)

// WatchLexiconFile reloads the lexicon whenever the file at path changes.
// Blocks until ctx is cancelled; run it in its own goroutine. A reload
// failure keeps the previously loaded lexicon.
func (a *Analyzer) WatchLexiconFile(ctx context.Context, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return err
	}

	log.Printf("👀 [SENTIMENT] Watching lexicon file: %s", path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := a.LoadLexiconFile(path); err != nil {
				log.Printf("⚠️ [SENTIMENT] Failed to reload lexicon: %v", err)
				continue
			}
			log.Printf("✅ [SENTIMENT] Lexicon reloaded (%d entries)", a.LexiconSize())
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("⚠️ [SENTIMENT] Lexicon watcher error: %v", err)
		}
	}
}
