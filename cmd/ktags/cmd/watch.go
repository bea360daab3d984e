package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/corey/ktags/internal/adapters/fsnotify"
	"github.com/corey/ktags/internal/app"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the project and reindex on Kotlin file changes",
	Long:  "Builds the index, then keeps it fresh: every .kt/.kts change triggers a rebuild. Runs in the foreground until SIGINT/SIGTERM.",
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	root := projectRoot()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	store, err := openStore(root)
	if err != nil {
		return err
	}
	defer store.Close()

	// Rebuilds are serialized: fsnotify debounces per file, but a burst
	// across files must not run concurrent walks.
	var mu sync.Mutex
	reindex := func() {
		mu.Lock()
		defer mu.Unlock()
		idx, result, err := app.BuildIndex(root)
		if err != nil {
			log.WithError(err).Error("reindex failed")
			return
		}
		if err := store.SaveIndex(app.ProjectID(root), idx); err != nil {
			log.WithError(err).Error("save failed")
			return
		}
		log.WithFields(logrus.Fields{
			"files": result.FileCount,
			"tags":  result.TagCount,
		}).Info("index updated")
	}

	reindex()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watcher: %w", err)
	}
	defer watcher.Stop()

	err = watcher.Watch(root, func(filePath string) {
		log.WithField("file", filePath).Debug("change detected")
		reindex()
	})
	if err != nil {
		return fmt.Errorf("watch %s: %w", root, err)
	}

	log.WithField("root", root).Info("watching")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutting down")
	return nil
}
