// Package watcher converts label PDFs dropped into a hot folder:
// stable files from the source directory are converted into the output
// directory and the originals archived.
package watcher

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/Lesaloon/MR-Label-Converter/converter"
	"github.com/Lesaloon/MR-Label-Converter/types"
)

type Service struct {
	logger *slog.Logger
	cfg    types.Config
	conv   *converter.Converter

	fileMutex       sync.Mutex
	fileFirstSeen   map[string]time.Time
	filesProcessing map[string]bool
}

func New(cfg types.Config) *Service {
	createDirectories(cfg.SourceDir, cfg.OutputDir, cfg.ArchiveDir, cfg.BadDir)
	return &Service{
		logger:          slog.Default(),
		cfg:             cfg,
		conv:            converter.New(),
		fileFirstSeen:   make(map[string]time.Time),
		filesProcessing: make(map[string]bool),
	}
}

func (s *Service) Stop() {
	s.logger.Info("Watcher service stopped")
}

func (s *Service) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fileChan := make(chan string, 10)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(fileChan)
		s.WatchFile(ctx, fileChan)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		s.ConvertFiles(ctx, fileChan)
	}()

	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt, syscall.SIGTERM)

	<-sigch
	log.Println("Received shutdown signal, shutting down gracefully...")

	cancel()
	signal.Stop(sigch)
	close(sigch)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Println("All goroutines stopped successfully")
	case <-shutdownCtx.Done():
		log.Println("Timeout waiting for goroutines to stop, forcing shutdown...")
	}

	s.Stop()
	log.Println("Service stopped successfully")
}

// ConvertFiles drains fileChan, converting each settled label PDF into
// the output directory. Successfully converted sources move to the
// archive directory; failed ones to the bad-file directory so they are
// not retried forever.
func (s *Service) ConvertFiles(ctx context.Context, fileChan <-chan string) {
	defer fmt.Println("File converter stopped and cleaned up")

	for {
		if ctx.Err() != nil {
			fmt.Println("Stopping file converter (pre-check)...")
			return
		}

		select {
		case <-ctx.Done():
			fmt.Println("Stopping file converter (context cancelled)...")
			return
		case filePath, ok := <-fileChan:
			if !ok {
				fmt.Println("File channel closed, stopping converter...")
				return
			}

			fmt.Printf("Converting file: %s\n", filePath)
			err := s.convertOne(filePath)
			if err != nil {
				fmt.Printf("Error converting file %s: %v\n", filePath, err)
				s.moveToArchive(filePath, fileStateBad)
			} else {
				s.moveToArchive(filePath, fileStateArchived)
			}

			s.fileMutex.Lock()
			delete(s.filesProcessing, filePath)
			delete(s.fileFirstSeen, filePath)
			s.fileMutex.Unlock()

			if ctx.Err() != nil {
				fmt.Printf("Conversion loop interrupted after: %s\n", filePath)
				return
			}
		}
	}
}

func (s *Service) convertOne(filePath string) error {
	outputPath := filepath.Join(s.cfg.OutputDir, outputName(filePath))
	return s.conv.ConvertFile(filePath, outputPath, s.cfg.Conversion)
}

func outputName(filePath string) string {
	base := filepath.Base(filePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		stem = "label"
	}
	return stem + "-converted.pdf"
}
