package watcher

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// WatchFile polls the source directory and sends a file path into
// fileChan once the file has been stable for the configured settle time.
// Partially written uploads are the reason for the settle delay: a label
// PDF dropped over the network must stop growing before conversion.
func (s *Service) WatchFile(ctx context.Context, fileChan chan<- string) {
	fmt.Printf("Start monitoring folder: %s\n", s.cfg.SourceDir)

	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()
	defer fmt.Println("File watcher stopped and cleaned up")

	for {
		if ctx.Err() != nil {
			fmt.Println("Stopping file watcher (pre-check)...")
			return
		}

		select {
		case <-ctx.Done():
			fmt.Println("Stopping file watcher (context cancelled)...")
			return
		case <-ticker.C:
			files, err := os.ReadDir(s.cfg.SourceDir)
			if err != nil {
				fmt.Printf("error while reading source directory: %s\n", err)
				continue
			}

			currentFiles := make(map[string]bool)

			for _, file := range files {
				if file.IsDir() {
					continue
				}
				if !strings.EqualFold(filepath.Ext(file.Name()), ".pdf") {
					continue
				}

				filePath := filepath.Join(s.cfg.SourceDir, file.Name())
				currentFiles[filePath] = true

				s.fileMutex.Lock()
				if s.filesProcessing[filePath] {
					s.fileMutex.Unlock()
					continue
				}

				if _, exists := s.fileFirstSeen[filePath]; !exists {
					s.fileFirstSeen[filePath] = time.Now()
					fmt.Printf("New label file detected: %s\n", filePath)
					s.fileMutex.Unlock()
					continue
				}

				firstSeen := s.fileFirstSeen[filePath]
				s.fileMutex.Unlock()

				if time.Since(firstSeen) > s.cfg.SettleTime {
					fmt.Printf("The file %s has been stable for %v seconds. Start converting...\n", filePath, s.cfg.SettleTime.Seconds())

					s.fileMutex.Lock()
					s.filesProcessing[filePath] = true
					s.fileMutex.Unlock()

					select {
					case fileChan <- filePath:
					case <-ctx.Done():
						return
					}
				}
			}

			// Drop tracking state for files that disappeared from the
			// source directory.
			s.fileMutex.Lock()
			for filePath := range s.fileFirstSeen {
				if !currentFiles[filePath] {
					delete(s.fileFirstSeen, filePath)
					delete(s.filesProcessing, filePath)
					fmt.Printf("The file has been removed from tracking: %s\n", filePath)
				}
			}
			s.fileMutex.Unlock()
		}
	}
}

// fileStateBad routes a source file to the bad-file directory instead of
// the archive.
const (
	fileStateArchived = 0
	fileStateBad      = 1
)

// moveToArchive copies the processed source file into the dated archive
// (or bad-file) directory and removes the original. Name collisions get
// a numeric suffix.
func (s *Service) moveToArchive(filePath string, fileState int) {
	var state string
	switch fileState {
	case fileStateBad:
		state = s.cfg.BadDir
	default:
		state = s.cfg.ArchiveDir
	}

	currentDate := time.Now().Format("2006-01-02")
	destDir := filepath.Join(state, currentDate)

	if _, err := os.Stat(destDir); os.IsNotExist(err) {
		if err := os.MkdirAll(destDir, 0755); err != nil {
			fmt.Printf("error creating directory: %s\n", err)
			return
		}
	}

	destPath := filepath.Join(destDir, filepath.Base(filePath))

	counter := 1
	for {
		if _, err := os.Stat(destPath); os.IsNotExist(err) {
			break
		}
		ext := filepath.Ext(destPath)
		baseName := strings.TrimSuffix(filepath.Base(destPath), ext)
		destPath = filepath.Join(destDir, fmt.Sprintf("%s_%d%s", baseName, counter, ext))
		counter++
	}

	in, err := os.Open(filePath)
	if err != nil {
		fmt.Printf("error open file: %s\n", err)
		return
	}
	defer in.Close()

	out, err := os.Create(destPath)
	if err != nil {
		fmt.Printf("error create file: %s\n", err)
		return
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		fmt.Printf("error moving file to archive: %s\n", err)
		return
	}

	fmt.Printf("File moved to archive: %s\n", destPath)
	in.Close()
	os.Remove(filePath)
}

func createDirectories(dirs ...string) {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Printf("error creating directory %s: %s\n", dir, err)
		}
	}
}
