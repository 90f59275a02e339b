package api

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Lesaloon/MR-Label-Converter/converter"
	"github.com/Lesaloon/MR-Label-Converter/label"
	"github.com/Lesaloon/MR-Label-Converter/types"
)

const (
	combinedName = "combined-two-per-page.pdf"
	archiveName  = "converted-labels.zip"
)

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

type ConvertHandler struct {
	logger *slog.Logger
	conv   *converter.Converter
}

func NewConvertHandler() *ConvertHandler {
	return &ConvertHandler{
		logger: slog.Default(),
		conv:   converter.New(),
	}
}

// HandleConvert accepts a multipart upload of one or more label PDFs,
// converts each one plus a combined two-per-page sheet, and returns
// everything as a single ZIP download.
func (h *ConvertHandler) HandleConvert(c *fiber.Ctx) error {
	var params types.ConvertParams
	if err := c.BodyParser(&params); err != nil {
		return ErrBadRequest()
	}
	if errs := types.Validate(&params); len(errs) > 0 {
		return types.NewValidationError(errs)
	}
	cfg := params.Config()

	form, err := c.MultipartForm()
	if err != nil {
		return ErrBadRequest()
	}
	files := form.File["files"]
	if len(files) == 0 {
		return ErrNoFiles()
	}
	for _, fh := range files {
		if !isPDFUpload(fh) {
			return ErrUnsupportedMedia(fh.Filename)
		}
	}

	workDir := filepath.Join(os.TempDir(), "label-convert-"+uuid.New().String())
	if err := os.MkdirAll(workDir, 0o700); err != nil {
		return fmt.Errorf("create work dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	type result struct {
		path    string
		arcName string
	}
	inputs := make([]string, 0, len(files))
	results := make([]result, 0, len(files)+1)
	for i, fh := range files {
		inputPath := filepath.Join(workDir, fmt.Sprintf("input-%d.pdf", i+1))
		outputPath := filepath.Join(workDir, fmt.Sprintf("output-%d.pdf", i+1))
		if err := c.SaveFile(fh, inputPath); err != nil {
			return fmt.Errorf("store upload %s: %w", fh.Filename, err)
		}
		if err := h.conv.ConvertFile(inputPath, outputPath, cfg); err != nil {
			return convertError(fh.Filename, err)
		}
		inputs = append(inputs, inputPath)
		results = append(results, result{outputPath, outputName(fh.Filename, i+1)})
	}

	combinedPath := filepath.Join(workDir, combinedName)
	if err := h.conv.ConvertCombined(inputs, combinedPath, cfg); err != nil {
		return convertError(combinedName, err)
	}
	results = append(results, result{combinedPath, combinedName})

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, r := range results {
		data, err := os.ReadFile(r.path)
		if err != nil {
			return fmt.Errorf("read %s: %w", r.arcName, err)
		}
		w, err := zw.Create(r.arcName)
		if err != nil {
			return fmt.Errorf("archive %s: %w", r.arcName, err)
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("archive %s: %w", r.arcName, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize archive: %w", err)
	}

	h.logger.Info("conversion done", "files", len(files), "bytes", buf.Len())

	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", archiveName))
	return c.Send(buf.Bytes())
}

func convertError(name string, err error) error {
	switch {
	case errors.Is(err, label.ErrInvalidPageSize), errors.Is(err, label.ErrInvalidRatio):
		return types.NewValidationError(map[string]string{"conversion": err.Error()})
	case errors.Is(err, converter.ErrSourceNotFound):
		return NewError(fiber.StatusBadRequest, err.Error())
	default:
		return fmt.Errorf("convert %s: %w", name, err)
	}
}

func isPDFUpload(fh *multipart.FileHeader) bool {
	if strings.EqualFold(filepath.Ext(fh.Filename), ".pdf") {
		return true
	}
	switch fh.Header.Get(fiber.HeaderContentType) {
	case "application/pdf", "application/x-pdf":
		return true
	}
	return false
}

// outputName derives a safe archive entry name from the uploaded
// filename. Anything that sanitizes down to nothing falls back to a
// positional name.
func outputName(uploaded string, idx int) string {
	stem := strings.TrimSuffix(filepath.Base(uploaded), filepath.Ext(uploaded))
	stem = unsafeNameChars.ReplaceAllString(stem, "_")
	stem = strings.Trim(stem, "._")
	if stem == "" {
		stem = fmt.Sprintf("file-%d", idx)
	}
	return stem + "-converted.pdf"
}
