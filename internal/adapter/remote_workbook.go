package adapter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/MKhiriev/go-sheet-sync/internal/logger"
	"github.com/MKhiriev/go-sheet-sync/internal/utils"
	"github.com/MKhiriev/go-sheet-sync/models"
	"github.com/xuri/excelize/v2"
)

type idGenerator interface {
	Generate() string
}

// WorkbookRemoteStore is a [RemoteStore] kept in a single workbook file, one
// sheet per entity. The first row of a sheet holds the headers, the
// identifier column first. The file is saved after every write.
type WorkbookRemoteStore struct {
	mu   sync.Mutex
	path string
	file *excelize.File
	ids  idGenerator

	logger *logger.Logger
}

// NewWorkbookRemoteStore opens the workbook at path, or starts an empty one
// that is created on the first write.
func NewWorkbookRemoteStore(path string, log *logger.Logger) (*WorkbookRemoteStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("empty workbook path")
	}

	file, err := excelize.OpenFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		file, err = excelize.NewFile(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}

	return &WorkbookRemoteStore{
		path:   path,
		file:   file,
		ids:    utils.NewUUIDGenerator(),
		logger: log,
	}, nil
}

// Close releases the workbook.
func (w *WorkbookRemoteStore) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.Close()
}

// ListAll implements [RemoteStore]. A sheet that does not exist yet has no
// rows. Blank lines are skipped.
func (w *WorkbookRemoteStore) ListAll(ctx context.Context, sheet models.Sheet) ([]models.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	header, lines, err := w.readSheet(sheet.Name)
	if errors.Is(err, ErrSheetNotFound) {
		return []models.Row{}, nil
	}
	if err != nil {
		return nil, err
	}

	rows := make([]models.Row, 0, len(lines))
	for _, line := range lines {
		row := make(models.Row, len(header))
		blank := true
		for i, h := range header {
			if h == "" {
				continue
			}
			var v string
			if i < len(line) {
				v = line[i]
			}
			if strings.TrimSpace(v) != "" {
				blank = false
			}
			row[h] = v
		}
		if !blank {
			rows = append(rows, row)
		}
	}

	return rows, nil
}

// Append implements [RemoteStore]. The proposed identifier is kept when the
// sheet accepts one; otherwise a time-ordered UUID is assigned.
func (w *WorkbookRemoteStore) Append(ctx context.Context, sheet models.Sheet, row models.Row, proposedID string) (models.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	header, lines, err := w.ensureSheet(sheet, row)
	if err != nil {
		return nil, err
	}

	id := strings.TrimSpace(proposedID)
	if !sheet.AcceptsProposedID || id == "" {
		id = w.ids.Generate()
	}
	if findLine(header, lines, sheet.IDColumn, id) >= 0 {
		return nil, fmt.Errorf("%w: identifier %s already exists in %s", ErrConflict, id, sheet.Name)
	}

	stored := make(models.Row, len(row)+1)
	for k, v := range row {
		stored[k] = v
	}
	stored[sheet.IDColumn] = id

	// header row is line 1, data starts at line 2
	if err = w.writeLine(sheet.Name, header, len(lines)+2, stored); err != nil {
		return nil, err
	}
	if err = w.file.SaveAs(w.path); err != nil {
		return nil, fmt.Errorf("save workbook %s: %w", w.path, err)
	}

	w.logger.Debug().
		Str("func", "WorkbookRemoteStore.Append").
		Str("sheet", sheet.Name).
		Str("remote_id", id).
		Msg("row appended")

	return stored, nil
}

// UpdateByIdentifier implements [RemoteStore]. Only the headers present in
// row are overwritten; the identifier cell is never changed.
func (w *WorkbookRemoteStore) UpdateByIdentifier(ctx context.Context, sheet models.Sheet, id string, row models.Row) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, _, err := w.readSheet(sheet.Name); errors.Is(err, ErrSheetNotFound) {
		return fmt.Errorf("%w: %s in %s", ErrRowNotFound, id, sheet.Name)
	}

	header, lines, err := w.ensureSheet(sheet, row)
	if err != nil {
		return err
	}

	idx := findLine(header, lines, sheet.IDColumn, strings.TrimSpace(id))
	if idx < 0 {
		return fmt.Errorf("%w: %s in %s", ErrRowNotFound, id, sheet.Name)
	}

	values := make(models.Row, len(row))
	for k, v := range row {
		if k != sheet.IDColumn {
			values[k] = v
		}
	}
	if err = w.writeLine(sheet.Name, header, idx+2, values); err != nil {
		return err
	}
	if err = w.file.SaveAs(w.path); err != nil {
		return fmt.Errorf("save workbook %s: %w", w.path, err)
	}

	return nil
}

func (w *WorkbookRemoteStore) readSheet(name string) ([]string, [][]string, error) {
	idx, err := w.file.GetSheetIndex(name)
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %s: %w", name, err)
	}
	if idx < 0 {
		return nil, nil, fmt.Errorf("%w: %s", ErrSheetNotFound, name)
	}

	lines, err := w.file.GetRows(name)
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %s: %w", name, err)
	}
	if len(lines) == 0 {
		return nil, nil, nil
	}

	header := make([]string, len(lines[0]))
	for i, h := range lines[0] {
		header[i] = strings.TrimSpace(h)
	}
	return header, lines[1:], nil
}

// ensureSheet creates the sheet if needed and extends its header row with
// the headers of row it does not know yet.
func (w *WorkbookRemoteStore) ensureSheet(sheet models.Sheet, row models.Row) ([]string, [][]string, error) {
	header, lines, err := w.readSheet(sheet.Name)
	if errors.Is(err, ErrSheetNotFound) {
		if _, err = w.file.NewSheet(sheet.Name); err != nil {
			return nil, nil, fmt.Errorf("create sheet %s: %w", sheet.Name, err)
		}
	} else if err != nil {
		return nil, nil, err
	}

	known := make(map[string]bool, len(header))
	for _, h := range header {
		known[h] = true
	}

	var missing []string
	if !known[sheet.IDColumn] {
		missing = append(missing, sheet.IDColumn)
		known[sheet.IDColumn] = true
	}
	extra := make([]string, 0, len(row))
	for h := range row {
		if !known[h] {
			extra = append(extra, h)
		}
	}
	sort.Strings(extra)
	missing = append(missing, extra...)

	for _, h := range missing {
		header = append(header, h)
		cell, err := excelize.CoordinatesToCellName(len(header), 1)
		if err != nil {
			return nil, nil, err
		}
		if err = w.file.SetCellValue(sheet.Name, cell, h); err != nil {
			return nil, nil, fmt.Errorf("write header %s: %w", h, err)
		}
	}

	return header, lines, nil
}

func (w *WorkbookRemoteStore) writeLine(sheet string, header []string, line int, row models.Row) error {
	for i, h := range header {
		v, ok := row[h]
		if !ok || h == "" {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(i+1, line)
		if err != nil {
			return err
		}
		if err = w.file.SetCellStr(sheet, cell, v); err != nil {
			return fmt.Errorf("write cell %s of %s: %w", cell, sheet, err)
		}
	}
	return nil
}

func findLine(header []string, lines [][]string, idColumn, id string) int {
	if id == "" {
		return -1
	}
	col := -1
	for i, h := range header {
		if h == idColumn {
			col = i
			break
		}
	}
	if col < 0 {
		return -1
	}
	for i, line := range lines {
		if col < len(line) && strings.TrimSpace(line[col]) == id {
			return i
		}
	}
	return -1
}
