package cli

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kyawhtet1234/GoalFlow/internal/errors"
	"github.com/kyawhtet1234/GoalFlow/internal/repository/sqlite"
)

// ExportCommand handles the export command
type ExportCommand struct {
	repository sqlite.Repository
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App) *ExportCommand {
	return &ExportCommand{repository: app.repository}
}

// Execute runs the export command
func (c *ExportCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.NewInvalidInputError("command", "export", "usage: goalflow export format=csv|json")
	}

	format := args[0]
	if !strings.HasPrefix(format, "format=") {
		return errors.NewInvalidInputError("format", format, "invalid format option")
	}

	format = strings.TrimPrefix(format, "format=")
	switch format {
	case "csv":
		return c.exportCSV(ctx)
	case "json":
		return c.exportJSON(ctx)
	default:
		return errors.NewInvalidInputError("format", format, "unsupported format")
	}
}

// exportCSV dumps every stored document as one CSV row
func (c *ExportCommand) exportCSV(ctx context.Context) error {
	records, err := c.listRecords(ctx)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(os.Stdout)
	defer writer.Flush()

	header := []string{"Key", "Updated At", "Value"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.Key,
			record.UpdatedAt.Format(time.RFC3339),
			record.Value,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}

// exportJSON dumps the whole store as one JSON object keyed by record key
func (c *ExportCommand) exportJSON(ctx context.Context) error {
	records, err := c.listRecords(ctx)
	if err != nil {
		return err
	}

	document := make(map[string]json.RawMessage, len(records))
	for _, record := range records {
		if json.Valid([]byte(record.Value)) {
			document[record.Key] = json.RawMessage(record.Value)
			continue
		}
		// Bare values (the sales goal is stored as a plain number string)
		encoded, err := json.Marshal(record.Value)
		if err != nil {
			return fmt.Errorf("failed to encode record %q: %w", record.Key, err)
		}
		document[record.Key] = encoded
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(document); err != nil {
		return fmt.Errorf("failed to write JSON export: %w", err)
	}

	return nil
}

func (c *ExportCommand) listRecords(ctx context.Context) ([]*sqlite.Record, error) {
	records, err := c.repository.ListRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}
	return records, nil
}
