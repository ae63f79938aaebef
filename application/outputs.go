package application

import (
	"bytes"
	"code/core"
	"context"
	"encoding/json"
	"fmt"
)

const jsonIndent = "    "

// MarshalLegislation renders titles as indented UTF-8 JSON with a trailing
// newline. The output depends only on titles, never on the run.
func MarshalLegislation(titles *core.TitleMap) ([]byte, error) {
	if titles == nil {
		titles = core.NewTitleMap()
	}
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", jsonIndent)
	if err := encoder.Encode(titles); err != nil {
		return nil, fmt.Errorf("error on encoding legislation: %v", err)
	}
	return buf.Bytes(), nil
}

func WriteLegislation(ctx context.Context, titles *core.TitleMap, fileName string, outputStores []core.OutputStore, logger core.Logger) error {
	if titles == nil {
		titles = core.NewTitleMap()
	}
	logger.Info("encoding %d titles", titles.Len())
	data, err := MarshalLegislation(titles)
	if err != nil {
		return err
	}
	for _, outputStore := range outputStores {
		if err := outputStore.PutDocument(ctx, fileName, data); err != nil {
			return fmt.Errorf("error on putting document '%s': %w", fileName, err)
		}
	}
	logger.Info("wrote '%s' (%d bytes) to %d output stores", fileName, len(data), len(outputStores))
	return nil
}
