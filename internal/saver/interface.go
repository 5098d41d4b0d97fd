package saver

import (
	"strings"

	"moex-data/internal/model"
)

// PacketSaver persists one export packet (the candle table of a ticker/range).
// High-level code injects the implementation; the export loop depends only on
// this interface.
type PacketSaver interface {
	Save(rows []model.Candle, path string) error
	Extension() string
}

// NewPacketSaver creates the implementation for a format (csv, parquet, json).
// Returns nil if the format is not supported.
func NewPacketSaver(format string) PacketSaver {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return CSVSaver{}
	case "parquet":
		return ParquetSaver{}
	case "json":
		return JSONSaver{}
	default:
		return nil
	}
}
