package saver

import (
	"github.com/parquet-go/parquet-go"

	"moex-data/internal/model"
)

// ParquetSaver writes packets as Parquet.
type ParquetSaver struct{}

func (ParquetSaver) Extension() string { return "parquet" }

func (ParquetSaver) Save(rows []model.Candle, path string) error {
	return parquet.WriteFile(path, rows)
}
