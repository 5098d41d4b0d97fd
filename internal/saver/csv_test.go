package saver

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moex-data/internal/model"
)

func sampleRows() []model.Candle {
	return []model.Candle{
		{Ticker: "LKOH", Interval: 1, Date: "241218", Time: "100000", Open: 7010, High: 7014, Low: 7009, Close: 7013.5, Volume: 77},
		{Ticker: "LKOH", Interval: 1, Date: "241218", Time: "100100", Open: 7013.5, High: 7015, Low: 7012, Close: 7012, Volume: 120},
	}
}

func TestCSVSaverRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lkoh.csv")
	require.NoError(t, CSVSaver{}.Save(sampleRows(), path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"<TICKER>", "<PER>", "<DATE>", "<TIME>", "<OPEN>", "<HIGH>", "<LOW>", "<CLOSE>", "<VOL>"}, records[0])
	assert.Equal(t, []string{"LKOH", "1", "241218", "100000", "7010", "7014", "7009", "7013.5", "77"}, records[1])
	assert.Equal(t, []string{"LKOH", "1", "241218", "100100", "7013.5", "7015", "7012", "7012", "120"}, records[2])
}

func TestCSVSaverEmptyTableWritesHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, CSVSaver{}.Save(nil, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestNewPacketSaver(t *testing.T) {
	assert.IsType(t, CSVSaver{}, NewPacketSaver("csv"))
	assert.IsType(t, ParquetSaver{}, NewPacketSaver(" Parquet "))
	assert.IsType(t, JSONSaver{}, NewPacketSaver("JSON"))
	assert.Nil(t, NewPacketSaver("xlsx"))
}
