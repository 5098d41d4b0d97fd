package iss

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moex-data/internal/model"
)

const sharesListingBody = `{
  "securities": {
    "columns": ["SECID", "BOARDID", "SHORTNAME", "PREVPRICE", "LOTSIZE"],
    "data": [
      ["ABIO", "TQBR", "iАРТГЕН ао", 92.02, 10],
      ["LKOH", "TQBR", "ЛУКОЙЛ", 7235, 1],
      ["SBER", "TQBR", "Сбербанк", 269.5, 10]
    ]
  }
}`

func TestAssetsShares(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/iss/engines/stock/markets/shares/boards/TQBR/securities.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, sharesListingBody)
	})
	c := newTestClient(t, mux)

	listings, err := c.Assets(Shares)
	require.NoError(t, err)
	assert.Equal(t, []model.Listing{
		{SecID: "ABIO", ShortName: "iАРТГЕН ао"},
		{SecID: "LKOH", ShortName: "ЛУКОЙЛ"},
		{SecID: "SBER", ShortName: "Сбербанк"},
	}, listings)
}

func TestAssetsFuturesEndpoint(t *testing.T) {
	var hits int
	mux := http.NewServeMux()
	mux.HandleFunc("/iss/engines/futures/markets/forts/boards/RFUD/securities.json", func(w http.ResponseWriter, r *http.Request) {
		hits++
		fmt.Fprint(w, `{"securities": {"columns": ["SECID", "SHORTNAME"], "data": []}}`)
	})
	c := newTestClient(t, mux)

	listings, err := c.Assets(Futures)
	require.NoError(t, err)
	assert.Empty(t, listings)
	assert.Equal(t, 1, hits)
}

func TestAssetsUnknownClass(t *testing.T) {
	c := newTestClient(t, http.NewServeMux())
	_, err := c.Assets("bonds")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestAssetsMissingColumns(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/iss/engines/stock/markets/shares/boards/TQTF/securities.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"securities": {"columns": ["BOARDID"], "data": []}}`)
	})
	c := newTestClient(t, mux)

	_, err := c.Assets(ETF)
	assert.ErrorIs(t, err, ErrDataFormat)
}

func TestAssetsServerError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	})
	c := newTestClient(t, mux)

	_, err := c.Assets(OTC)
	assert.ErrorIs(t, err, ErrNetwork)
}
