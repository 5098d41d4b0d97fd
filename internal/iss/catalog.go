package iss

import (
	"fmt"

	"moex-data/internal/model"
)

// AssetClass selects one of the fixed listing boards.
type AssetClass string

const (
	Shares  AssetClass = "shares"
	OTC     AssetClass = "otc"
	ETF     AssetClass = "etf"
	Futures AssetClass = "futures"
)

// Each asset class maps to one fixed engine/market/board listing endpoint.
var listingPaths = map[AssetClass]string{
	Shares:  "/iss/engines/stock/markets/shares/boards/TQBR/securities.json",
	OTC:     "/iss/engines/otc/markets/shares/boards/MTQR/securities.json",
	ETF:     "/iss/engines/stock/markets/shares/boards/TQTF/securities.json",
	Futures: "/iss/engines/futures/markets/forts/boards/RFUD/securities.json",
}

// Assets lists all instruments of the given class, projected to secid and
// short name, in the order the service returns them.
func (c *Client) Assets(class AssetClass) ([]model.Listing, error) {
	path, ok := listingPaths[class]
	if !ok {
		return nil, fmt.Errorf("%w: asset class %q (want one of: shares, otc, etf, futures)", ErrInvalidArgument, class)
	}

	doc, err := c.get(path, nil)
	if err != nil {
		return nil, err
	}

	columns := doc.Get("securities.columns").Array()
	secIdx, nameIdx := -1, -1
	for i, col := range columns {
		switch col.String() {
		case "SECID":
			secIdx = i
		case "SHORTNAME":
			nameIdx = i
		}
	}
	if secIdx < 0 || nameIdx < 0 {
		return nil, fmt.Errorf("%w: securities listing lacks SECID/SHORTNAME columns", ErrDataFormat)
	}

	data := doc.Get("securities.data").Array()
	listings := make([]model.Listing, 0, len(data))
	for _, row := range data {
		fields := row.Array()
		if len(fields) <= secIdx || len(fields) <= nameIdx {
			return nil, fmt.Errorf("%w: securities listing row is shorter than its columns", ErrDataFormat)
		}
		listings = append(listings, model.Listing{
			SecID:     fields[secIdx].String(),
			ShortName: fields[nameIdx].String(),
		})
	}
	return listings, nil
}
