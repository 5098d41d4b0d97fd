package iss

import (
	"fmt"

	"moex-data/internal/model"
)

// Security resolves a ticker to its venue coordinates. Each call re-resolves;
// nothing is cached between calls.
//
// The response carries two sections: "description", a list of
// [field, type, value] triples keyed by field name, and "boards", whose first
// row holds market and engine at fixed positions.
func (c *Client) Security(ticker string) (model.Security, error) {
	if ticker == "" {
		return model.Security{}, fmt.Errorf("%w: ticker must be a non-empty string", ErrInvalidArgument)
	}

	doc, err := c.get("/iss/securities/"+ticker+".json", nil)
	if err != nil {
		return model.Security{}, err
	}

	description := doc.Get("description.data")
	boards := doc.Get("boards.data")
	if !description.Exists() || !boards.Exists() {
		return model.Security{}, fmt.Errorf("%w: security %s: response has no description/boards sections", ErrNotFound, ticker)
	}

	sec := model.Security{}
	for _, row := range description.Array() {
		triple := row.Array()
		if len(triple) < 3 {
			continue
		}
		switch triple[0].String() {
		case "SECID":
			sec.SecID = triple[2].String()
		case "SHORTNAME":
			sec.ShortName = triple[2].String()
		case "GROUP":
			sec.Group = triple[2].String()
		}
	}
	if sec.SecID == "" || sec.ShortName == "" || sec.Group == "" {
		return model.Security{}, fmt.Errorf("%w: security %s: description lacks SECID/SHORTNAME/GROUP", ErrMissingField, ticker)
	}

	boardRows := boards.Array()
	if len(boardRows) == 0 {
		return model.Security{}, fmt.Errorf("%w: security %s: boards section is empty", ErrDataFormat, ticker)
	}
	first := boardRows[0].Array()
	if len(first) < 8 {
		return model.Security{}, fmt.Errorf("%w: security %s: boards row has %d columns, want at least 8", ErrDataFormat, ticker, len(first))
	}
	// Positional per the boards schema: market at column 5, engine at column 7.
	sec.Market = first[5].String()
	sec.Engine = first[7].String()

	return sec, nil
}
