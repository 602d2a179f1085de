package stooq

import "strings"

// marketSuffixes are the exchange suffixes Stooq accepts as-is.
var marketSuffixes = map[string]struct{}{
	"de": {}, "hk": {}, "hu": {}, "jp": {}, "uk": {}, "us": {},
}

// normalizeSymbol maps a ticker to the form the download endpoint expects.
//
//	^SPX    -> ^SPX     (indices are sent unchanged)
//	AAPL    -> AAPL.US  (bare symbols get the country suffix)
//	PKO.PL  -> PKO      (Polish listings are unsuffixed on Stooq)
//	7203.JP -> 7203.JP
//	BRK.B   -> BRK.B.US
func normalizeSymbol(symbol, country string) string {
	if country == "" {
		country = "US"
	}
	if strings.HasPrefix(symbol, "^") {
		return symbol
	}
	parts := strings.Split(symbol, ".")
	if len(parts) == 1 {
		return symbol + "." + country
	}
	suffix := strings.ToLower(parts[1])
	if suffix == "pl" {
		return parts[0]
	}
	if _, ok := marketSuffixes[suffix]; !ok {
		return symbol + ".US"
	}
	return symbol
}
