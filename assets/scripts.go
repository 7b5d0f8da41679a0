package assets

import _ "embed"

// AlphabetShopScript is the map script that places an alphabet shop.
//
//go:embed alphabet_shop.lua
var AlphabetShopScript string
