package mapscript

import (
	"dungeon-lore/internal/generate"

	"github.com/Shopify/go-lua"
)

func (r *runner) register(state *lua.State) {
	r.library(state, "crawl", []lua.RegistryFunction{
		{Name: "random2", Function: r.random2},
		{Name: "coinflip", Function: r.coinflip},
		{Name: "mpr", Function: r.mpr},
	})
	r.library(state, "alphabet", []lua.RegistryFunction{
		{Name: "pick_letter", Function: r.pickLetter},
		{Name: "name", Function: r.letterName},
		{Name: "items", Function: r.letterItems},
		{Name: "stock", Function: r.stock},
		{Name: "greed", Function: r.greed},
		{Name: "inventory", Function: inventory},
		{Name: "scrub", Function: scrub},
		{Name: "shop_name", Function: shopName},
	})
	r.library(state, "dgn", []lua.RegistryFunction{
		{Name: "map", Function: r.setMap},
		{Name: "shop", Function: r.setShop},
	})
}

func (r *runner) library(state *lua.State, name string, fns []lua.RegistryFunction) {
	state.NewTable()
	lua.SetFunctions(state, fns, 0)
	state.SetGlobal(name)
}

// random2(n) returns an integer in [0, n).
func (r *runner) random2(state *lua.State) int {
	n := lua.CheckInteger(state, 1)
	if n <= 0 {
		state.PushInteger(0)
		return 1
	}
	state.PushInteger(r.gen.Rand.Intn(n))
	return 1
}

func (r *runner) coinflip(state *lua.State) int {
	state.PushBoolean(r.gen.Rand.Intn(2) == 0)
	return 1
}

func (r *runner) mpr(state *lua.State) int {
	r.log.Debug(lua.CheckString(state, 1))
	return 0
}

func checkLetter(state *lua.State, index int) byte {
	s := lua.CheckString(state, index)
	if len(s) != 1 {
		lua.ArgumentError(state, index, "expected a single letter")
	}
	return s[0]
}

func (r *runner) pickLetter(state *lua.State) int {
	l, err := generate.PickLetter(r.gen.Table, r.gen.Rand)
	if err != nil {
		lua.Errorf(state, "%s", err.Error())
		return 0
	}
	state.PushString(string(l))
	return 1
}

func (r *runner) letterName(state *lua.State) int {
	state.PushString(generate.LetterName(r.gen.Table, checkLetter(state, 1)))
	return 1
}

func (r *runner) letterItems(state *lua.State) int {
	pushStrings(state, generate.LetterItems(r.gen.Table, checkLetter(state, 1)))
	return 1
}

func (r *runner) stock(state *lua.State) int {
	lua.CheckType(state, 1, lua.TypeTable)
	pushStrings(state, generate.PickStock(toStrings(state, 1), r.gen.Rand))
	return 1
}

func (r *runner) greed(state *lua.State) int {
	state.PushInteger(generate.PickGreed(r.gen.Rand))
	return 1
}

// inventory(items) joins items into a pipe-separated inventory string.
func inventory(state *lua.State) int {
	lua.CheckType(state, 1, lua.TypeTable)
	state.PushString(generate.JoinInventory(toStrings(state, 1)))
	return 1
}

func scrub(state *lua.State) int {
	state.PushString(generate.Scrub(lua.CheckString(state, 1)))
	return 1
}

func shopName(state *lua.State) int {
	keeper := lua.CheckString(state, 1)
	state.PushString(generate.ShopName(keeper, checkLetter(state, 2)))
	return 1
}

func (r *runner) setMap(state *lua.State) int {
	layout := lua.CheckString(state, 1)
	r.layout = &layout
	return 0
}

func (r *runner) setShop(state *lua.State) int {
	r.shop = &generate.Directive{
		Name:      lua.CheckString(state, 1),
		Inventory: lua.OptString(state, 2, ""),
	}
	r.log.Debug("shop directive", "directive", r.shop.String())
	return 0
}

func pushStrings(state *lua.State, items []string) {
	state.CreateTable(len(items), 0)
	for i, it := range items {
		state.PushString(it)
		state.RawSetInt(-2, i+1)
	}
}

func toStrings(state *lua.State, index int) []string {
	n := lua.LengthEx(state, index)
	out := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		state.RawGetInt(index, i)
		if s, ok := state.ToString(-1); ok {
			out = append(out, s)
		}
		state.Pop(1)
	}
	return out
}
