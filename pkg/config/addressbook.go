package config

import "strings"

// AddressBook is the injected known-address universe. Lookups are
// case-insensitive; all sets are normalized to lowercase on build.
//
// The strict CEX set deliberately excludes bridges: exchange-specific
// signals must never be inflated by bridge traffic.
type AddressBook struct {
	cex     map[string]struct{}
	bridges map[string]struct{}
	routers map[string]struct{}
	tokens  map[string]struct{}
}

// NewAddressBook builds an AddressBook from explicit address lists.
func NewAddressBook(cex, bridges, routers, tokens []string) *AddressBook {
	return &AddressBook{
		cex:     toSet(cex),
		bridges: toSet(bridges),
		routers: toSet(routers),
		tokens:  toSet(tokens),
	}
}

// AddressBook materializes the configured universe, falling back to
// the built-in mainnet sets for any empty list.
func (c *Config) AddressBook() *AddressBook {
	cex := c.Addresses.CEX
	if len(cex) == 0 {
		cex = mainnetCEX
	}
	bridges := c.Addresses.Bridges
	if len(bridges) == 0 {
		bridges = mainnetBridges
	}
	routers := c.Addresses.DEXRouters
	if len(routers) == 0 {
		routers = mainnetDEXRouters
	}
	tokens := c.Addresses.Tokens
	if len(tokens) == 0 {
		tokens = mainnetTokens
	}
	return NewAddressBook(cex, bridges, routers, tokens)
}

// IsStrictCEX reports membership in the strict CEX set only.
func (b *AddressBook) IsStrictCEX(addr string) bool {
	_, ok := b.cex[strings.ToLower(addr)]
	return ok
}

// IsBridge reports membership in the bridge set.
func (b *AddressBook) IsBridge(addr string) bool {
	_, ok := b.bridges[strings.ToLower(addr)]
	return ok
}

// IsCEXOrBridge reports membership in either funding-relevant set.
func (b *AddressBook) IsCEXOrBridge(addr string) bool {
	return b.IsStrictCEX(addr) || b.IsBridge(addr)
}

// IsDEXRouter reports membership in the known router set.
func (b *AddressBook) IsDEXRouter(addr string) bool {
	_, ok := b.routers[strings.ToLower(addr)]
	return ok
}

// IsKnownContract reports membership in any configured set. Used to
// keep popular contracts out of cluster membership.
func (b *AddressBook) IsKnownContract(addr string) bool {
	a := strings.ToLower(addr)
	if _, ok := b.cex[a]; ok {
		return true
	}
	if _, ok := b.bridges[a]; ok {
		return true
	}
	if _, ok := b.routers[a]; ok {
		return true
	}
	_, ok := b.tokens[a]
	return ok
}

func toSet(addrs []string) map[string]struct{} {
	s := make(map[string]struct{}, len(addrs))
	for _, a := range addrs {
		a = strings.ToLower(strings.TrimSpace(a))
		if a != "" {
			s[a] = struct{}{}
		}
	}
	return s
}

// Built-in mainnet universes. Kept small on purpose: these are
// defaults for development, production deployments ship full lists
// via YAML.
var (
	mainnetCEX = []string{
		"0x3f5ce5fbfe3e9af3971dd833d26ba9b5c936f0be", // Binance
		"0xd551234ae421e3bcba99a0da6d736074f22192ff", // Binance 2
		"0x28c6c06298d514db089934071355e5743bf21d60", // Binance 14
		"0x71660c4005ba85c37ccec55d0c4493e66fe775d3", // Coinbase
		"0x503828976d22510aad0201ac7ec88293211d23da", // Coinbase 2
		"0x2910543af39aba0cd09dbb2d50200b3e800a63d2", // Kraken
		"0x0d0707963952f2fba59dd06f2b425ace40b492fe", // Gate.io
		"0x6cc5f688a315f3dc28a7781717a9a798a59fda7b", // OKX
	}
	mainnetBridges = []string{
		"0x40ec5b33f54e0e8a33a975908c5ba1c14e5bbbdf", // Polygon ERC20 bridge
		"0xa0c68c638235ee32657e8f720a23cec1bfc77c77", // Polygon bridge
		"0x8315177ab297ba92a06054ce80a67ed4dbd7ed3a", // Arbitrum bridge
		"0x99c9fc46f92e8a1c0dec1b1747d010903e884be1", // Optimism gateway
		"0x3ee18b2214aff97000d974cf647e7c347e8fa585", // Wormhole
	}
	mainnetDEXRouters = []string{
		"0x7a250d5630b4cf539739df2c5dacb4c659f2488d", // Uniswap V2 router
		"0xe592427a0aece92de3edee1f18e0157c05861564", // Uniswap V3 router
		"0x68b3465833fb72a70ecdf485e0e4c7bd8665fc45", // Uniswap V3 router 2
		"0xd9e1ce17f2641f24ae83637ab66a2cca9c378b9f", // SushiSwap router
		"0x1111111254eeb25477b68fb85ed929f73a960582", // 1inch v5
	}
	mainnetTokens = []string{
		"0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2", // WETH
		"0xdac17f958d2ee523a2206206994597c13d831ec7", // USDT
	}
)
