package domain

// CourseOpeningNFT deployment parameters. These are fixed and not part of the
// configuration surface.
const (
	CourseOpeningNFTContract = "CourseOpeningNFT"
	CourseOpeningNFTName     = "CourseOpeningNFT"
	CourseOpeningNFTSymbol   = "CONFT"
	CourseOpeningNFTBaseURI  = "localhost:3001/metadata/conft/"
)

// CourseOpeningNFTArgs returns the constructor arguments in declaration order:
// name, symbol, base URI.
func CourseOpeningNFTArgs() []any {
	return []any{
		CourseOpeningNFTName,
		CourseOpeningNFTSymbol,
		CourseOpeningNFTBaseURI,
	}
}

// Local development chain ids (Hardhat / Anvil and the geth simulated backend).
const (
	HardhatChainID   uint64 = 31337
	SimulatedChainID uint64 = 1337
)

// IsLocalChain reports whether chainID belongs to a local development chain.
func IsLocalChain(chainID uint64) bool {
	return chainID == HardhatChainID || chainID == SimulatedChainID
}
