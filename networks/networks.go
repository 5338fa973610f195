// Package networks holds the static network and asset lookup tables the
// protocol core and its callers share. It is configuration only; nothing
// here talks to a chain.
package networks

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/nova402/novax402/types"
)

// Config describes one supported network.
type Config struct {
	ChainID     *big.Int // nil for non-EVM networks
	Cluster     string   // Solana cluster name, empty for EVM networks
	Name        string
	Type        types.NetworkType
	RPCURL      string
	Explorer    string
	USDCAddress string
	Decimals    int
}

var (
	ChainIDMainnet     = big.NewInt(1)
	ChainIDBase        = big.NewInt(8453)
	ChainIDBaseSepolia = big.NewInt(84532)
	ChainIDPolygon     = big.NewInt(137)
	ChainIDBSC         = big.NewInt(56)
	ChainIDSei         = big.NewInt(1329)
	ChainIDPeaq        = big.NewInt(3338)
)

// Configs maps network identifiers to their configuration. Keys are the
// human-readable names; CAIP-2 identifiers resolve through Lookup.
var Configs = map[string]Config{
	"base-mainnet": {
		ChainID:     ChainIDBase,
		Name:        "Base Mainnet",
		Type:        types.NetworkTypeEVM,
		RPCURL:      "https://mainnet.base.org",
		Explorer:    "https://basescan.org",
		USDCAddress: "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913",
		Decimals:    6,
	},
	"base-sepolia": {
		ChainID:     ChainIDBaseSepolia,
		Name:        "Base Sepolia",
		Type:        types.NetworkTypeEVM,
		RPCURL:      "https://sepolia.base.org",
		Explorer:    "https://sepolia.basescan.org",
		USDCAddress: "0x036CbD53842c5426634e7929541eC2318f3dCF7e",
		Decimals:    6,
	},
	"polygon": {
		ChainID:     ChainIDPolygon,
		Name:        "Polygon",
		Type:        types.NetworkTypeEVM,
		RPCURL:      "https://polygon-rpc.com",
		Explorer:    "https://polygonscan.com",
		USDCAddress: "0x2791Bca1f2de4661ED88A30C99A7a9449Aa84174",
		Decimals:    6,
	},
	"bsc": {
		ChainID:     ChainIDBSC,
		Name:        "BNB Smart Chain",
		Type:        types.NetworkTypeEVM,
		RPCURL:      "https://bsc-dataseed.binance.org",
		Explorer:    "https://bscscan.com",
		USDCAddress: "0x8AC76a51cc950d9822D68b83fE1Ad97B32Cd580d",
		Decimals:    18,
	},
	"sei": {
		ChainID:  ChainIDSei,
		Name:     "Sei Network",
		Type:     types.NetworkTypeEVM,
		RPCURL:   "https://evm-rpc.sei-apis.com",
		Explorer: "https://seitrace.com",
		Decimals: 6,
	},
	"peaq": {
		ChainID:  ChainIDPeaq,
		Name:     "Peaq Network",
		Type:     types.NetworkTypeEVM,
		RPCURL:   "https://peaq.api.onfinality.io/public",
		Explorer: "https://peaq.subscan.io",
		Decimals: 6,
	},
	"solana-mainnet": {
		Cluster:     "mainnet",
		Name:        "Solana Mainnet",
		Type:        types.NetworkTypeSolana,
		RPCURL:      "https://api.mainnet-beta.solana.com",
		Explorer:    "https://explorer.solana.com",
		USDCAddress: "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
		Decimals:    6,
	},
	"solana-devnet": {
		Cluster:     "devnet",
		Name:        "Solana Devnet",
		Type:        types.NetworkTypeSolana,
		RPCURL:      "https://api.devnet.solana.com",
		Explorer:    "https://explorer.solana.com?cluster=devnet",
		USDCAddress: "4zMMC9srt5Ri5X14GAgXhaHii3GnPAEERYPJgZJDncDU",
		Decimals:    6,
	},
}

// Lookup resolves a network identifier, accepting both human-readable names
// ("base-mainnet") and CAIP-2 identifiers ("eip155:8453", "solana:mainnet").
func Lookup(network string) (Config, error) {
	if config, ok := Configs[network]; ok {
		return config, nil
	}

	if chainIDStr, ok := strings.CutPrefix(network, "eip155:"); ok {
		chainID, ok := new(big.Int).SetString(chainIDStr, 10)
		if ok && chainID.Sign() > 0 {
			for _, config := range Configs {
				if config.ChainID != nil && config.ChainID.Cmp(chainID) == 0 {
					return config, nil
				}
			}
			// Recognized family, unknown chain: minimal config.
			return Config{ChainID: chainID, Name: network, Type: types.NetworkTypeEVM, Decimals: 18}, nil
		}
	}

	if cluster, ok := strings.CutPrefix(network, "solana:"); ok && cluster != "" {
		for _, config := range Configs {
			if config.Cluster == cluster {
				return config, nil
			}
		}
		return Config{Cluster: cluster, Name: network, Type: types.NetworkTypeSolana, Decimals: 9}, nil
	}

	return Config{}, fmt.Errorf("unsupported network: %s", network)
}

// ChainID returns the EVM chain ID for a network identifier.
func ChainID(network string) (*big.Int, error) {
	config, err := Lookup(network)
	if err != nil {
		return nil, err
	}
	if config.ChainID == nil {
		return nil, fmt.Errorf("network %s is not EVM-based", network)
	}
	return config.ChainID, nil
}

// USDCAddress returns the USDC contract or mint address for a network.
func USDCAddress(network string) (string, error) {
	config, err := Lookup(network)
	if err != nil {
		return "", err
	}
	if config.USDCAddress == "" {
		return "", fmt.Errorf("USDC not configured for network: %s", network)
	}
	return config.USDCAddress, nil
}

// IsEVM reports whether the network belongs to the EVM family.
func IsEVM(network string) bool {
	config, err := Lookup(network)
	return err == nil && config.Type == types.NetworkTypeEVM
}

// IsSolana reports whether the network belongs to the Solana family.
func IsSolana(network string) bool {
	config, err := Lookup(network)
	return err == nil && config.Type == types.NetworkTypeSolana
}

// ToCAIP2 converts a network identifier to its CAIP-2 form.
func ToCAIP2(network string) (string, error) {
	config, err := Lookup(network)
	if err != nil {
		return "", err
	}
	switch config.Type {
	case types.NetworkTypeEVM:
		return fmt.Sprintf("eip155:%s", config.ChainID.String()), nil
	case types.NetworkTypeSolana:
		return fmt.Sprintf("solana:%s", config.Cluster), nil
	}
	return "", fmt.Errorf("unsupported network type: %s", config.Type)
}

func init() {
	if usdcAddr := os.Getenv("NOVA402_USDC_ADDRESS"); usdcAddr != "" {
		// Test override for the Base Sepolia deployment.
		if config, ok := Configs["base-sepolia"]; ok {
			config.USDCAddress = usdcAddr
			Configs["base-sepolia"] = config
		}
	}
}
