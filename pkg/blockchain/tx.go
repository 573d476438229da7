package blockchain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
)

// GetTransactOpts creates a transactor bound to the given chainID and ECDSA key.
// The returned TransactOpts can be used to send transactions to the blockchain.
func GetTransactOpts(chainID *big.Int, pk *ecdsa.PrivateKey) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(pk, chainID)
	if err != nil {
		zap.L().Error("failed to create transactor", zap.Error(err))
		return nil, err
	}
	return opts, nil
}

// GetTransactOpts creates a transactor for the sponsor wallet. The chain ID is
// fetched from the connected node so the same binary works against mainnet
// and Calibration.
func (evm *EVMClient) GetTransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	if evm.pk == nil {
		return nil, fmt.Errorf("sponsor private key is required for transactions")
	}

	chainID, err := evm.node.ChainID(ctx)
	if err != nil {
		zap.L().Error("failed to get chain ID", zap.Error(err))
		return nil, err
	}

	opts, err := GetTransactOpts(chainID, evm.pk)
	if err != nil {
		return nil, err
	}
	opts.Context = ctx
	return opts, nil
}

// GetCallOpts builds bind.CallOpts bound to the given context.
func GetCallOpts(ctx context.Context) *bind.CallOpts {
	return &bind.CallOpts{Pending: false, Context: ctx}
}

// GetAddressFromPrivateKeyECDSA derives the Ethereum address from the given
// ECDSA private key. It returns nil if the key is nil or its public part cannot
// be asserted to *ecdsa.PublicKey.
func GetAddressFromPrivateKeyECDSA(privateKeyECDSA *ecdsa.PrivateKey) *common.Address {
	if privateKeyECDSA == nil {
		return nil
	}
	publicKey := privateKeyECDSA.Public()
	publicKeyECDSA, ok := publicKey.(*ecdsa.PublicKey)
	if !ok {
		return nil
	}
	addr := crypto.PubkeyToAddress(*publicKeyECDSA)
	return &addr
}

// ParsePrivateKeyECDSA parses a hex-encoded ECDSA private key and returns the
// corresponding Ethereum address together with the private key object.
// It returns an error if the hex string is invalid or the public key cannot be
// derived from the private key.
func ParsePrivateKeyECDSA(privateKey string) (common.Address, *ecdsa.PrivateKey, error) {
	privateKeyECDSA, err := crypto.HexToECDSA(privateKey)
	if err != nil {
		return common.Address{}, nil, err
	}

	publicKey := privateKeyECDSA.Public()

	publicKeyECDSA, ok := publicKey.(*ecdsa.PublicKey)
	if !ok {
		return common.Address{}, nil, errors.New("failed to get public key")
	}

	address := crypto.PubkeyToAddress(*publicKeyECDSA)
	return address, privateKeyECDSA, nil
}
