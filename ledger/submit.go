package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/anyswap/OpenChain-Wallet/common"
	"github.com/anyswap/OpenChain-Wallet/log"
	"github.com/anyswap/OpenChain-Wallet/rpc/client"
	"github.com/anyswap/OpenChain-Wallet/signer"
	"github.com/anyswap/OpenChain-Wallet/types"
)

// PostTransaction signs encodedTx with key and submits it
func (c *Client) PostTransaction(ctx context.Context, endpoint *types.Endpoint, encodedTx []byte, key *signer.Key) (*types.SubmitResult, error) {
	sig, err := signer.Sign(encodedTx, key)
	if err != nil {
		return nil, err
	}
	return c.Submit(ctx, endpoint, &types.SignedTransaction{
		Transaction: encodedTx,
		Signatures:  []*types.Signature{sig},
	})
}

// Submit posts an already signed transaction
func (c *Client) Submit(ctx context.Context, endpoint *types.Endpoint, signedTx *types.SignedTransaction) (*types.SubmitResult, error) {
	if err := checkEndpoint(endpoint); err != nil {
		return nil, err
	}
	if signedTx == nil {
		return nil, fmt.Errorf("%w: no transaction", common.ErrSigning)
	}
	req := &submitRequest{
		Transaction: common.ToHex(signedTx.Transaction),
		Signatures:  make([]*signatureJSON, 0, len(signedTx.Signatures)),
	}
	for _, sig := range signedTx.Signatures {
		if sig == nil {
			return nil, fmt.Errorf("%w: nil signature", common.ErrSigning)
		}
		req.Signatures = append(req.Signatures, &signatureJSON{
			PubKey:    common.ToHex(sig.PublicKey),
			Signature: common.ToHex(sig.Signature),
		})
	}

	url := endpoint.URL(submitPath)
	var result types.SubmitResult
	err := c.rpc.RPCPost(ctx, &result, url, req)
	if err == nil {
		log.Info("submit transaction success", "url", url, "txhash", result.TransactionHash, "mutationhash", result.MutationHash)
		return &result, nil
	}

	var statusErr *client.StatusError
	var decodeErr *client.DecodeError
	switch {
	case errors.As(err, &statusErr):
		rejected := &common.RejectedError{
			StatusCode: statusErr.StatusCode,
			Body:       string(statusErr.Body),
		}
		var rejection rejectionResult
		if json.Unmarshal(statusErr.Body, &rejection) == nil {
			rejected.Reason = rejection.reason()
		}
		log.Warn("submit transaction rejected", "url", url, "status", rejected.StatusCode, "reason", rejected.Reason)
		return nil, rejected
	case errors.As(err, &decodeErr):
		// accepted, but the acknowledgment could not be read
		log.Warn("submit transaction acknowledgment unreadable", "url", url, "err", err)
		return &types.SubmitResult{}, nil
	default:
		log.Warn("submit transaction failed", "url", url, "err", err)
		return nil, fmt.Errorf("%w: %v", common.ErrConnection, err)
	}
}
