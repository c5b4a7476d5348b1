package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/raktsetu/bloodbank-cli/pkg/core/model"
	"github.com/raktsetu/bloodbank-cli/pkg/core/rtid"
	"github.com/raktsetu/bloodbank-cli/pkg/ledger"
)

type TokenKind string

const (
	TokenDonation TokenKind = "donation"
	TokenRequest  TokenKind = "request"
)

// TokenDetails is the read-only view returned by token verification.
// Exactly one of Donation or Request is set, matching Kind.
type TokenDetails struct {
	Kind     TokenKind
	Donation *model.Donation
	Request  *model.BloodRequest
}

// VerifyToken dispatches on the token prefix and returns the matching
// donation or request details. It never mutates state.
func VerifyToken(ctx context.Context, store ledger.TokenReader, logger *zap.Logger, token string) (*TokenDetails, error) {
	logger.Debug("Verifying token", zap.String("rtid", token))

	switch {
	case rtid.IsDonationToken(token):
		donation, err := store.FindDonation(ctx, token)
		if err != nil {
			return nil, fmt.Errorf("failed to verify d-rtid %s: %w", token, err)
		}
		return &TokenDetails{Kind: TokenDonation, Donation: donation}, nil
	case rtid.IsRequestToken(token):
		request, err := store.FindRequest(ctx, token)
		if err != nil {
			return nil, fmt.Errorf("failed to verify h-rtid %s: %w", token, err)
		}
		return &TokenDetails{Kind: TokenRequest, Request: request}, nil
	default:
		return nil, model.ErrInvalidTokenFormat
	}
}
