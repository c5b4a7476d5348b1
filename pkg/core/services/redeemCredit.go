package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/raktsetu/bloodbank-cli/pkg/core/model"
	"github.com/raktsetu/bloodbank-cli/pkg/ledger"
)

// PendingRedemption is a fully-validated redemption awaiting human
// confirmation. Cancelling is simply dropping the value; nothing has been
// applied yet.
type PendingRedemption struct {
	donation model.Donation
}

// Donation returns the credit the pending redemption would consume, for
// display in the confirmation prompt.
func (p *PendingRedemption) Donation() model.Donation {
	return p.donation
}

// PrepareRedemption validates a redemption attempt without applying it.
// Checks run in order: donation lookup, OTP match, credit still available.
func PrepareRedemption(ctx context.Context, store ledger.CreditStore, logger *zap.Logger, donationID, otp string) (*PendingRedemption, error) {
	donation, err := store.FindDonation(ctx, donationID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up donation %s: %w", donationID, err)
	}
	if donation.OTP != otp {
		return nil, model.ErrInvalidOTP
	}
	if donation.Status == model.DonationRedeemed {
		return nil, model.ErrAlreadyRedeemed
	}

	logger.Info("Redemption prepared, awaiting confirmation",
		zap.String("d_rtid", donation.ID),
		zap.String("blood_group", string(donation.BloodGroup)))

	return &PendingRedemption{donation: *donation}, nil
}

// CommitRedemption applies a confirmed redemption: the donation becomes
// REDEEMED, a redemption record is appended, and one unit leaves the blood
// group's counters. The store re-checks the credit status at commit time, so
// the debit happens at most once. This is one-way; never retry it
// automatically.
func CommitRedemption(ctx context.Context, store ledger.CreditStore, logger *zap.Logger, pending *PendingRedemption) (*model.Redemption, error) {
	redemption, err := store.RedeemDonation(ctx, pending.donation.ID, store.Location(), time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to redeem donation %s: %w", pending.donation.ID, err)
	}

	logger.Info("Credit redeemed",
		zap.String("d_rtid", redemption.DonationID),
		zap.String("blood_group", string(redemption.BloodGroup)),
		zap.String("redemption_location", redemption.RedemptionLocation))

	notify(store, fmt.Sprintf("Credit redeemed: %s (%s)", redemption.BloodGroup, redemption.DonationID), model.NotifySuccess)

	return &redemption, nil
}
