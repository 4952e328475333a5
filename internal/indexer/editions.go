package indexer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/olta-art/editions-indexer/internal/domain"
	"github.com/olta-art/editions-indexer/internal/logger"
	"github.com/olta-art/editions-indexer/internal/store/schema"
)

// handleTransfer appends the Transfer audit row, then classifies: a zero
// sender is a mint, a zero receiver is a burn, anything else an ordinary
// ownership change
func (i *indexer) handleTransfer(ctx context.Context, event *domain.ContractEvent) error {
	pctx, ok := i.registry.Lookup(event.Contract)
	if !ok {
		return i.skip(ctx, event, "untracked_contract", zap.String("contract", event.Contract))
	}
	payload := event.Transfer

	if _, err := i.findOrCreateUser(ctx, payload.From); err != nil {
		return err
	}
	if _, err := i.findOrCreateUser(ctx, payload.To); err != nil {
		return err
	}

	editionID := EditionID(pctx.Address, payload.TokenID)
	transferID := TransferID(editionID, event.TxHash)
	transfer, err := i.store.GetTransfer(ctx, transferID)
	if err != nil {
		return transient(fmt.Errorf("failed to load transfer %s: %w", transferID, err))
	}
	if transfer == nil {
		transfer = &schema.Transfer{
			ID:                   transferID,
			TxHash:               event.TxHash,
			EditionID:            editionID,
			FromID:               payload.From,
			ToID:                 payload.To,
			CreatedAtTimestamp:   event.BlockTimestamp,
			CreatedAtBlockNumber: event.BlockNumber,
		}
		if err := i.store.SaveTransfer(ctx, transfer); err != nil {
			return transient(fmt.Errorf("failed to save transfer %s: %w", transferID, err))
		}
	}

	switch {
	case payload.From == domain.ZeroAddress:
		return i.mintEdition(ctx, pctx, editionID, event)
	case payload.To == domain.ZeroAddress:
		return i.burnEdition(ctx, pctx, editionID, event)
	default:
		return i.transferEdition(ctx, editionID, event)
	}
}

// mintEdition constructs the Edition row, enriches it from the chain and
// bumps the project's supply counters
func (i *indexer) mintEdition(ctx context.Context, pctx ProjectContext, editionID string, event *domain.ContractEvent) error {
	payload := event.Transfer

	edition, err := i.store.GetEdition(ctx, editionID)
	if err != nil {
		return transient(fmt.Errorf("failed to load edition %s: %w", editionID, err))
	}
	fresh := edition == nil
	if fresh {
		// A minted token must have a resolvable URI, a reverted read here
		// is fatal to the event
		uri, err := i.reader.TokenURI(ctx, pctx.Address, payload.TokenID)
		if err != nil {
			return transient(fmt.Errorf("failed to read token URI for %s: %w", editionID, err))
		}

		edition = &schema.Edition{
			ID:                   editionID,
			Number:               payload.TokenID,
			ProjectID:            pctx.Address,
			OwnerID:              payload.To,
			PrevOwnerID:          payload.From,
			URI:                  uri,
			CreatedAtTxHash:      event.TxHash,
			CreatedAtTimestamp:   event.BlockTimestamp,
			CreatedAtBlockNumber: event.BlockNumber,
		}

		if pctx.Implementation == domain.ImplementationSeeded {
			seed, err := i.reader.SeedOfToken(ctx, pctx.Address, payload.TokenID)
			if err != nil {
				return transient(fmt.Errorf("failed to read seed for %s: %w", editionID, err))
			}
			edition.Seed = &seed
		}

		if err := i.store.SaveEdition(ctx, edition); err != nil {
			return transient(fmt.Errorf("failed to save edition %s: %w", editionID, err))
		}
		logger.InfoCtx(ctx, "Edition minted", zap.String("edition", editionID), zap.String("owner", payload.To))
	}

	if err := i.bumpCounters(ctx, pctx.Address, event, 1, 0); err != nil {
		return err
	}

	// The purchase event of the same transaction may have arrived first;
	// cross-link it now. Absent is fine, the purchase handler covers the
	// other ordering.
	purchase, err := i.store.GetPurchase(ctx, event.TxHash)
	if err != nil {
		return transient(fmt.Errorf("failed to load purchase %s: %w", event.TxHash, err))
	}
	if purchase != nil && purchase.EditionID == nil {
		purchase.EditionID = &edition.ID
		if err := i.store.SavePurchase(ctx, purchase); err != nil {
			return transient(fmt.Errorf("failed to save purchase %s: %w", purchase.ID, err))
		}
	}
	return nil
}

// burnEdition stamps the burn, parks ownership on the zero-address sentinel
// and bumps the project's burn counter
func (i *indexer) burnEdition(ctx context.Context, pctx ProjectContext, editionID string, event *domain.ContractEvent) error {
	edition, err := i.store.GetEdition(ctx, editionID)
	if err != nil {
		return transient(fmt.Errorf("failed to load edition %s: %w", editionID, err))
	}
	if edition == nil {
		return i.skip(ctx, event, "burn_of_unknown_edition", zap.String("edition", editionID))
	}

	if edition.BurnedAtTimestamp == nil {
		timestamp := event.BlockTimestamp
		blockNumber := event.BlockNumber
		edition.PrevOwnerID = edition.OwnerID
		edition.OwnerID = domain.ZeroAddress
		edition.BurnedAtTimestamp = &timestamp
		edition.BurnedAtBlockNumber = &blockNumber
		if err := i.store.SaveEdition(ctx, edition); err != nil {
			return transient(fmt.Errorf("failed to save edition %s: %w", editionID, err))
		}
		logger.InfoCtx(ctx, "Edition burned", zap.String("edition", editionID))
	}

	return i.bumpCounters(ctx, pctx.Address, event, 0, 1)
}

// transferEdition applies an ordinary ownership change
func (i *indexer) transferEdition(ctx context.Context, editionID string, event *domain.ContractEvent) error {
	payload := event.Transfer

	edition, err := i.store.GetEdition(ctx, editionID)
	if err != nil {
		return transient(fmt.Errorf("failed to load edition %s: %w", editionID, err))
	}
	if edition == nil {
		return i.skip(ctx, event, "transfer_of_unknown_edition", zap.String("edition", editionID))
	}

	edition.PrevOwnerID = payload.From
	edition.OwnerID = payload.To
	if err := i.store.SaveEdition(ctx, edition); err != nil {
		return transient(fmt.Errorf("failed to save edition %s: %w", editionID, err))
	}
	return nil
}

// bumpCounters applies a mint/burn to the project's supply counters, guarded
// by the counters watermark so a replayed event never double-counts. The
// project row is re-loaded, counters are also touched by intervening events.
func (i *indexer) bumpCounters(ctx context.Context, projectID string, event *domain.ContractEvent, minted, burned int64) error {
	project, err := i.store.GetProject(ctx, projectID)
	if err != nil {
		return transient(fmt.Errorf("failed to load project %s: %w", projectID, err))
	}
	if project == nil {
		return i.skip(ctx, event, "counters_for_unknown_project", zap.String("project", projectID))
	}

	if !event.After(project.CountersBlockNumber, project.CountersLogIndex) {
		return nil
	}

	project.TotalMinted += minted
	project.TotalBurned += burned
	project.TotalSupply = project.TotalMinted - project.TotalBurned
	project.CountersBlockNumber = event.BlockNumber
	project.CountersLogIndex = event.LogIndex

	// Fully burned supply tombstones the project, the row is retained
	if project.TotalSupply == 0 && project.TotalMinted > 0 && project.RemovedAtTimestamp == nil {
		timestamp := event.BlockTimestamp
		blockNumber := event.BlockNumber
		project.RemovedAtTimestamp = &timestamp
		project.RemovedAtBlockNumber = &blockNumber
		logger.InfoCtx(ctx, "Project fully burned", zap.String("project", projectID))
	}

	if err := i.store.SaveProject(ctx, project); err != nil {
		return transient(fmt.Errorf("failed to save project %s: %w", projectID, err))
	}
	return nil
}

// handleApproval sets or clears the edition's approved operator. The zero
// address means "no approval" and clears the reference.
func (i *indexer) handleApproval(ctx context.Context, event *domain.ContractEvent) error {
	pctx, ok := i.registry.Lookup(event.Contract)
	if !ok {
		return i.skip(ctx, event, "untracked_contract", zap.String("contract", event.Contract))
	}
	payload := event.Approval

	editionID := EditionID(pctx.Address, payload.TokenID)
	edition, err := i.store.GetEdition(ctx, editionID)
	if err != nil {
		return transient(fmt.Errorf("failed to load edition %s: %w", editionID, err))
	}
	if edition == nil {
		return i.skip(ctx, event, "approval_for_unknown_edition", zap.String("edition", editionID))
	}

	if payload.Approved == domain.ZeroAddress {
		edition.ApprovedID = nil
	} else {
		approved, err := i.findOrCreateUser(ctx, payload.Approved)
		if err != nil {
			return err
		}
		edition.ApprovedID = &approved.ID
	}

	if err := i.store.SaveEdition(ctx, edition); err != nil {
		return transient(fmt.Errorf("failed to save edition %s: %w", editionID, err))
	}
	return nil
}

// handleApprovedMinter toggles a third-party minter approval scoped to one
// project
func (i *indexer) handleApprovedMinter(ctx context.Context, event *domain.ContractEvent) error {
	pctx, ok := i.registry.Lookup(event.Contract)
	if !ok {
		return i.skip(ctx, event, "untracked_contract", zap.String("contract", event.Contract))
	}
	payload := event.ApprovedMinter

	minter, err := i.findOrCreateUser(ctx, payload.Minter)
	if err != nil {
		return err
	}

	id := MinterApprovalID(minter.ID, pctx.Address)
	approval, err := i.store.GetProjectMinterApproval(ctx, id)
	if err != nil {
		return transient(fmt.Errorf("failed to load minter approval %s: %w", id, err))
	}
	if approval == nil {
		approval = &schema.ProjectMinterApproval{
			ID:        id,
			ProjectID: pctx.Address,
			UserID:    minter.ID,
		}
	}
	approval.Approved = payload.Approved
	if err := i.store.SaveProjectMinterApproval(ctx, approval); err != nil {
		return transient(fmt.Errorf("failed to save minter approval %s: %w", id, err))
	}
	return nil
}

// handleRoyaltyRecipientChanged redirects the project's royalty payouts,
// probing whether the new recipient is a split-payment wallet
func (i *indexer) handleRoyaltyRecipientChanged(ctx context.Context, event *domain.ContractEvent) error {
	pctx, ok := i.registry.Lookup(event.Contract)
	if !ok {
		return i.skip(ctx, event, "untracked_contract", zap.String("contract", event.Contract))
	}
	payload := event.RoyaltyRecipientChanged

	project, err := i.store.GetProject(ctx, pctx.Address)
	if err != nil {
		return transient(fmt.Errorf("failed to load project %s: %w", pctx.Address, err))
	}
	if project == nil {
		return i.skip(ctx, event, "royalty_for_unknown_project", zap.String("project", pctx.Address))
	}

	recipient, err := i.findOrCreateRecipient(ctx, payload.NewRecipient)
	if err != nil {
		return err
	}

	project.RoyaltyRecipientID = &recipient.ID
	if err := i.store.SaveProject(ctx, project); err != nil {
		return transient(fmt.Errorf("failed to save project %s: %w", project.ID, err))
	}
	return nil
}
