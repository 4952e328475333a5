package indexer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/olta-art/editions-indexer/internal/domain"
	"github.com/olta-art/editions-indexer/internal/logger"
	"github.com/olta-art/editions-indexer/internal/providers/ethereum"
	"github.com/olta-art/editions-indexer/internal/store/schema"
)

// handleVersionAdded constructs the Version and its content slot rows. The
// slot URLs are read back from the contract's current state; labels are not
// expected to be updated in rapid succession, so the current state stands
// in for the per-label state the contract does not reliably expose.
func (i *indexer) handleVersionAdded(ctx context.Context, event *domain.ContractEvent) error {
	pctx, ok := i.registry.Lookup(event.Contract)
	if !ok {
		return i.skip(ctx, event, "untracked_contract", zap.String("contract", event.Contract))
	}
	payload := event.VersionAdded

	project, err := i.store.GetProject(ctx, pctx.Address)
	if err != nil {
		return transient(fmt.Errorf("failed to load project %s: %w", pctx.Address, err))
	}
	if project == nil {
		return i.skip(ctx, event, "version_for_unknown_project", zap.String("project", pctx.Address))
	}

	versionID := VersionID(project.ID, payload.Label)
	version, err := i.store.GetVersion(ctx, versionID)
	if err != nil {
		return transient(fmt.Errorf("failed to load version %s: %w", versionID, err))
	}
	if version == nil {
		version = &schema.Version{
			ID:                   versionID,
			Label:                FormatLabel(payload.Label),
			ProjectID:            project.ID,
			CreatedAtTimestamp:   event.BlockTimestamp,
			CreatedAtBlockNumber: event.BlockNumber,
		}
		if err := i.store.SaveVersion(ctx, version); err != nil {
			return transient(fmt.Errorf("failed to save version %s: %w", versionID, err))
		}
	}

	// A reverted read leaves the version without URL data rather than
	// failing the event
	uris, err := i.reader.ProjectURIs(ctx, pctx.Address)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to read version URIs, version left without URL data",
			zap.String("version", versionID), zap.Error(err))
	} else {
		if err := i.saveURLPairs(ctx, versionID, uris, event); err != nil {
			return err
		}
	}

	// The factory event does not carry the descriptive fields; the first
	// version is the moment they become readable
	if project.LastAddedVersionID == nil {
		if err := i.populateProjectMetadata(ctx, project); err != nil {
			return err
		}
	}

	project.LastAddedVersionID = &version.ID
	if err := i.store.SaveProject(ctx, project); err != nil {
		return transient(fmt.Errorf("failed to save project %s: %w", project.ID, err))
	}
	return nil
}

// saveURLPairs writes one UrlHashPair per content slot the contract
// reported. Contracts predating the patch-notes slot return nothing for it
// and no row is created.
func (i *indexer) saveURLPairs(ctx context.Context, versionID string, uris *ethereum.URISet, event *domain.ContractEvent) error {
	slots := []struct {
		kind domain.URLKind
		url  string
		hash string
	}{
		{domain.URLKindImage, uris.ImageURL, uris.ImageHash},
		{domain.URLKindAnimation, uris.AnimationURL, uris.AnimationHash},
		{domain.URLKindPatchNotes, uris.PatchNotesURL, uris.PatchNotesHash},
	}

	for _, slot := range slots {
		if slot.kind == domain.URLKindPatchNotes && slot.url == "" && slot.hash == "" {
			continue
		}

		pair, err := i.findOrCreateUrlHashPair(ctx, versionID, slot.kind, event)
		if err != nil {
			return err
		}
		pair.URL = slot.url
		pair.Hash = slot.hash
		if err := i.store.SaveUrlHashPair(ctx, pair); err != nil {
			return transient(fmt.Errorf("failed to save url hash pair %s: %w", pair.ID, err))
		}
	}
	return nil
}

// populateProjectMetadata performs the one-time read of name, symbol,
// description and royalty bps. A reverted read is logged and the fields stay
// unset, they are descriptive only.
func (i *indexer) populateProjectMetadata(ctx context.Context, project *schema.Project) error {
	metadata, err := i.reader.ProjectMetadata(ctx, project.ID)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to read project metadata", zap.String("project", project.ID), zap.Error(err))
		return nil
	}

	project.Name = &metadata.Name
	project.Symbol = &metadata.Symbol
	project.Description = &metadata.Description
	royaltyBPS := metadata.RoyaltyBPS
	project.RoyaltyBPS = &royaltyBPS
	return nil
}

// handleVersionURLUpdated appends the UrlUpdate audit row and mutates the
// slot's URL in place. The hash is untouched, URL and hash may diverge
// until the next version-added refresh; that matches the contract's own
// update semantics.
func (i *indexer) handleVersionURLUpdated(ctx context.Context, event *domain.ContractEvent) error {
	pctx, ok := i.registry.Lookup(event.Contract)
	if !ok {
		return i.skip(ctx, event, "untracked_contract", zap.String("contract", event.Contract))
	}
	payload := event.VersionURLUpdated

	kind, err := domain.URLKindFromIndex(payload.Index)
	if err != nil {
		// A slot index outside the known content slots is a schema mismatch
		// with the project contract, not a recoverable condition
		return fmt.Errorf("url update for %s: %w", pctx.Address, err)
	}

	versionID := VersionID(pctx.Address, payload.Label)
	version, err := i.store.GetVersion(ctx, versionID)
	if err != nil {
		return transient(fmt.Errorf("failed to load version %s: %w", versionID, err))
	}
	if version == nil {
		return i.skip(ctx, event, "url_update_for_unknown_version", zap.String("version", versionID))
	}

	pair, err := i.findOrCreateUrlHashPair(ctx, versionID, kind, event)
	if err != nil {
		return err
	}

	updateID := UrlUpdateID(event.TxHash, event.LogIndex)
	update, err := i.store.GetUrlUpdate(ctx, updateID)
	if err != nil {
		return transient(fmt.Errorf("failed to load url update %s: %w", updateID, err))
	}
	if update == nil {
		update = &schema.UrlUpdate{
			ID:                   updateID,
			TxHash:               event.TxHash,
			FromURL:              pair.URL,
			ToURL:                payload.URL,
			ProjectID:            pctx.Address,
			VersionID:            versionID,
			UrlHashPairID:        pair.ID,
			CreatedAtTimestamp:   event.BlockTimestamp,
			CreatedAtBlockNumber: event.BlockNumber,
		}
		if err := i.store.SaveUrlUpdate(ctx, update); err != nil {
			return transient(fmt.Errorf("failed to save url update %s: %w", updateID, err))
		}
	}

	pair.URL = payload.URL
	if err := i.store.SaveUrlHashPair(ctx, pair); err != nil {
		return transient(fmt.Errorf("failed to save url hash pair %s: %w", pair.ID, err))
	}
	return nil
}
