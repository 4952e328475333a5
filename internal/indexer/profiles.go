package indexer

import (
	"context"
	"fmt"

	"github.com/olta-art/editions-indexer/internal/domain"
)

// handleProfileUpdated merges the reported profile fields onto the User.
// Empty fields mean "unchanged" and never clear a previously set value.
func (i *indexer) handleProfileUpdated(ctx context.Context, event *domain.ContractEvent) error {
	payload := event.ProfileUpdated

	user, err := i.findOrCreateUser(ctx, payload.User)
	if err != nil {
		return err
	}

	if payload.Name != "" {
		name := payload.Name
		user.Name = &name
	}
	if payload.Description != "" {
		description := payload.Description
		user.Description = &description
	}
	if payload.ThumbnailURI != "" {
		thumbnail := payload.ThumbnailURI
		user.Thumbnail = &thumbnail
	}
	if payload.LinkURI != "" {
		link := payload.LinkURI
		user.Link = &link
	}

	timestamp := event.BlockTimestamp
	blockNumber := event.BlockNumber
	user.ProfileUpdatedAtTimestamp = &timestamp
	user.ProfileUpdatedAtBlockNumber = &blockNumber

	if err := i.store.SaveUser(ctx, user); err != nil {
		return transient(fmt.Errorf("failed to save user %s: %w", user.ID, err))
	}
	return nil
}
