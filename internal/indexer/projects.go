package indexer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/olta-art/editions-indexer/internal/domain"
	"github.com/olta-art/editions-indexer/internal/logger"
	"github.com/olta-art/editions-indexer/internal/store/schema"
)

func newProject(address string, implementation domain.Implementation, payload *domain.CreatedProjectPayload, creatorID string, event *domain.ContractEvent) *schema.Project {
	return &schema.Project{
		ID:                   address,
		Implementation:       implementation,
		EditionSize:          payload.EditionSize,
		ProjectNumber:        payload.ProjectNumber,
		CreatorID:            &creatorID,
		CreatedAtTimestamp:   event.BlockTimestamp,
		CreatedAtBlockNumber: event.BlockNumber,
	}
}

// handleCreatedProject constructs the Project row for a freshly deployed
// edition contract and registers its addressing context so the shared
// Standard/Seeded handler code can resolve events on that address
func (i *indexer) handleCreatedProject(ctx context.Context, event *domain.ContractEvent) error {
	payload := event.CreatedProject

	implementation, err := domain.ImplementationFromIndex(payload.Implementation)
	if err != nil {
		// A discriminator outside the known variants is a schema mismatch
		// with the factory contract, not a recoverable condition
		return fmt.Errorf("created project %s: %w", payload.ProjectAddress, err)
	}

	creator, err := i.findOrCreateUser(ctx, payload.Creator)
	if err != nil {
		return err
	}

	project, err := i.store.GetProject(ctx, payload.ProjectAddress)
	if err != nil {
		return transient(fmt.Errorf("failed to load project %s: %w", payload.ProjectAddress, err))
	}

	if project == nil {
		project = newProject(payload.ProjectAddress, implementation, payload, creator.ID, event)
		if err := i.store.SaveProject(ctx, project); err != nil {
			return transient(fmt.Errorf("failed to save project %s: %w", project.ID, err))
		}
		logger.InfoCtx(ctx, "Project created",
			zap.String("project", project.ID),
			zap.String("implementation", string(implementation)),
			zap.Uint64("editionSize", payload.EditionSize),
		)
	}

	i.registry.Register(ProjectContext{
		Address:        project.ID,
		Implementation: project.Implementation,
	})
	return nil
}

// handleCreatorApprovalUpdated toggles who may create projects through the
// factory. A zero-address approval is the wildcard opening creation to
// anyone; any other address gets a per-user approval flag.
func (i *indexer) handleCreatorApprovalUpdated(ctx context.Context, event *domain.ContractEvent) error {
	payload := event.CreatorApprovalUpdated

	if payload.Creator == domain.ZeroAddress {
		registry, err := i.findOrCreateProjectCreator(ctx, event.Contract)
		if err != nil {
			return err
		}
		registry.OpenToPublic = payload.Approved
		if err := i.store.SaveProjectCreator(ctx, registry); err != nil {
			return transient(fmt.Errorf("failed to save project creator registry %s: %w", registry.ID, err))
		}
		return nil
	}

	user, err := i.findOrCreateUser(ctx, payload.Creator)
	if err != nil {
		return err
	}
	user.CuratorApproved = payload.Approved
	if err := i.store.SaveUser(ctx, user); err != nil {
		return transient(fmt.Errorf("failed to save user %s: %w", user.ID, err))
	}
	return nil
}
