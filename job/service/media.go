package service

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"github.com/monsalvellc/RoofingLeadApp/job/domain"
	"github.com/monsalvellc/RoofingLeadApp/job/mediaperm"
	"github.com/monsalvellc/RoofingLeadApp/media/storage"
)

const folderPermissionsField = "folderPermissions"

// UploadMedia stores the blob, then registers the asset on the job with
// its visibility resolved from the folder default unless the request
// overrides it. An upload landing after the job was deleted or its
// screen closed is discarded and the blob reaped.
func (s *JobService) UploadMedia(ctx context.Context, req *UploadMediaRequest) (*domain.MediaAsset, error) {
	if req == nil || req.JobID == "" || len(req.Data) == 0 {
		return nil, ErrInvalidInput
	}

	if !domain.ValidCategory(req.Category) {
		return nil, mediaperm.ErrUnknownCategory
	}

	job, err := s.GetJob(ctx, req.JobID)
	if err != nil {
		return nil, err
	}

	shared, err := mediaperm.InitialShared(req.Category, job.FolderPermissions, req.Shared)
	if err != nil {
		return nil, err
	}

	gen := s.uploads.generation(req.JobID)

	assetID := uuid.NewString()

	url, err := s.mediaStorage.Upload(ctx, storage.ObjectPath(job.CompanyID, job.ID, req.Category, assetID), req.Data, req.ContentType)
	if err != nil {
		return nil, err
	}

	if !s.uploads.stillCurrent(req.JobID, gen) {
		s.reapBlob(ctx, req.JobID, url)

		return nil, ErrUploadDiscarded
	}

	asset := domain.MediaAsset{
		ID:          assetID,
		URL:         url,
		Category:    req.Category,
		Name:        req.Name,
		Shared:      shared,
		TimeCreated: time.Now().UTC(),
	}

	assets := append(job.MediaByCategory(req.Category), asset)

	err = s.jobDAL.UpdateJobFields(ctx, req.JobID, []firestore.Update{
		{Path: domain.FieldForCategory(req.Category), Value: assets},
	})
	if err != nil {
		s.reapBlob(ctx, req.JobID, url)

		return nil, wrapPersistence(err)
	}

	return &asset, nil
}

func (s *JobService) reapBlob(ctx context.Context, jobID, url string) {
	if err := s.mediaStorage.Delete(ctx, url); err != nil {
		s.loggerProvider(ctx).Warningf("failed to reap orphaned blob for job %s: %v", jobID, err)
	}
}

// DeleteMedia removes the asset from the job, then deletes the blob
// best-effort. A blob failure is logged and swallowed; the document is
// the source of truth and the asset is already gone from it.
func (s *JobService) DeleteMedia(ctx context.Context, jobID, assetID string) error {
	job, err := s.GetJob(ctx, jobID)
	if err != nil {
		return err
	}

	asset, category, err := mediaperm.FindAsset(job, assetID)
	if err != nil {
		return err
	}

	assets := job.MediaByCategory(category)
	remaining := make([]domain.MediaAsset, 0, len(assets)-1)

	for _, a := range assets {
		if a.ID != assetID {
			remaining = append(remaining, a)
		}
	}

	err = s.jobDAL.UpdateJobFields(ctx, jobID, []firestore.Update{
		{Path: domain.FieldForCategory(category), Value: remaining},
	})
	if err != nil {
		return wrapPersistence(err)
	}

	if err := s.mediaStorage.Delete(ctx, asset.URL); err != nil {
		s.loggerProvider(ctx).Warningf("failed to delete blob for asset %s on job %s: %v", assetID, jobID, err)
	}

	return nil
}

// SetAssetShared flips one asset's customer visibility without touching
// the folder default.
func (s *JobService) SetAssetShared(ctx context.Context, jobID, assetID string, shared bool) error {
	job, err := s.GetJob(ctx, jobID)
	if err != nil {
		return err
	}

	_, category, err := mediaperm.FindAsset(job, assetID)
	if err != nil {
		return err
	}

	assets, err := mediaperm.SetAssetShared(job.MediaByCategory(category), assetID, shared)
	if err != nil {
		return err
	}

	return wrapPersistence(s.jobDAL.UpdateJobFields(ctx, jobID, []firestore.Update{
		{Path: domain.FieldForCategory(category), Value: assets},
	}))
}

// RecategorizeAsset moves the asset between category lists in one write.
// The blob stays at its original object path; only the document moves it.
func (s *JobService) RecategorizeAsset(ctx context.Context, jobID, assetID string, target domain.Category) error {
	if !domain.ValidCategory(target) {
		return mediaperm.ErrUnknownCategory
	}

	job, err := s.GetJob(ctx, jobID)
	if err != nil {
		return err
	}

	asset, source, err := mediaperm.FindAsset(job, assetID)
	if err != nil {
		return err
	}

	if source == target {
		return nil
	}

	sourceAssets := make([]domain.MediaAsset, 0, len(job.MediaByCategory(source))-1)

	for _, a := range job.MediaByCategory(source) {
		if a.ID != assetID {
			sourceAssets = append(sourceAssets, a)
		}
	}

	asset.Category = target
	targetAssets := append(job.MediaByCategory(target), asset)

	return wrapPersistence(s.jobDAL.UpdateJobFields(ctx, jobID, []firestore.Update{
		{Path: domain.FieldForCategory(source), Value: sourceAssets},
		{Path: domain.FieldForCategory(target), Value: targetAssets},
	}))
}

// SetFolderDefault changes the category's default visibility for future
// uploads. Existing assets keep their current setting.
func (s *JobService) SetFolderDefault(ctx context.Context, jobID string, category domain.Category, shared bool) error {
	job, err := s.GetJob(ctx, jobID)
	if err != nil {
		return err
	}

	perms, err := mediaperm.SetFolderDefault(category, shared, job.FolderPermissions)
	if err != nil {
		return err
	}

	return wrapPersistence(s.jobDAL.UpdateJobFields(ctx, jobID, []firestore.Update{
		{Path: folderPermissionsField, Value: perms},
	}))
}
