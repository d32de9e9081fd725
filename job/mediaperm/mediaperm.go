// Package mediaperm decides customer visibility for job media. Each
// category carries a default-share flag that seeds new uploads; the
// default is policy for new uploads only and never rewrites assets that
// already exist.
package mediaperm

import (
	"github.com/monsalvellc/RoofingLeadApp/job/domain"
)

// DefaultFor returns the folder default for the category. A category with
// no recorded default is not shared: visibility fails closed.
func DefaultFor(category domain.Category, perms map[string]bool) (bool, error) {
	if !domain.ValidCategory(category) {
		return false, ErrUnknownCategory
	}

	return perms[string(category)], nil
}

// InitialShared resolves the shared flag for a new asset: an explicit
// caller override wins, otherwise the folder default applies.
func InitialShared(category domain.Category, perms map[string]bool, explicit *bool) (bool, error) {
	def, err := DefaultFor(category, perms)
	if err != nil {
		return false, err
	}

	if explicit != nil {
		return *explicit, nil
	}

	return def, nil
}

// SetFolderDefault returns a new permissions map with the category default
// replaced. Existing assets keep the flag they were created with; the
// folder toggle is not a bulk re-share.
func SetFolderDefault(category domain.Category, value bool, perms map[string]bool) (map[string]bool, error) {
	if !domain.ValidCategory(category) {
		return nil, ErrUnknownCategory
	}

	next := make(map[string]bool, len(perms)+1)
	for k, v := range perms {
		next[k] = v
	}

	next[string(category)] = value

	return next, nil
}

// FindAsset locates an asset by id within the job's media.
func FindAsset(job *domain.Job, assetID string) (domain.MediaAsset, domain.Category, error) {
	for _, category := range domain.Categories {
		for _, asset := range job.MediaByCategory(category) {
			if asset.ID == assetID {
				return asset, category, nil
			}
		}
	}

	return domain.MediaAsset{}, "", ErrAssetNotFound
}

// SetAssetShared returns the category's asset list with the target asset's
// shared flag overridden, regardless of the folder default.
func SetAssetShared(assets []domain.MediaAsset, assetID string, value bool) ([]domain.MediaAsset, error) {
	next := make([]domain.MediaAsset, len(assets))
	copy(next, assets)

	for i := range next {
		if next[i].ID == assetID {
			next[i].Shared = value
			return next, nil
		}
	}

	return nil, ErrAssetNotFound
}
