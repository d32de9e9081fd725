package mediaperm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/monsalvellc/RoofingLeadApp/job/domain"
)

func TestDefaultFor(t *testing.T) {
	perms := map[string]bool{"inspection": true}

	shared, err := DefaultFor(domain.CategoryInspection, perms)
	assert.NoError(t, err)
	assert.True(t, shared)

	// Absent category means not shared.
	shared, err = DefaultFor(domain.CategoryInstall, perms)
	assert.NoError(t, err)
	assert.False(t, shared)

	shared, err = DefaultFor(domain.CategoryDocument, nil)
	assert.NoError(t, err)
	assert.False(t, shared)

	_, err = DefaultFor("screenshots", perms)
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestInitialShared(t *testing.T) {
	perms := map[string]bool{"inspection": true}

	shared, err := InitialShared(domain.CategoryInspection, perms, nil)
	assert.NoError(t, err)
	assert.True(t, shared)

	override := false

	shared, err = InitialShared(domain.CategoryInspection, perms, &override)
	assert.NoError(t, err)
	assert.False(t, shared)

	override = true

	shared, err = InitialShared(domain.CategoryDocument, perms, &override)
	assert.NoError(t, err)
	assert.True(t, shared)
}

func TestSetFolderDefault_NotRetroactive(t *testing.T) {
	perms := map[string]bool{}

	a := domain.MediaAsset{ID: "a", Category: domain.CategoryInspection, Shared: false}

	perms, err := SetFolderDefault(domain.CategoryInspection, true, perms)
	assert.NoError(t, err)

	sharedB, err := InitialShared(domain.CategoryInspection, perms, nil)
	assert.NoError(t, err)
	assert.True(t, sharedB)

	b := domain.MediaAsset{ID: "b", Category: domain.CategoryInspection, Shared: sharedB}

	perms, err = SetFolderDefault(domain.CategoryInspection, false, perms)
	assert.NoError(t, err)

	assert.False(t, a.Shared)
	assert.True(t, b.Shared)

	_, err = SetFolderDefault("screenshots", true, perms)
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestSetFolderDefault_ReturnsNewMap(t *testing.T) {
	perms := map[string]bool{"install": true}

	updated, err := SetFolderDefault(domain.CategoryInspection, true, perms)
	assert.NoError(t, err)

	assert.True(t, updated["inspection"])
	assert.NotContains(t, perms, "inspection")
}

func TestFindAsset(t *testing.T) {
	job := &domain.Job{
		InspectionMedia: []domain.MediaAsset{{ID: "a", Category: domain.CategoryInspection}},
		Documents:       []domain.MediaAsset{{ID: "b", Category: domain.CategoryDocument}},
	}

	asset, category, err := FindAsset(job, "b")
	assert.NoError(t, err)
	assert.Equal(t, "b", asset.ID)
	assert.Equal(t, domain.CategoryDocument, category)

	_, _, err = FindAsset(job, "missing")
	assert.ErrorIs(t, err, ErrAssetNotFound)
}

func TestSetAssetShared(t *testing.T) {
	assets := []domain.MediaAsset{
		{ID: "a", Shared: false},
		{ID: "b", Shared: false},
	}

	updated, err := SetAssetShared(assets, "b", true)
	assert.NoError(t, err)
	assert.True(t, updated[1].Shared)
	assert.False(t, updated[0].Shared)

	// Input slice is untouched.
	assert.False(t, assets[1].Shared)

	_, err = SetAssetShared(assets, "missing", true)
	assert.ErrorIs(t, err, ErrAssetNotFound)
}
