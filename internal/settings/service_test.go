package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-terrace/api/internal/asset"
	"portfolio-terrace/api/internal/testutils"
)

func newService(t *testing.T) (*SettingsService, string) {
	t.Helper()
	db := testutils.SetupTestDB(t)
	root := t.TempDir()
	return NewSettingsService(db, asset.NewManager(root)), root
}

func TestSettings_GetCreatesSingleton(t *testing.T) {
	svc, _ := newService(t)

	first, err := svc.Get()
	require.Nil(t, err)
	require.NotZero(t, first.ID)

	// 再次读取复用同一条记录
	second, err := svc.Get()
	require.Nil(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestSettings_UpdateMerge(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Update(map[string]any{
		"site_name": "我的站点",
		"tagline":   "写代码的地方",
	})
	require.Nil(t, err)

	// 只改tagline, site_name保持
	updated, err := svc.Update(map[string]any{"tagline": "新标语"})
	require.Nil(t, err)
	assert.Equal(t, "我的站点", updated.SiteName)
	assert.Equal(t, "新标语", updated.Tagline)

	t.Run("未知字段被忽略", func(t *testing.T) {
		updated, err := svc.Update(map[string]any{"hacker_field": "x"})
		require.Nil(t, err)
		assert.Equal(t, "我的站点", updated.SiteName)
	})
}

func TestSettings_FileReplaceReleasesOld(t *testing.T) {
	svc, root := newService(t)

	touch := func(name string) {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte("x"), 0644))
	}

	touch("r1.pdf")
	_, err := svc.Update(map[string]any{"resume": "/uploads/r1.pdf"})
	require.Nil(t, err)

	touch("r2.pdf")
	updated, err := svc.Update(map[string]any{"resume": "/uploads/r2.pdf"})
	require.Nil(t, err)
	assert.Equal(t, "/uploads/r2.pdf", updated.Resume)

	_, statErr := os.Stat(filepath.Join(root, "r1.pdf"))
	assert.True(t, os.IsNotExist(statErr), "旧简历文件应被删除")
	_, statErr = os.Stat(filepath.Join(root, "r2.pdf"))
	assert.NoError(t, statErr)
}
