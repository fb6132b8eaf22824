package asset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	return path
}

func TestManager_PublicPath(t *testing.T) {
	m := NewManager(t.TempDir())
	assert.Equal(t, "/uploads/abc.png", m.PublicPath("abc.png"))
}

func TestManager_Unbind(t *testing.T) {
	t.Run("删除存在的文件", func(t *testing.T) {
		root := t.TempDir()
		m := NewManager(root)
		path := writeFile(t, root, "a.png")

		m.Unbind("/uploads/a.png")

		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("文件不存在时不报错", func(t *testing.T) {
		m := NewManager(t.TempDir())
		m.Unbind("/uploads/missing.png")
	})

	t.Run("空路径忽略", func(t *testing.T) {
		m := NewManager(t.TempDir())
		m.Unbind("")
	})

	t.Run("路径穿越被拦截", func(t *testing.T) {
		root := t.TempDir()
		outside := t.TempDir()
		victim := writeFile(t, outside, "victim.txt")

		m := NewManager(root)
		m.Unbind("/uploads/../" + filepath.Base(outside) + "/victim.txt")
		m.Unbind("../victim.txt")

		// 根目录之外的文件不受影响
		_, err := os.Stat(victim)
		assert.NoError(t, err)
	})
}
