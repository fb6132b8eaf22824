// Package asset 上传文件与记录字段之间的生命周期管理
// 每个物理文件同一时刻只属于一个记录字段, 记录换图或删除时释放旧文件
package asset

import (
	"log"
	"os"
	"path/filepath"
	"strings"
)

// PublicPrefix 对外访问上传文件的URL前缀
const PublicPrefix = "/uploads/"

// Manager 以显式注入的根目录为边界操作文件
// 根目录作为能力传入, 测试时可以替换为临时目录
type Manager struct {
	root string
}

func NewManager(root string) *Manager {
	return &Manager{root: root}
}

// Root 返回资源根目录
func (m *Manager) Root() string {
	return m.root
}

// PublicPath 由存储文件名构造对外路径
func (m *Manager) PublicPath(filename string) string {
	return PublicPrefix + filename
}

// Unbind 释放记录不再引用的文件, 尽力而为
// 路径不在根目录下或文件不存在时直接忽略, 删除失败只记日志
func (m *Manager) Unbind(publicPath string) {
	local, ok := m.resolve(publicPath)
	if !ok {
		return
	}

	if _, err := os.Stat(local); os.IsNotExist(err) {
		// 文件已经不在, 不算错误
		return
	}

	if err := os.Remove(local); err != nil {
		log.Printf("删除旧文件失败: %s: %v", local, err)
	}
}

// resolve 把对外路径还原为根目录下的本地路径
// 只接受根目录内的文件, 防止路径穿越
func (m *Manager) resolve(publicPath string) (string, bool) {
	if publicPath == "" {
		return "", false
	}

	name := strings.TrimPrefix(publicPath, PublicPrefix)
	// 丢弃目录部分, 上传时的文件名不含子目录
	name = filepath.Base(name)
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return "", false
	}

	return filepath.Join(m.root, name), true
}
